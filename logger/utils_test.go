package L

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10, TRUNC_RIGHT))
	assert.Equal(t, "abcd...", TruncateString("abcdefghij", 7, TRUNC_RIGHT))
	assert.Equal(t, "...ghij", TruncateString("abcdefghij", 7, TRUNC_LEFT))
	assert.Equal(t, "ab...ij", TruncateString("abcdefghij", 7, TRUNC_CENTER))
	assert.Equal(t, "..", TruncateString("abcdefghij", 2, TRUNC_RIGHT))
	assert.Equal(t, "", TruncateString("abcdefghij", -1, TRUNC_RIGHT))
}

func TestHumanReadableTime(t *testing.T) {
	assert.Equal(t, "0s", HumanReadableTime(0))
	assert.Equal(t, "250ms", HumanReadableTime(250))
	assert.Equal(t, "1m 5s", HumanReadableTime(65_000))
	assert.Equal(t, "1h 5m", HumanReadableTime(3_900_000))
	assert.Equal(t, "-2s", HumanReadableTime(-2_000))
}

func TestHumanReadableBytes(t *testing.T) {
	assert.Equal(t, "0 B", HumanReadableBytes(0))
	assert.Equal(t, "1.0 KiB", HumanReadableBytes(1024))
}

func TestProgressBar(t *testing.T) {
	bar := ProgressBar(50, 10)
	assert.Equal(t, 5, strings.Count(bar, "█"))
	assert.Equal(t, 5, strings.Count(bar, "░"))
	assert.Equal(t, strings.Repeat("█", 10), ProgressBar(150, 10))
}

func TestLevels(t *testing.T) {
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	defer SetOutput(os.Stdout, os.Stderr)
	prev := GetLogLevel()
	defer SetLevel(prev)

	assert.NoError(t, SetLevelFromString("warn"))
	Info("hidden")
	Warn("shown")
	Error("broken")
	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "shown")
	assert.Contains(t, errOut.String(), "broken")

	assert.Error(t, SetLevelFromString("loud"))
}
