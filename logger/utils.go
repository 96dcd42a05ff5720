package L

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

func HumanReadableBytes(bytes uint64) string {
	return humanize.IBytes(bytes)
}

// progressPercentage should be a float64 between 0.0 and 100.0 (inclusive).
func ProgressBar(progressPercentage float64, barWidth int) string {
	if barWidth <= 0 {
		barWidth = 24
	}
	fraction := progressPercentage / 100.0
	fraction = max(fraction, 0.0)
	fraction = min(fraction, 1.0)

	filledWidth := int(float64(barWidth) * fraction)
	emptyWidth := barWidth - filledWidth

	return strings.Repeat("█", filledWidth) + strings.Repeat("░", emptyWidth)
}

func Line(width int) string {
	return strings.Repeat("-", width)
}

type TruncateMode int

const (
	TRUNC_RIGHT  TruncateMode = iota // ... at the end
	TRUNC_LEFT                       // ... at the beginning
	TRUNC_CENTER                     // ... in the middle
)

func TruncateString(input string, maxLen int, mode TruncateMode) string {
	ellipsis := "..."
	inputLen := utf8.RuneCountInString(input)
	ellipsisLen := utf8.RuneCountInString(ellipsis)

	if maxLen < 0 {
		return ""
	}
	if inputLen <= maxLen {
		return input
	}
	if maxLen < ellipsisLen {
		return ellipsis[:maxLen]
	}

	runes := []rune(input)
	keep := maxLen - ellipsisLen

	switch mode {
	case TRUNC_LEFT:
		return ellipsis + string(runes[inputLen-keep:])
	case TRUNC_CENTER:
		half := keep / 2
		return string(runes[:half]) + ellipsis + string(runes[inputLen-(keep-half):])
	default:
		return string(runes[:keep]) + ellipsis
	}
}

// HumanReadableTime converts a duration in milliseconds to a human-readable string.
// Examples: "1h 5m", "1m 5s", "250ms".
func HumanReadableTime(millis int64) string {
	if millis < 0 {
		return "-" + HumanReadableTime(-millis)
	}
	if millis == 0 {
		return "0s"
	}

	d := time.Duration(millis) * time.Millisecond
	hours := int64(d / time.Hour)
	d %= time.Hour
	minutes := int64(d / time.Minute)
	d %= time.Minute
	seconds := int64(d / time.Second)
	d %= time.Second
	ms := int64(d / time.Millisecond)

	parts := []string{}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}
	if ms > 0 && len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%dms", ms))
	}
	return strings.Join(parts, " ")
}
