package cmd_env

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"phototree/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir string, body string) string {
	t.Helper()
	p := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0644))
	return p
}

func TestBinaryName(t *testing.T) {
	assert.Equal(t, "phototree", BinaryName(context.Background()))
	ctx := context.WithValue(context.Background(), ValuesKey, map[string]string{"binary_name": "/usr/local/bin/pt"})
	assert.Equal(t, "pt", BinaryName(ctx))
}

func TestExactArgs(t *testing.T) {
	assert.NoError(t, ExactArgs("scan", []string{"camera"}, 1, "SOURCE"))

	err := ExactArgs("scan", nil, 1, "SOURCE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SOURCE not provided")
	assert.Contains(t, err.Error(), "phototree help scan")

	err = ExactArgs("scan", []string{"a", "b"}, 1, "SOURCE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many arguments")
}

func TestApplyAndOpenCatalog(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "photos")
	require.NoError(t, os.MkdirAll(root, 0755))
	dbPath := filepath.Join(dir, "catalogs", "camera.db")
	cfgPath := writeConfig(t, dir, `{
  "sources": {"Camera": {"root": "`+root+`", "db": "`+dbPath+`"}},
  "output_dir": "`+filepath.Join(dir, "out")+`",
  "hash_algorithm": "sha256"
}`)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	common := RegisterCommonFlags(fs)
	require.NoError(t, fs.Parse([]string{"-c", cfgPath, "--log-level", "error", "camera"}))
	assert.Equal(t, []string{"camera"}, fs.Args())

	cfg, err := common.Apply(config.New())
	require.NoError(t, err)
	assert.Equal(t, config.HASH_SHA256, cfg.HashAlgorithm)

	opts := FingerprintOptions(cfg)
	assert.True(t, opts.UseHash)
	assert.Equal(t, []string{".jpg", ".jpeg"}, opts.ImageExtensions)

	ctx := context.Background()
	catalog, err := OpenCatalog(ctx, cfg, "CAMERA")
	require.NoError(t, err)
	defer catalog.Close(ctx)
	assert.Equal(t, "camera", catalog.Name)
	assert.Equal(t, root, catalog.Source.Root)
	assert.FileExists(t, dbPath)

	count, err := catalog.Repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	_, err = OpenCatalog(ctx, cfg, "phone")
	assert.ErrorIs(t, err, config.ErrUnknownSource)

	out, err := OutputPath(cfg, "report.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out", "report.txt"), out)
	assert.DirExists(t, filepath.Join(dir, "out"))
}

func TestApplyRejectsBadLogLevel(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	common := RegisterCommonFlags(fs)
	require.NoError(t, fs.Parse([]string{"-L", "loud"}))
	_, err := common.Apply(config.New())
	assert.Error(t, err)
}
