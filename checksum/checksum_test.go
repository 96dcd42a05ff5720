package checksum

import (
	"os"
	"path/filepath"
	"testing"

	"phototree/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileDigest(t *testing.T) {
	p := filepath.Join(t.TempDir(), "hello.txt")
	require.NoError(t, os.WriteFile(p, []byte("hello"), 0644))

	t.Run("MD5", func(t *testing.T) {
		sum, err := FileDigest(p, config.HASH_MD5)
		assert.NoError(t, err)
		assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", sum)
	})

	t.Run("SHA256", func(t *testing.T) {
		sum, err := FileDigest(p, config.HASH_SHA256)
		assert.NoError(t, err)
		assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", sum)
	})

	t.Run("XXHash", func(t *testing.T) {
		a, err := FileDigest(p, config.HASH_XXHASH)
		assert.NoError(t, err)
		assert.Len(t, a, 16)

		other := filepath.Join(t.TempDir(), "other.txt")
		require.NoError(t, os.WriteFile(other, []byte("hello"), 0644))
		b, err := FileDigest(other, config.HASH_XXHASH)
		assert.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := FileDigest(filepath.Join(t.TempDir(), "nope"), config.HASH_XXHASH)
		assert.Error(t, err)
	})

	t.Run("UnknownAlgorithm", func(t *testing.T) {
		_, err := FileDigest(p, config.HashAlgorithm("crc"))
		assert.Error(t, err)
	})
}
