package checksum

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"phototree/config"

	"github.com/cespare/xxhash"
	"github.com/codingsince1985/checksum"
)

// FileDigest returns the hex encoded content digest of the file using the given algorithm.
func FileDigest(filePath string, algo config.HashAlgorithm) (string, error) {
	switch algo {
	case config.HASH_MD5:
		return checksum.MD5sum(filePath)
	case config.HASH_SHA256:
		return checksum.SHA256sum(filePath)
	case config.HASH_XXHASH:
		return xxhashFile(filePath)
	default:
		return "", fmt.Errorf("unsupported hash algorithm: %s", algo)
	}
}

func xxhashFile(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	h := xxhash.New()
	_, err = io.Copy(h, file)
	if err != nil {
		return "", err
	}
	return HexEncodeStr(h.Sum(nil)), nil
}

func HexEncodeStr(bytes []byte) string {
	return hex.EncodeToString(bytes)
}
