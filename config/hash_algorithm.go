package config

import (
	"encoding/json"
	"fmt"
	"strings"
)

type HashAlgorithm string

const (
	HASH_MD5    HashAlgorithm = "md5"
	HASH_SHA256 HashAlgorithm = "sha256"
	HASH_XXHASH HashAlgorithm = "xxhash"
)

var supportedHashAlgorithms = []HashAlgorithm{HASH_MD5, HASH_SHA256, HASH_XXHASH}

func (h HashAlgorithm) String() string {
	switch h {
	case HASH_MD5, HASH_SHA256, HASH_XXHASH:
		return string(h)
	default:
		return "Unknown"
	}
}

func ParseHashAlgorithm(hashAlgorithmStr string) (HashAlgorithm, error) {
	h := HashAlgorithm(strings.ToLower(strings.TrimSpace(hashAlgorithmStr)))
	switch h {
	case HASH_MD5, HASH_SHA256, HASH_XXHASH:
		return h, nil
	default:
		return "", fmt.Errorf("invalid hash algorithm: %s. supported: %v", hashAlgorithmStr, supportedHashAlgorithms)
	}
}

func (h *HashAlgorithm) UnmarshalJSON(data []byte) error {
	var maybeHashAlgorithm string
	err := json.Unmarshal(data, &maybeHashAlgorithm)
	if err != nil {
		return err
	}
	parsed, err := ParseHashAlgorithm(maybeHashAlgorithm)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
