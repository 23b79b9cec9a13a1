package lib

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
)

// hashChunkSize is the read chunk size used when streaming a file through a
// hash, both after generation and during validation.
const hashChunkSize = 8 * 1024

// NewHasher returns a fresh hash state for one of the supported checksum
// algorithms: md5, sha1 or sha256.
func NewHasher(algorithm string) (hash.Hash, error) {
	switch algorithm {
	case "md5":
		return md5.New(), nil
	case "sha1":
		return sha1.New(), nil
	case "sha256":
		return sha256.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}
}

// ChecksumFile calculates the checksum of a file's contents by streaming it
// from disk in fixed-size chunks, so memory use stays bounded for any file
// size. It returns the lowercase hex-encoded digest.
func ChecksumFile(filePath, algorithm string) (string, error) {
	hasher, err := NewHasher(algorithm)
	if err != nil {
		return "", err
	}

	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	buf := make([]byte, hashChunkSize)
	if _, err := io.CopyBuffer(hasher, file, buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
