package lib

import (
	"fmt"
	"os"
	"time"
)

// EnsureDir creates a directory and any missing parents. It is idempotent.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// FileMetadata holds the stat-derived fields recorded per manifest entry.
type FileMetadata struct {
	SizeBytes   int64
	CreatedAt   string
	ModifiedAt  string
	Permissions string
}

// GetFileMetadata stats a file and returns its manifest metadata. The
// portable stat surface exposes no birth time, so CreatedAt mirrors the
// modification time.
func GetFileMetadata(filePath string) (FileMetadata, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return FileMetadata{}, err
	}

	modified := info.ModTime().UTC().Format(time.RFC3339)
	return FileMetadata{
		SizeBytes:   info.Size(),
		CreatedAt:   modified,
		ModifiedAt:  modified,
		Permissions: fmt.Sprintf("%03o", info.Mode().Perm()),
	}, nil
}
