package lib

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gingerrexayers/filesynth-go/internal/filesynth/types"
)

// Validator re-checks the files a manifest describes against disk. Each
// Validator owns one ValidationResults accumulator and is used for exactly
// one run.
type Validator struct {
	manifest *Manifest

	// BaseDir is where relative manifest paths are resolved. It is the
	// caller's override when given, else the manifest's recorded output
	// directory, else the manifest file's parent directory.
	BaseDir string

	Results types.ValidationResults
}

// NewValidator builds a validator for a loaded manifest. baseDir may be empty
// to use the manifest's recorded output directory.
func NewValidator(manifest *Manifest, baseDir string) *Validator {
	resolved := baseDir
	if resolved == "" {
		resolved = manifest.Data.Summary.OutputDirectory
	}
	if resolved == "" {
		resolved = filepath.Dir(manifest.Path)
	}
	return &Validator{manifest: manifest, BaseDir: resolved}
}

// Validate checks every manifest record in manifest order: existence first,
// then size, then checksum. A size mismatch skips the checksum for that file
// since the content is already known to differ. In strict mode the whole pass
// stops at the first discrepancy, leaving later records unchecked.
//
// The boolean result is true iff no file is missing and no size or checksum
// mismatches were found. Filesystem errors other than a missing file are
// fatal and returned as an error.
func (v *Validator) Validate(strict bool) (bool, error) {
	files := v.manifest.Data.Files
	v.Results.TotalFiles = len(files)

	for _, record := range files {
		fullPath := filepath.Join(v.BaseDir, filepath.FromSlash(record.Path))

		info, err := os.Stat(fullPath)
		if err != nil {
			if !os.IsNotExist(err) {
				return false, fmt.Errorf("failed to stat %s: %w", record.Path, err)
			}
			v.Results.FilesMissing++
			v.addError("missing", record.Path, fmt.Sprintf("File not found: %s", record.Path))
			if strict {
				return false, nil
			}
			continue
		}
		v.Results.FilesFound++

		if info.Size() != record.SizeBytes {
			v.Results.SizeMismatches++
			v.addError("size_mismatch", record.Path,
				fmt.Sprintf("Size mismatch: expected %d, got %d", record.SizeBytes, info.Size()))
			if strict {
				return false, nil
			}
			// Size already differs, so recomputing the checksum would be
			// wasted I/O.
			continue
		}
		v.Results.SizeMatches++

		algorithm := record.ChecksumAlgorithm
		if algorithm == "" {
			algorithm = "sha256"
		}
		actual, err := ChecksumFile(fullPath, algorithm)
		if err != nil {
			return false, fmt.Errorf("failed to checksum %s: %w", record.Path, err)
		}

		if actual == record.Checksum {
			v.Results.ChecksumMatches++
		} else {
			v.Results.ChecksumMismatches++
			v.addError("checksum_mismatch", record.Path,
				fmt.Sprintf("Checksum mismatch: expected %s, got %s", record.Checksum, actual))
			if strict {
				return false, nil
			}
		}
	}

	return v.Results.FilesMissing == 0 &&
		v.Results.SizeMismatches == 0 &&
		v.Results.ChecksumMismatches == 0, nil
}

// ExitCode maps the results to a priority-ordered process exit code:
// missing files win over checksum mismatches, which win over size
// mismatches. This ordering is part of the external contract.
func (v *Validator) ExitCode() int {
	switch {
	case v.Results.FilesMissing > 0:
		return 1
	case v.Results.ChecksumMismatches > 0:
		return 2
	case v.Results.SizeMismatches > 0:
		return 3
	default:
		return 0
	}
}

func (v *Validator) addError(kind, path, message string) {
	v.Results.Errors = append(v.Results.Errors, types.ValidationError{
		Type:    kind,
		Path:    path,
		Message: message,
	})
}
