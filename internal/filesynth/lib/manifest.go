package lib

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gingerrexayers/filesynth-go/internal/filesynth/types"
)

// Manifest manages the persisted record of one generation run. Lifecycle:
// NewManifest -> SetConfig -> AddFile per generated file -> Finalize -> Save.
// A saved manifest is read back with LoadManifest.
type Manifest struct {
	Path string
	Data types.ManifestData
}

// NewManifest creates an empty manifest that will be saved to manifestPath.
func NewManifest(manifestPath string) *Manifest {
	return &Manifest{
		Path: manifestPath,
		Data: types.ManifestData{
			Version: types.ManifestVersion,
			Files:   []types.FileRecord{},
		},
	}
}

// SetConfig stores the generator configuration and stamps the generation time.
func (m *Manifest) SetConfig(cfg types.GeneratorConfig) {
	m.Data.GeneratorConfig = cfg
	m.Data.GeneratedAt = time.Now().UTC().Format(time.RFC3339)
}

// AddFile stats and checksums a freshly written file and appends its record.
// Path separators are normalized to forward slashes.
func (m *Manifest) AddFile(relativePath, fullPath, algorithm string) error {
	meta, err := GetFileMetadata(fullPath)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", relativePath, err)
	}
	checksum, err := ChecksumFile(fullPath, algorithm)
	if err != nil {
		return fmt.Errorf("failed to checksum %s: %w", relativePath, err)
	}

	m.Data.Files = append(m.Data.Files, types.FileRecord{
		Path:              filepath.ToSlash(relativePath),
		SizeBytes:         meta.SizeBytes,
		SizeHuman:         FormatSize(meta.SizeBytes),
		Checksum:          checksum,
		ChecksumAlgorithm: algorithm,
		CreatedAt:         meta.CreatedAt,
		ModifiedAt:        meta.ModifiedAt,
		Permissions:       meta.Permissions,
	})
	return nil
}

// Finalize computes the summary from the current file list. FolderCount
// counts every distinct folder a file path implies plus all of its ancestors;
// MaxDepth is the largest number of separators among file paths. The summary
// is computed from scratch here, never maintained incrementally.
func (m *Manifest) Finalize(outputDir string) error {
	absOutput, err := filepath.Abs(outputDir)
	if err != nil {
		return err
	}

	var totalSize int64
	folders := make(map[string]struct{})
	maxDepth := 0

	for _, record := range m.Data.Files {
		totalSize += record.SizeBytes

		if folder := path.Dir(record.Path); folder != "." {
			folders[folder] = struct{}{}
			parts := strings.Split(folder, "/")
			for i := 1; i < len(parts); i++ {
				folders[strings.Join(parts[:i], "/")] = struct{}{}
			}
		}

		if depth := strings.Count(record.Path, "/"); depth > maxDepth {
			maxDepth = depth
		}
	}

	m.Data.Summary = types.Summary{
		TotalFiles:      len(m.Data.Files),
		TotalSizeBytes:  totalSize,
		TotalSizeHuman:  FormatSize(totalSize),
		FolderCount:     len(folders),
		MaxDepth:        maxDepth,
		OutputDirectory: absOutput,
	}
	return nil
}

// Save serializes the manifest to its path as indented JSON, creating parent
// directories as needed.
func (m *Manifest) Save() error {
	if dir := filepath.Dir(m.Path); dir != "" {
		if err := EnsureDir(dir); err != nil {
			return err
		}
	}

	content, err := json.MarshalIndent(m.Data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(m.Path, content, 0644)
}

// requiredManifestKeys must all be present at the top level of a loaded
// manifest.
var requiredManifestKeys = []string{"version", "generated_at", "generator_config", "summary", "files"}

// LoadManifest reads a manifest back from disk. A missing file surfaces the
// underlying not-exist error; a structurally incomplete document fails with
// ErrInvalidManifest. The raw-map pre-pass exists because struct unmarshaling
// cannot distinguish absent keys from zero values.
func LoadManifest(manifestPath string) (*Manifest, error) {
	content, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	for _, key := range requiredManifestKeys {
		if _, ok := raw[key]; !ok {
			return nil, fmt.Errorf("%w: missing key %q", ErrInvalidManifest, key)
		}
	}

	manifest := NewManifest(manifestPath)
	if err := json.Unmarshal(content, &manifest.Data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	return manifest, nil
}
