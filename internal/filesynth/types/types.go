package types

// The JSON tags below define the persisted manifest format. Renaming a tag
// breaks compatibility with manifests written by earlier runs.

// ManifestVersion is the schema version written into every manifest.
const ManifestVersion = "1.0"

// GeneratorConfig is an immutable snapshot of the parameters a generation run
// was started with, embedded into the manifest for provenance.
type GeneratorConfig struct {
	SizeRange         string `json:"size_range"`
	SizeRangeHuman    string `json:"size_range_human"`
	Count             int    `json:"count"`
	Depth             int    `json:"depth"`
	FoldersPerLevel   int    `json:"folders_per_level"`
	Pattern           string `json:"pattern"`
	Naming            string `json:"naming"`
	Distribution      string `json:"distribution"`
	Seed              *int64 `json:"seed"`
	ChecksumAlgorithm string `json:"checksum_algorithm"`
}

// FileRecord describes one generated file. Records are appended in generation
// order and never mutated afterwards.
type FileRecord struct {
	Path              string `json:"path"` // relative, forward-slash separated
	SizeBytes         int64  `json:"size_bytes"`
	SizeHuman         string `json:"size_human"`
	Checksum          string `json:"checksum"`
	ChecksumAlgorithm string `json:"checksum_algorithm"`
	CreatedAt         string `json:"created_at"`
	ModifiedAt        string `json:"modified_at"`
	Permissions       string `json:"permissions"` // octal string, e.g. "644"
}

// Summary holds aggregate statistics computed once when a manifest is
// finalized. FolderCount includes every ancestor folder implied by any file
// path; MaxDepth is the largest separator count among file paths.
type Summary struct {
	TotalFiles      int    `json:"total_files"`
	TotalSizeBytes  int64  `json:"total_size_bytes"`
	TotalSizeHuman  string `json:"total_size_human"`
	FolderCount     int    `json:"folder_count"`
	MaxDepth        int    `json:"max_depth"`
	OutputDirectory string `json:"output_directory"`
}

// ManifestData is the full persisted manifest structure.
type ManifestData struct {
	Version         string          `json:"version"`
	GeneratedAt     string          `json:"generated_at"`
	GeneratorConfig GeneratorConfig `json:"generator_config"`
	Summary         Summary         `json:"summary"`
	Files           []FileRecord    `json:"files"`
}

// ValidationError records a single per-file validation problem.
type ValidationError struct {
	Type    string `json:"type"` // "missing", "size_mismatch" or "checksum_mismatch"
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationResults accumulates counters for one validation run. A fresh
// struct is used per run; results are never reused.
type ValidationResults struct {
	TotalFiles         int
	FilesFound         int
	FilesMissing       int
	SizeMatches        int
	SizeMismatches     int
	ChecksumMatches    int
	ChecksumMismatches int
	Errors             []ValidationError
}
