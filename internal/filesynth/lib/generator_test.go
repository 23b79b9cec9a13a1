package lib

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func baseGeneratorOptions(outputDir string) GeneratorOptions {
	return GeneratorOptions{
		OutputDir:         outputDir,
		SizeRange:         SizeRange{Min: 128, Max: 128},
		Count:             4,
		Prefix:            "test",
		Extension:         ".bin",
		Pattern:           PatternZeros,
		Naming:            NamingSequential,
		Distribution:      DistributionBalanced,
		ChecksumAlgorithm: "sha256",
	}
}

// collectFiles returns the relative slash-separated paths of every regular
// file under root.
func collectFiles(t *testing.T, root string) []string {
	t.Helper()
	var paths []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			relative, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			paths = append(paths, filepath.ToSlash(relative))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk failed: %v", err)
	}
	sort.Strings(paths)
	return paths
}

func TestGenerateFlatLayout(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "out")
	opts := baseGeneratorOptions(outputDir)

	generator := NewGenerator(opts)
	if _, err := generator.Generate(""); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := []string{"test_1.bin", "test_2.bin", "test_3.bin", "test_4.bin"}
	got := collectFiles(t, outputDir)
	if len(got) != len(want) {
		t.Fatalf("created %d files, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("file %d = %q, want %q", i, got[i], want[i])
		}
	}

	for _, relative := range got {
		info, err := os.Stat(filepath.Join(outputDir, relative))
		if err != nil {
			t.Fatalf("stat %s failed: %v", relative, err)
		}
		if info.Size() != 128 {
			t.Errorf("%s size = %d, want 128", relative, info.Size())
		}
	}

	stats := generator.Stats()
	if stats.FilesCreated != 4 || stats.TotalBytes != 512 {
		t.Errorf("stats = %+v, want 4 files / 512 bytes", stats)
	}
	if stats.FoldersUsed != 0 {
		t.Errorf("flat layout used %d folders, want 0", stats.FoldersUsed)
	}
}

func TestGenerateBalancedDistribution(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "out")
	opts := baseGeneratorOptions(outputDir)
	opts.Count = 8
	opts.Depth = 1
	opts.FoldersPerLevel = 4

	generator := NewGenerator(opts)
	if _, err := generator.Generate(""); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// 8 files over 4 leaf folders round-robins to exactly 2 per folder.
	perFolder := make(map[string]int)
	for _, relative := range collectFiles(t, outputDir) {
		perFolder[filepath.ToSlash(filepath.Dir(relative))]++
	}
	if len(perFolder) != 4 {
		t.Fatalf("files landed in %d folders, want 4: %v", len(perFolder), perFolder)
	}
	for folder, count := range perFolder {
		if count != 2 {
			t.Errorf("folder %s holds %d files, want 2", folder, count)
		}
	}
}

func TestGenerateSeedReproducible(t *testing.T) {
	seed := int64(1234)

	run := func(dir string) map[string][]byte {
		opts := baseGeneratorOptions(dir)
		opts.SizeRange = SizeRange{Min: 100, Max: 5000}
		opts.Count = 6
		opts.Depth = 1
		opts.FoldersPerLevel = 2
		opts.Pattern = PatternRandom
		opts.Distribution = DistributionRandom
		opts.Seed = &seed

		if _, err := NewGenerator(opts).Generate(""); err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		files := make(map[string][]byte)
		for _, relative := range collectFiles(t, dir) {
			content, err := os.ReadFile(filepath.Join(dir, relative))
			if err != nil {
				t.Fatalf("read %s failed: %v", relative, err)
			}
			files[relative] = content
		}
		return files
	}

	first := run(filepath.Join(t.TempDir(), "a"))
	second := run(filepath.Join(t.TempDir(), "b"))

	if len(first) != len(second) {
		t.Fatalf("runs produced %d and %d files", len(first), len(second))
	}
	for relative, content := range first {
		other, ok := second[relative]
		if !ok {
			t.Fatalf("second run is missing %s", relative)
		}
		if !bytes.Equal(content, other) {
			t.Errorf("content of %s differs between seeded runs", relative)
		}
	}
}

func TestGenerateSizeRangeRespected(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "out")
	opts := baseGeneratorOptions(outputDir)
	opts.SizeRange = SizeRange{Min: 10, Max: 20}
	opts.Count = 50

	if _, err := NewGenerator(opts).Generate(""); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for _, relative := range collectFiles(t, outputDir) {
		info, err := os.Stat(filepath.Join(outputDir, relative))
		if err != nil {
			t.Fatalf("stat failed: %v", err)
		}
		if info.Size() < 10 || info.Size() > 20 {
			t.Errorf("%s size %d outside [10, 20]", relative, info.Size())
		}
	}
}

func TestGenerateWritesManifest(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "out")
	manifestPath := filepath.Join(t.TempDir(), "manifest.json")
	seed := int64(7)

	opts := baseGeneratorOptions(outputDir)
	opts.Depth = 1
	opts.FoldersPerLevel = 2
	opts.Seed = &seed

	manifest, err := NewGenerator(opts).Generate(manifestPath)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if manifest == nil {
		t.Fatal("expected a manifest back")
	}

	loaded, err := LoadManifest(manifestPath)
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}
	if len(loaded.Data.Files) != 4 {
		t.Fatalf("manifest holds %d records, want 4", len(loaded.Data.Files))
	}
	if loaded.Data.GeneratorConfig.Seed == nil || *loaded.Data.GeneratorConfig.Seed != 7 {
		t.Errorf("manifest seed = %v, want 7", loaded.Data.GeneratorConfig.Seed)
	}
	if loaded.Data.GeneratorConfig.SizeRange != "128-128" {
		t.Errorf("size_range = %q, want 128-128", loaded.Data.GeneratorConfig.SizeRange)
	}
	if loaded.Data.Summary.TotalSizeBytes != 512 {
		t.Errorf("TotalSizeBytes = %d, want 512", loaded.Data.Summary.TotalSizeBytes)
	}

	// Manifest contents must validate against the files on disk.
	validator := NewValidator(loaded, outputDir)
	if ok, err := validator.Validate(false); err != nil || !ok {
		t.Errorf("fresh dataset should validate cleanly, ok=%v err=%v results=%+v", ok, err, validator.Results)
	}
}

func TestGenerateRejectsBadOptions(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*GeneratorOptions)
		want   error
	}{
		{"pattern", func(o *GeneratorOptions) { o.Pattern = "noise" }, ErrUnknownPattern},
		{"naming", func(o *GeneratorOptions) { o.Naming = "fancy" }, ErrUnknownNaming},
		{"distribution", func(o *GeneratorOptions) { o.Distribution = "skewed" }, ErrUnknownDistribution},
		{"checksum", func(o *GeneratorOptions) { o.ChecksumAlgorithm = "crc32" }, ErrUnsupportedAlgorithm},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			outputDir := filepath.Join(t.TempDir(), "out")
			opts := baseGeneratorOptions(outputDir)
			tc.mutate(&opts)

			if _, err := NewGenerator(opts).Generate(""); !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
			// Validation happens before any filesystem work.
			if _, err := os.Stat(outputDir); !os.IsNotExist(err) {
				t.Errorf("output directory should not exist after a rejected config")
			}
		})
	}
}
