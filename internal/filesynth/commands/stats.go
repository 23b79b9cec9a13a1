package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gingerrexayers/filesynth-go/internal/filesynth/lib"
)

// StatsOptions mirror the stats command's flag surface.
type StatsOptions struct {
	ManifestPath string
	BaseDir      string // optional override of the manifest's output directory
	Verbose      bool
}

// Stats is the main function for the 'stats' command. It runs content-defined
// chunking over every file a manifest lists and reports how much a
// dedup-capable storage target would collapse the dataset.
func Stats(opts StatsOptions) error {
	manifest, err := lib.LoadManifest(opts.ManifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("manifest file not found: %s", opts.ManifestPath)
		}
		return err
	}

	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = manifest.Data.Summary.OutputDirectory
	}
	if baseDir == "" {
		baseDir = filepath.Dir(opts.ManifestPath)
	}

	fmt.Printf("📊 Analyzing %d files in \"%s\"...\n\n", len(manifest.Data.Files), baseDir)

	stats := lib.NewChunkStats()
	for _, record := range manifest.Data.Files {
		fullPath := filepath.Join(baseDir, filepath.FromSlash(record.Path))
		if err := stats.AddFile(fullPath); err != nil {
			return fmt.Errorf("failed to chunk %s: %w", record.Path, err)
		}
		if opts.Verbose {
			fmt.Printf("   - Chunked: %s (%s)\n", record.Path, record.SizeHuman)
		}
	}
	if opts.Verbose {
		fmt.Println()
	}

	fmt.Printf("%-18s %s\n", "METRIC", "VALUE")
	fmt.Printf("%-18s %s\n", "================", "==============")
	fmt.Printf("%-18s %d\n", "Files", stats.FilesChunked)
	fmt.Printf("%-18s %d\n", "Total chunks", stats.TotalChunks)
	fmt.Printf("%-18s %d\n", "Unique chunks", stats.UniqueChunks)
	fmt.Printf("%-18s %s\n", "Total bytes", lib.FormatSize(stats.TotalBytes))
	fmt.Printf("%-18s %s\n", "Unique bytes", lib.FormatSize(stats.UniqueBytes))
	fmt.Printf("%-18s %.2f%%\n", "Dedup ratio", stats.DedupRatio()*100)

	return nil
}
