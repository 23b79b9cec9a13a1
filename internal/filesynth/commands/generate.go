// Package commands contains the orchestration layer behind each filesynth
// subcommand. The cobra constructors in cmd/filesynth stay thin; all domain
// wiring happens here.
package commands

import (
	"fmt"
	"path/filepath"

	"github.com/gingerrexayers/filesynth-go/internal/filesynth/lib"
)

// GenerateOptions mirror the gen command's flag surface.
type GenerateOptions struct {
	Output       string
	Size         string
	Count        int
	Depth        int
	Folders      int
	Prefix       string
	Extension    string
	Pattern      string
	Naming       string
	Distribution string
	Seed         *int64
	ManifestPath string // empty means derive the default beside the output dir
	NoManifest   bool
	Checksum     string
	Verbose      bool
}

// DefaultManifestPath places the manifest next to the output directory with a
// matching name, e.g. ./testdata -> ./testdata_manifest.json.
func DefaultManifestPath(output string) string {
	return filepath.Join(filepath.Dir(output), filepath.Base(output)+"_manifest.json")
}

// Generate is the main function for the 'gen' command. It validates
// parameters, runs the file generator, and prints a summary.
func Generate(opts GenerateOptions) error {
	sizeRange, err := lib.ParseSizeRange(opts.Size)
	if err != nil {
		return err
	}

	if opts.Count < 1 {
		return fmt.Errorf("count must be at least 1")
	}
	if opts.Depth < 0 {
		return fmt.Errorf("depth cannot be negative")
	}
	if opts.Folders < 1 {
		return fmt.Errorf("folders must be at least 1")
	}

	manifestPath := ""
	if !opts.NoManifest {
		manifestPath = opts.ManifestPath
		if manifestPath == "" {
			manifestPath = DefaultManifestPath(opts.Output)
		}
	}

	if opts.Verbose {
		fmt.Println("Configuration:")
		fmt.Printf("   - Output directory: %s\n", opts.Output)
		fmt.Printf("   - File count: %d\n", opts.Count)
		fmt.Printf("   - Size range: %s - %s\n", lib.FormatSize(sizeRange.Min), lib.FormatSize(sizeRange.Max))
		fmt.Printf("   - Folder depth: %d\n", opts.Depth)
		fmt.Printf("   - Folders per level: %d\n", opts.Folders)
		fmt.Printf("   - Content pattern: %s\n", opts.Pattern)
		fmt.Printf("   - Naming scheme: %s\n", opts.Naming)
		fmt.Printf("   - Distribution: %s\n", opts.Distribution)
		if opts.Seed != nil {
			fmt.Printf("   - Random seed: %d\n", *opts.Seed)
		}
		if manifestPath != "" {
			fmt.Printf("   - Manifest: %s\n", manifestPath)
		}
	}

	generator := lib.NewGenerator(lib.GeneratorOptions{
		OutputDir:         opts.Output,
		SizeRange:         sizeRange,
		Count:             opts.Count,
		Depth:             opts.Depth,
		FoldersPerLevel:   opts.Folders,
		Prefix:            opts.Prefix,
		Extension:         opts.Extension,
		Pattern:           opts.Pattern,
		Naming:            opts.Naming,
		Distribution:      opts.Distribution,
		Seed:              opts.Seed,
		ChecksumAlgorithm: opts.Checksum,
	})

	fmt.Printf("📦 Generating %d files in \"%s\"...\n", opts.Count, opts.Output)

	if _, err := generator.Generate(manifestPath); err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	stats := generator.Stats()
	absOutput, err := filepath.Abs(opts.Output)
	if err != nil {
		absOutput = opts.Output
	}

	fmt.Println("✅ Generation complete!")
	fmt.Printf("   - Files created: %d\n", stats.FilesCreated)
	fmt.Printf("   - Total size: %s\n", lib.FormatSize(stats.TotalBytes))
	fmt.Printf("   - Folders used: %d\n", stats.FoldersUsed)
	fmt.Printf("   - Output directory: %s\n", absOutput)
	if manifestPath != "" {
		absManifest, err := filepath.Abs(manifestPath)
		if err != nil {
			absManifest = manifestPath
		}
		fmt.Printf("   - Manifest: %s\n", absManifest)
	}

	return nil
}
