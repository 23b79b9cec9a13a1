package commands

import (
	"fmt"
	"os"

	"github.com/gingerrexayers/filesynth-go/internal/filesynth/lib"
)

// ValidateOptions mirror the validate command's flag surface.
type ValidateOptions struct {
	ManifestPath string
	BaseDir      string // optional override of the manifest's output directory
	Strict       bool
	Verbose      bool
}

// Validate is the main function for the 'validate' command. It re-checks
// every manifest entry against disk and returns the layered exit code:
// 0 = all good, 1 = files missing, 2 = checksum mismatch, 3 = size mismatch.
func Validate(opts ValidateOptions) (int, error) {
	manifest, err := lib.LoadManifest(opts.ManifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return 1, fmt.Errorf("manifest file not found: %s", opts.ManifestPath)
		}
		return 1, err
	}

	validator := lib.NewValidator(manifest, opts.BaseDir)

	fmt.Println("🔍 Validating files...")
	fmt.Printf("   - Manifest: %s\n", opts.ManifestPath)
	fmt.Printf("   - Base directory: %s\n", validator.BaseDir)
	fmt.Printf("   - Total files: %d\n\n", len(manifest.Data.Files))

	ok, err := validator.Validate(opts.Strict)
	if err != nil {
		return 1, err
	}
	results := validator.Results

	status := func(failures int) string {
		if failures == 0 {
			return "PASS"
		}
		return "FAIL"
	}

	fmt.Printf("%-20s %-8s %s\n", "CHECK", "STATUS", "COUNT")
	fmt.Printf("%-20s %-8s %s\n", "==================", "======", "==========")
	fmt.Printf("%-20s %-8s %d/%d\n", "Files Present", status(results.FilesMissing), results.FilesFound, results.TotalFiles)
	fmt.Printf("%-20s %-8s %d/%d\n", "Size Matches", status(results.SizeMismatches), results.SizeMatches, results.FilesFound)
	fmt.Printf("%-20s %-8s %d/%d\n", "Checksum Matches", status(results.ChecksumMismatches), results.ChecksumMatches, results.FilesFound)

	if opts.Verbose && len(results.Errors) > 0 {
		fmt.Println("\nErrors:")
		for _, e := range results.Errors {
			fmt.Printf("   - %s\n", e.Message)
		}
	}

	if ok {
		fmt.Println("\n✅ Validation: PASSED")
	} else {
		fmt.Println("\n❌ Validation: FAILED")
	}

	return validator.ExitCode(), nil
}
