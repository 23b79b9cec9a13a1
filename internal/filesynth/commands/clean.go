package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/denormal/go-gitignore"
	"github.com/gingerrexayers/filesynth-go/internal/filesynth/lib"
)

// CleanOptions mirror the clean command's flag surface.
type CleanOptions struct {
	ManifestPath string
	BaseDir      string // optional override of the manifest's output directory
	RemoveAll    bool   // remove the whole output directory plus the manifest
	DryRun       bool
	KeepFile     string // optional gitignore-style patterns of files to preserve
	Verbose      bool
}

// Clean is the main function for the 'clean' command. It deletes the files a
// manifest lists, prunes folders left empty, and optionally removes the whole
// output tree. Only manifest-listed paths are ever deleted unless --all is
// given.
func Clean(opts CleanOptions) error {
	if opts.RemoveAll && opts.KeepFile != "" {
		return fmt.Errorf("--all cannot be combined with --keep: removing the whole tree would not honor keep patterns")
	}

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
	// Keep-pattern matching needs absolute paths under an absolute base.
	if abs, err := filepath.Abs(baseDir); err == nil {
		baseDir = abs
	}

	files := manifest.Data.Files
	if len(files) == 0 {
		fmt.Println("No files to clean (manifest is empty)")
		return nil
	}

	var keepMatcher gitignore.GitIgnore
	if opts.KeepFile != "" {
		keepMatcher, err = loadKeepMatcher(opts.KeepFile, baseDir)
		if err != nil {
			return err
		}
	}

	if opts.DryRun {
		fmt.Println("Dry run - no files will be deleted")
	}
	fmt.Printf("🧹 Cleaning files from \"%s\"...\n", baseDir)

	var deleted, missing, kept, errCount int
	foldersToRemove := make(map[string]struct{})

	for _, record := range files {
		fullPath := filepath.Join(baseDir, filepath.FromSlash(record.Path))

		if _, err := os.Stat(fullPath); os.IsNotExist(err) {
			missing++
			if opts.Verbose {
				fmt.Printf("   - Missing: %s\n", record.Path)
			}
			continue
		}

		if keepMatcher != nil {
			// Match wants an absolute path under the matcher's base.
			if match := keepMatcher.Match(fullPath); match != nil && match.Ignore() {
				kept++
				if opts.Verbose {
					fmt.Printf("   - Kept: %s\n", record.Path)
				}
				continue
			}
		}

		if !opts.DryRun {
			if err := os.Remove(fullPath); err != nil {
				errCount++
				fmt.Fprintf(os.Stderr, "   - Error deleting %s: %v\n", record.Path, err)
				continue
			}
		}
		deleted++
		if opts.Verbose {
			fmt.Printf("   - Deleted: %s\n", record.Path)
		}

		// Record every ancestor folder up to the base dir so the sweep can
		// prune the whole emptied chain, not just the file's direct parent.
		cleanBase := filepath.Clean(baseDir)
		for folder := filepath.Dir(fullPath); folder != cleanBase && folder != filepath.Dir(folder); folder = filepath.Dir(folder) {
			foldersToRemove[folder] = struct{}{}
		}
	}

	// Remove folders the deletions left empty, deepest first.
	if !opts.DryRun {
		removeEmptyFolders(foldersToRemove)
	}

	if opts.RemoveAll && !opts.DryRun {
		if err := os.RemoveAll(baseDir); err != nil {
			return fmt.Errorf("failed to remove directory %s: %w", baseDir, err)
		}
		fmt.Printf("   - Removed directory: %s\n", baseDir)
		if err := os.Remove(opts.ManifestPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove manifest: %w", err)
		}
		fmt.Printf("   - Removed manifest: %s\n", opts.ManifestPath)
	}

	fmt.Println("✅ Cleanup complete!")
	fmt.Printf("   - Files deleted: %d\n", deleted)
	if kept > 0 {
		fmt.Printf("   - Files kept: %d\n", kept)
	}
	if missing > 0 {
		fmt.Printf("   - Files missing: %d\n", missing)
	}
	if errCount > 0 {
		fmt.Printf("   - Errors: %d\n", errCount)
	}
	if opts.DryRun {
		fmt.Println("This was a dry run. Run without --dry-run to actually delete files.")
	}

	return nil
}

// loadKeepMatcher compiles the keep-pattern file into a gitignore-style
// matcher rooted at the clean base directory.
func loadKeepMatcher(keepFile, baseDir string) (gitignore.GitIgnore, error) {
	content, err := os.ReadFile(keepFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read keep patterns: %w", err)
	}

	matcher := gitignore.New(
		strings.NewReader(string(content)),
		baseDir,
		func(err gitignore.Error) bool { return false },
	)
	if matcher == nil {
		return nil, fmt.Errorf("failed to parse keep patterns from %s", keepFile)
	}
	return matcher, nil
}

// removeEmptyFolders deletes any of the given folders that ended up empty.
// Deepest paths sort last lexically, so a reverse sort removes children
// before their parents.
func removeEmptyFolders(folders map[string]struct{}) {
	paths := make([]string, 0, len(folders))
	for folder := range folders {
		paths = append(paths, folder)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(paths)))

	for _, folder := range paths {
		entries, err := os.ReadDir(folder)
		if err == nil && len(entries) == 0 {
			os.Remove(folder)
		}
	}
}
