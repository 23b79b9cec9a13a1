package main

import (
	"github.com/gingerrexayers/filesynth-go/internal/filesynth/commands"
	"github.com/spf13/cobra"
)

// NewCleanCommand creates the 'clean' command for the CLI.
func NewCleanCommand() *cobra.Command {
	var opts commands.CleanOptions

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove generated test files using a manifest.",
		Long: `Deletes the files a manifest lists and prunes folders left empty.
Only manifest-listed paths are deleted unless --all is given, which removes
the whole output directory and the manifest itself. A --keep file of
gitignore-style patterns preserves matching files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Clean(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ManifestPath, "manifest", "m", "./manifest.json", "Path to manifest file")
	cmd.Flags().StringVarP(&opts.BaseDir, "output", "o", "", "Output directory to clean (overrides manifest output_directory)")
	cmd.Flags().BoolVar(&opts.RemoveAll, "all", false, "Remove the entire output directory including the manifest")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Show what would be deleted without deleting")
	cmd.Flags().StringVar(&opts.KeepFile, "keep", "", "File of gitignore-style patterns to preserve")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show per-file progress")

	return cmd
}
