package main

import (
	"os"

	"github.com/gingerrexayers/filesynth-go/internal/filesynth/commands"
	"github.com/spf13/cobra"
)

// NewValidateCommand creates the 'validate' command for the CLI.
func NewValidateCommand() *cobra.Command {
	var opts commands.ValidateOptions

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate files against manifest checksums.",
		Long: `Re-checks every file a manifest lists: existence, then size, then checksum.
The process exits 0 when everything matches, 1 when files are missing, 2 on
checksum mismatches and 3 on size mismatches (highest-priority problem wins).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := commands.Validate(opts)
			if err != nil {
				return err
			}
			if code != 0 {
				os.Exit(code)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.ManifestPath, "manifest", "m", "", "Path to manifest file (required)")
	cmd.Flags().StringVarP(&opts.BaseDir, "output", "o", "", "Directory containing the files to validate (overrides manifest output_directory)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Stop on the first validation error")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show per-file errors")

	cmd.MarkFlagRequired("manifest")

	return cmd
}
