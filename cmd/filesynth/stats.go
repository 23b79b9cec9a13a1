package main

import (
	"github.com/gingerrexayers/filesynth-go/internal/filesynth/commands"
	"github.com/spf13/cobra"
)

// NewStatsCommand creates the 'stats' command for the CLI.
func NewStatsCommand() *cobra.Command {
	var opts commands.StatsOptions

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Report dedup potential of a generated dataset.",
		Long: `Runs content-defined chunking over every file a manifest lists and reports
unique versus total chunks and bytes. Useful when the generated data will be
uploaded to a dedup-capable storage target: the dedup ratio predicts how much
the target will actually store.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Stats(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ManifestPath, "manifest", "m", "", "Path to manifest file (required)")
	cmd.Flags().StringVarP(&opts.BaseDir, "output", "o", "", "Directory containing the files to analyze (overrides manifest output_directory)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show per-file progress")

	cmd.MarkFlagRequired("manifest")

	return cmd
}
