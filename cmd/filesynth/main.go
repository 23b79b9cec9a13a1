package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "filesynth",
		Short: "Generate synthetic test files for upload and storage benchmarking.",
		Long: `filesynth creates random binary test files with configurable sizes,
folder structures, and content patterns, records a manifest of everything it
produced, and can later validate or clean up that output against the manifest.`,
	}

	// Add commands
	rootCmd.AddCommand(NewGenCommand())
	rootCmd.AddCommand(NewValidateCommand())
	rootCmd.AddCommand(NewCleanCommand())
	rootCmd.AddCommand(NewStatsCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}
