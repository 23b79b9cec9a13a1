package main

import (
	"fmt"

	"github.com/gingerrexayers/filesynth-go/internal/filesynth/commands"
	"github.com/gingerrexayers/filesynth-go/internal/filesynth/lib"
	"github.com/spf13/cobra"
)

// NewGenCommand creates the 'gen' command for the CLI.
func NewGenCommand() *cobra.Command {
	var opts commands.GenerateOptions
	var seed int64
	var profilePath string

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate test files with the specified parameters.",
		Long: `Generates synthetic binary files across a planned folder layout and writes
a manifest describing every file produced. Sizes accept human-readable forms
("10MB") or ranges ("1MB-10MB"); a seed makes size, folder and random-content
draws reproducible.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()

			// Profile values fill in whatever flags the user did not set
			// explicitly.
			if profilePath != "" {
				profile, err := lib.LoadProfile(profilePath)
				if err != nil {
					return err
				}
				if !flags.Changed("size") && profile.Size != "" {
					opts.Size = profile.Size
				}
				if !flags.Changed("count") && profile.Count > 0 {
					opts.Count = profile.Count
				}
				if !flags.Changed("depth") && profile.Depth > 0 {
					opts.Depth = profile.Depth
				}
				if !flags.Changed("folders") && profile.FoldersPerLevel > 0 {
					opts.Folders = profile.FoldersPerLevel
				}
				if !flags.Changed("output") && profile.Output != "" {
					opts.Output = profile.Output
				}
				if !flags.Changed("prefix") && profile.Prefix != "" {
					opts.Prefix = profile.Prefix
				}
				if !flags.Changed("extension") && profile.Extension != "" {
					opts.Extension = profile.Extension
				}
				if !flags.Changed("pattern") && profile.Pattern != "" {
					opts.Pattern = profile.Pattern
				}
				if !flags.Changed("naming") && profile.Naming != "" {
					opts.Naming = profile.Naming
				}
				if !flags.Changed("distribution") && profile.Distribution != "" {
					opts.Distribution = profile.Distribution
				}
				if !flags.Changed("checksum") && profile.Checksum != "" {
					opts.Checksum = profile.Checksum
				}
				if !flags.Changed("seed") && profile.Seed != nil {
					opts.Seed = profile.Seed
				}
			}

			if flags.Changed("seed") {
				opts.Seed = &seed
			}
			if opts.Size == "" {
				return fmt.Errorf("--size is required (directly or via --profile)")
			}

			return commands.Generate(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Size, "size", "s", "", `File size (e.g. "10MB") or range (e.g. "1MB-10MB")`)
	cmd.Flags().IntVarP(&opts.Count, "count", "c", 1, "Number of files to generate")
	cmd.Flags().IntVarP(&opts.Depth, "depth", "d", 0, "Folder depth level")
	cmd.Flags().IntVarP(&opts.Folders, "folders", "f", 2, "Number of folders per level")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "./testdata", "Output directory")
	cmd.Flags().StringVarP(&opts.Prefix, "prefix", "p", "testfile", "Filename prefix")
	cmd.Flags().StringVar(&opts.Extension, "extension", ".bin", "File extension")
	cmd.Flags().StringVar(&opts.Pattern, "pattern", "random", "Content pattern (random, zeros, ones, repeating, sequential)")
	cmd.Flags().StringVar(&opts.Naming, "naming", "sequential", "Naming scheme (sequential, uuid, timestamp)")
	cmd.Flags().StringVar(&opts.Distribution, "distribution", "balanced", "File distribution across folders (balanced, random)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducibility")
	cmd.Flags().StringVar(&opts.ManifestPath, "manifest", "", "Path to save manifest (default: OUTPUT_manifest.json)")
	cmd.Flags().BoolVar(&opts.NoManifest, "no-manifest", false, "Do not generate a manifest file")
	cmd.Flags().StringVar(&opts.Checksum, "checksum", "sha256", "Checksum algorithm for the manifest (md5, sha1, sha256)")
	cmd.Flags().StringVar(&profilePath, "profile", "", "YAML profile of generation parameters")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show detailed progress")

	return cmd
}
