package lib

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/gingerrexayers/filesynth-go/internal/filesynth/types"
)

// Supported folder distributions.
const (
	DistributionBalanced = "balanced"
	DistributionRandom   = "random"
)

// GeneratorOptions capture one generation run.
type GeneratorOptions struct {
	OutputDir         string
	SizeRange         SizeRange
	Count             int
	Depth             int
	FoldersPerLevel   int
	Prefix            string
	Extension         string
	Pattern           string
	Naming            string
	Distribution      string
	Seed              *int64
	ChecksumAlgorithm string
}

// GeneratorStats summarizes what a run produced.
type GeneratorStats struct {
	FilesCreated int
	TotalBytes   int64
	FoldersUsed  int
}

// Generator writes synthetic files across a planned folder layout, feeding a
// manifest as it goes. It is single-threaded on purpose: seed reproducibility
// depends on a strict draw order (size, then folder, then content bytes, per
// file index), and parallelizing would break that contract.
type Generator struct {
	opts    GeneratorOptions
	rng     *rand.Rand
	folders []string

	filesCreated int
	totalBytes   int64
	foldersUsed  map[string]struct{}
}

// NewGenerator pre-computes the folder plan and seeds a private RNG stream.
// The RNG is per-generator rather than the global source, so two runs with
// the same seed replay the exact same draw sequence. Unseeded runs use a
// time-derived seed.
func NewGenerator(opts GeneratorOptions) *Generator {
	seed := time.Now().UnixNano()
	if opts.Seed != nil {
		seed = *opts.Seed
	}
	return &Generator{
		opts:        opts,
		rng:         rand.New(rand.NewSource(seed)),
		folders:     PlanFolders(opts.Depth, opts.FoldersPerLevel),
		foldersUsed: make(map[string]struct{}),
	}
}

// validateOptions rejects bad configuration before any filesystem work.
func (g *Generator) validateOptions() error {
	switch g.opts.Pattern {
	case PatternRandom, PatternZeros, PatternOnes, PatternRepeating, PatternSequential:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPattern, g.opts.Pattern)
	}

	switch g.opts.Naming {
	case NamingSequential, NamingUUID, NamingTimestamp:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownNaming, g.opts.Naming)
	}

	switch g.opts.Distribution {
	case DistributionBalanced, DistributionRandom:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDistribution, g.opts.Distribution)
	}

	if _, err := NewHasher(g.opts.ChecksumAlgorithm); err != nil {
		return err
	}
	return nil
}

// drawSize returns the next file size. Equal bounds return the constant size
// without consuming an RNG draw.
func (g *Generator) drawSize() int64 {
	if g.opts.SizeRange.Min == g.opts.SizeRange.Max {
		return g.opts.SizeRange.Min
	}
	return g.opts.SizeRange.Min + g.rng.Int63n(g.opts.SizeRange.Max-g.opts.SizeRange.Min+1)
}

// pickFolder assigns the file at index to a planned folder. Balanced
// round-robins over the plan in its canonical order; random draws uniformly
// and independently per file.
func (g *Generator) pickFolder(index int) string {
	if len(g.folders) == 1 && g.folders[0] == "" {
		return ""
	}
	if g.opts.Distribution == DistributionBalanced {
		return g.folders[index%len(g.folders)]
	}
	return g.folders[g.rng.Intn(len(g.folders))]
}

// Generate writes every planned file. When manifestPath is non-empty, each
// file is recorded into a manifest that is finalized and saved on completion,
// and the manifest is returned. Generation is not transactional: a mid-run
// failure aborts the loop, leaving already written files on disk and no saved
// manifest.
func (g *Generator) Generate(manifestPath string) (*Manifest, error) {
	if err := g.validateOptions(); err != nil {
		return nil, err
	}

	if err := EnsureDir(g.opts.OutputDir); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var manifest *Manifest
	if manifestPath != "" {
		manifest = NewManifest(manifestPath)
		manifest.SetConfig(g.config())
	}

	for i := 0; i < g.opts.Count; i++ {
		// Draw order is part of the seed contract: size first, then folder.
		fileSize := g.drawSize()
		folderPath := g.pickFolder(i)

		if folderPath != "" {
			if err := EnsureDir(filepath.Join(g.opts.OutputDir, folderPath)); err != nil {
				return nil, fmt.Errorf("failed to create folder %s: %w", folderPath, err)
			}
			g.foldersUsed[folderPath] = struct{}{}
		}

		filename, err := GenerateFilename(g.opts.Prefix, i, g.opts.Extension, g.opts.Naming, g.opts.Count)
		if err != nil {
			return nil, err
		}

		relativePath := filename
		if folderPath != "" {
			relativePath = filepath.Join(folderPath, filename)
		}
		fullPath := filepath.Join(g.opts.OutputDir, relativePath)

		if err := g.writeFile(fullPath, fileSize); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", relativePath, err)
		}

		g.filesCreated++
		g.totalBytes += fileSize

		if manifest != nil {
			// The checksum comes from re-reading the written file, not from
			// hashing the outgoing stream.
			if err := manifest.AddFile(relativePath, fullPath, g.opts.ChecksumAlgorithm); err != nil {
				return nil, err
			}
		}
	}

	if manifest != nil {
		if err := manifest.Finalize(g.opts.OutputDir); err != nil {
			return nil, err
		}
		if err := manifest.Save(); err != nil {
			return nil, fmt.Errorf("failed to save manifest: %w", err)
		}
	}

	return manifest, nil
}

func (g *Generator) writeFile(fullPath string, size int64) error {
	file, err := os.Create(fullPath)
	if err != nil {
		return err
	}
	if err := WritePattern(file, g.opts.Pattern, size, g.rng); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func (g *Generator) config() types.GeneratorConfig {
	return types.GeneratorConfig{
		SizeRange:         fmt.Sprintf("%d-%d", g.opts.SizeRange.Min, g.opts.SizeRange.Max),
		SizeRangeHuman:    FormatSize(g.opts.SizeRange.Min) + "-" + FormatSize(g.opts.SizeRange.Max),
		Count:             g.opts.Count,
		Depth:             g.opts.Depth,
		FoldersPerLevel:   g.opts.FoldersPerLevel,
		Pattern:           g.opts.Pattern,
		Naming:            g.opts.Naming,
		Distribution:      g.opts.Distribution,
		Seed:              g.opts.Seed,
		ChecksumAlgorithm: g.opts.ChecksumAlgorithm,
	}
}

// Stats reports the running totals accumulated so far.
func (g *Generator) Stats() GeneratorStats {
	return GeneratorStats{
		FilesCreated: g.filesCreated,
		TotalBytes:   g.totalBytes,
		FoldersUsed:  len(g.foldersUsed),
	}
}
