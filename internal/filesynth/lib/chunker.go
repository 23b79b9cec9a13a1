package lib

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"github.com/aclements/go-rabin/rabin"
)

// Constants for the Rabin chunker configuration.
const (
	minChunkSize = 4 * 1024  // 4KB
	avgChunkSize = 8 * 1024  // 8KB
	maxChunkSize = 16 * 1024 // 16KB

	// A 64-bit irreducible polynomial over GF(2).
	defaultPoly = rabin.Poly64
	// The size of the rolling hash window.
	defaultWindowSize = 64
)

// rabinTable is a pre-computed table for the Rabin chunker. Initializing it
// is expensive, so it is built once and reused.
var rabinTable = rabin.NewTable(defaultPoly, defaultWindowSize)

// ChunkStats aggregates content-defined chunking results across the files of
// a generated dataset. Unique vs total chunk counts estimate how much a
// dedup-capable storage target would collapse the data.
type ChunkStats struct {
	FilesChunked int
	TotalChunks  int
	UniqueChunks int
	TotalBytes   int64
	UniqueBytes  int64

	seen map[string]struct{}
}

// NewChunkStats returns an empty accumulator.
func NewChunkStats() *ChunkStats {
	return &ChunkStats{seen: make(map[string]struct{})}
}

// AddFile splits one file into variable-sized chunks using Rabin
// fingerprinting and folds the chunk hashes into the running stats. The file
// is streamed through a tee buffer that holds at most the chunker's
// read-ahead, never the whole file, so arbitrarily large synthetic files are
// safe to analyze.
func (s *ChunkStats) AddFile(filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	var pending bytes.Buffer
	chunker := rabin.NewChunker(rabinTable,
		io.TeeReader(bufio.NewReader(file), &pending),
		minChunkSize, avgChunkSize, maxChunkSize)

	for {
		length, err := chunker.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		// An empty input reports one zero-length chunk before EOF.
		if length == 0 {
			continue
		}
		s.addChunk(pending.Next(length))
	}

	// A file smaller than the minimum chunk size may yield no chunks; treat
	// whatever remains buffered as a single final chunk.
	if pending.Len() > 0 {
		s.addChunk(pending.Next(pending.Len()))
	}

	s.FilesChunked++
	return nil
}

func (s *ChunkStats) addChunk(data []byte) {
	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])

	s.TotalChunks++
	s.TotalBytes += int64(len(data))

	if _, dup := s.seen[hash]; !dup {
		s.seen[hash] = struct{}{}
		s.UniqueChunks++
		s.UniqueBytes += int64(len(data))
	}
}

// DedupRatio is the fraction of bytes that survive deduplication. 1.0 means
// no duplication at all; lower values mean more collapsible data.
func (s *ChunkStats) DedupRatio() float64 {
	if s.TotalBytes == 0 {
		return 1.0
	}
	return float64(s.UniqueBytes) / float64(s.TotalBytes)
}
