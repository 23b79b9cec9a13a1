package lib

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
)

// Supported content patterns.
const (
	PatternRandom     = "random"
	PatternZeros      = "zeros"
	PatternOnes       = "ones"
	PatternRepeating  = "repeating"
	PatternSequential = "sequential"
)

// WriteChunkSize is the unit of chunked content emission. It is a multiple of
// every pattern unit length, so pattern alignment survives chunk boundaries.
const WriteChunkSize = 8 * 1024 * 1024 // 8 MiB

// WritePattern emits exactly size bytes of the given pattern to w, in chunks
// of at most WriteChunkSize, keeping peak memory at one chunk regardless of
// file size.
//
// The rng supplies bytes for the random pattern; the generator passes its
// seeded per-run stream so repeated runs reproduce content. rng may be nil
// for the non-random patterns.
func WritePattern(w io.Writer, pattern string, size int64, rng *rand.Rand) error {
	switch pattern {
	case PatternRandom:
		return writeRandom(w, size, rng)
	case PatternZeros:
		return writeBlock(w, []byte{0x00}, size)
	case PatternOnes:
		return writeBlock(w, []byte{0xFF}, size)
	case PatternRepeating:
		return writeBlock(w, []byte("ABCD"), size)
	case PatternSequential:
		unit := make([]byte, 256)
		for i := range unit {
			unit[i] = byte(i)
		}
		return writeBlock(w, unit, size)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPattern, pattern)
	}
}

func writeRandom(w io.Writer, size int64, rng *rand.Rand) error {
	buf := make([]byte, chunkLen(size))
	remaining := size
	for remaining > 0 {
		n := len(buf)
		if remaining < int64(n) {
			n = int(remaining)
		}
		chunk := buf[:n]
		rng.Read(chunk) // never returns an error
		if _, err := w.Write(chunk); err != nil {
			return err
		}
		remaining -= int64(n)
	}
	return nil
}

// writeBlock repeats unit up to size bytes, truncating the final chunk.
func writeBlock(w io.Writer, unit []byte, size int64) error {
	blockSize := chunkLen(size)
	// Round up to whole units so the block tiles cleanly.
	blockSize = (blockSize + len(unit) - 1) / len(unit) * len(unit)
	block := bytes.Repeat(unit, blockSize/len(unit))

	remaining := size
	for remaining > 0 {
		n := len(block)
		if remaining < int64(n) {
			n = int(remaining)
		}
		if _, err := w.Write(block[:n]); err != nil {
			return err
		}
		remaining -= int64(n)
	}
	return nil
}

func chunkLen(size int64) int {
	if size < WriteChunkSize {
		if size <= 0 {
			return 1
		}
		return int(size)
	}
	return WriteChunkSize
}
