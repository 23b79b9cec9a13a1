// Package lib contains the core, reusable services for the filesynth application.
package lib

import "errors"

// Sentinel errors for invalid input and configuration. Callers test for them
// with errors.Is; the wrapped messages carry the offending value.
var (
	ErrInvalidSize          = errors.New("invalid size format")
	ErrInvalidSizeRange     = errors.New("invalid size range")
	ErrUnknownPattern       = errors.New("unknown pattern")
	ErrUnknownNaming        = errors.New("unknown naming scheme")
	ErrUnknownDistribution  = errors.New("unknown distribution")
	ErrUnsupportedAlgorithm = errors.New("unsupported checksum algorithm")
	ErrInvalidManifest      = errors.New("invalid manifest")
)
