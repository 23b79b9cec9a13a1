package lib

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Supported naming schemes.
const (
	NamingSequential = "sequential"
	NamingUUID       = "uuid"
	NamingTimestamp  = "timestamp"
)

// GenerateFilename derives the name for the file at a 0-based index.
//
// Sequential names are 1-based and zero-padded to the digit count of
// totalCount (3 when totalCount is unknown). UUID and timestamp names are
// non-deterministic: they stay outside the seed contract even when a run is
// seeded. The extension is normalized to start with a dot; an empty extension
// means no suffix.
func GenerateFilename(prefix string, index int, extension, naming string, totalCount int) (string, error) {
	if extension != "" && !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}

	switch naming {
	case NamingSequential:
		padding := 3
		if totalCount > 0 {
			padding = len(strconv.Itoa(totalCount))
		}
		return fmt.Sprintf("%s_%0*d%s", prefix, padding, index+1, extension), nil

	case NamingUUID:
		return fmt.Sprintf("%s_%s%s", prefix, uuid.New(), extension), nil

	case NamingTimestamp:
		padding := 4
		if totalCount > 0 {
			padding = len(strconv.Itoa(totalCount))
		}
		timestamp := time.Now().Format("20060102_150405")
		return fmt.Sprintf("%s_%s_%0*d%s", prefix, timestamp, padding, index+1, extension), nil

	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownNaming, naming)
	}
}
