package lib

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SizeRange holds the inclusive byte bounds a file size is drawn from.
// Min == Max means every file gets a constant size.
type SizeRange struct {
	Min int64
	Max int64
}

// sizeUnits maps unit suffixes to binary multipliers (1024^n).
var sizeUnits = map[string]int64{
	"B":  1,
	"KB": 1 << 10,
	"MB": 1 << 20,
	"GB": 1 << 30,
	"TB": 1 << 40,
}

// sizePattern accepts a non-negative (possibly fractional) number followed by
// an optional unit. Matching happens after upper-casing, so input is
// case-insensitive.
var sizePattern = regexp.MustCompile(`^([\d.]+)\s*([KMGT]?B?)$`)

// ParseSize converts a human size string like "10MB" or "1.5gb" to a byte
// count, flooring fractional results. A missing unit means bytes.
func ParseSize(text string) (int64, error) {
	s := strings.ToUpper(strings.TrimSpace(text))

	m := sizePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q (use forms like \"10MB\" or \"1.5GB\")", ErrInvalidSize, text)
	}

	number, unit := m[1], m[2]
	if unit == "" {
		unit = "B"
	}
	multiplier, ok := sizeUnits[unit]
	if !ok {
		return 0, fmt.Errorf("%w: unknown unit %q", ErrInvalidSize, unit)
	}

	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid number %q", ErrInvalidSize, number)
	}

	size := int64(value * float64(multiplier))
	if size < 0 {
		// Unreachable through the accepted grammar; fail fast anyway.
		return 0, fmt.Errorf("%w: size cannot be negative", ErrInvalidSize)
	}

	return size, nil
}

// ParseSizeRange parses either a single size ("5MB") or a dash-separated
// range ("1MB-10MB"). A single size is used for both bounds.
func ParseSizeRange(text string) (SizeRange, error) {
	if !strings.Contains(text, "-") {
		size, err := ParseSize(text)
		if err != nil {
			return SizeRange{}, err
		}
		return SizeRange{Min: size, Max: size}, nil
	}

	parts := strings.Split(text, "-")
	if len(parts) != 2 {
		return SizeRange{}, fmt.Errorf("%w: %q (use forms like \"1MB-10MB\")", ErrInvalidSizeRange, text)
	}

	minSize, err := ParseSize(strings.TrimSpace(parts[0]))
	if err != nil {
		return SizeRange{}, err
	}
	maxSize, err := ParseSize(strings.TrimSpace(parts[1]))
	if err != nil {
		return SizeRange{}, err
	}

	if minSize > maxSize {
		return SizeRange{}, fmt.Errorf("%w: min size (%d) cannot be greater than max size (%d)", ErrInvalidSizeRange, minSize, maxSize)
	}

	return SizeRange{Min: minSize, Max: maxSize}, nil
}

// FormatSize converts a byte count into a human-readable string with two
// decimal digits, e.g. 10485760 -> "10.00 MB". The largest unit keeping the
// scaled value below 1024 is chosen, capped at TB.
func FormatSize(sizeBytes int64) string {
	value := float64(sizeBytes)
	unit := "B"

	for _, u := range []string{"B", "KB", "MB", "GB", "TB"} {
		unit = u
		if value < 1024.0 || unit == "TB" {
			break
		}
		value /= 1024.0
	}

	return fmt.Sprintf("%.2f %s", value, unit)
}
