package domain

import (
	"fmt"
	"strings"
)

// Format identifies the magnitude-naming convention a currency uses.
// It is persisted and displayed as a short lowercase code.
type Format string

const (
	// IndianFormat names magnitudes as thousand/lakh/crore.
	IndianFormat Format = "isf"
	// WesternFormat names magnitudes as thousand/million/billion.
	WesternFormat Format = "usf"
)

// ParseFormat converts a persisted format code into a Format.
// Codes are matched case-insensitively; anything else is rejected.
func ParseFormat(code string) (Format, error) {
	switch strings.ToLower(code) {
	case string(IndianFormat):
		return IndianFormat, nil
	case string(WesternFormat):
		return WesternFormat, nil
	default:
		return "", fmt.Errorf("unknown format code %q", code)
	}
}

// String returns the persisted form of the format code.
func (f Format) String() string {
	return string(f)
}
