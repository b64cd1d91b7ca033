// Package magnitude renders large numeric amounts as a scaled value plus a
// unit label, e.g. 1200000 -> "12.00000 lakh" in the Indian convention or
// "1.20000 million" in the Western one.
package magnitude

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Scale is an ordered table of magnitude labels and their multipliers,
// ascending by multiplier. The first entry is the "no unit" base with
// multiplier 1.
type Scale struct {
	labels      []string
	multipliers []int64
}

// Indian and Western are the two builtin naming conventions.
var (
	Indian  = mustScale([]string{"-", "thousand", "lakh", "crore"}, []int64{1, 1_000, 100_000, 10_000_000})
	Western = mustScale([]string{"-", "thousand", "million", "billion"}, []int64{1, 1_000, 1_000_000, 1_000_000_000})
)

// NewScale builds a custom scale from parallel label/multiplier lists.
// Multipliers must start at 1 and be strictly ascending; labels must be unique.
func NewScale(labels []string, multipliers []int64) (Scale, error) {
	if len(labels) == 0 || len(labels) != len(multipliers) {
		return Scale{}, errors.New("labels and multipliers must be non-empty and the same length")
	}
	if multipliers[0] != 1 {
		return Scale{}, errors.New("the base entry must have multiplier 1")
	}
	seen := make(map[string]struct{}, len(labels))
	for i, label := range labels {
		if _, dup := seen[label]; dup {
			return Scale{}, fmt.Errorf("duplicate label %q", label)
		}
		seen[label] = struct{}{}
		if i > 0 && multipliers[i] <= multipliers[i-1] {
			return Scale{}, fmt.Errorf("multipliers must be strictly ascending, got %d after %d", multipliers[i], multipliers[i-1])
		}
	}
	return Scale{
		labels:      append([]string(nil), labels...),
		multipliers: append([]int64(nil), multipliers...),
	}, nil
}

func mustScale(labels []string, multipliers []int64) Scale {
	s, err := NewScale(labels, multipliers)
	if err != nil {
		panic(err)
	}
	return s
}

// ToWords formats a non-negative value as a quotient with exactly 5 decimal
// places plus the label of the largest multiplier the value meets or exceeds.
// Values below the smallest named multiplier come back as a bare number,
// e.g. ToWords(999) == "999.00000" and ToWords(0) == "0.00000".
func (s Scale) ToWords(value decimal.Decimal) string {
	// Largest multiplier first, so exactly 1000000 in the Western scale is
	// "1.00000 million" rather than "1000.00000 thousand".
	for i := len(s.multipliers) - 1; i >= 1; i-- {
		m := decimal.NewFromInt(s.multipliers[i])
		if value.GreaterThanOrEqual(m) {
			return value.Div(m).StringFixed(5) + " " + s.labels[i]
		}
	}
	return value.StringFixed(5)
}

// ToDigits returns the multiplier for a label, or 1 if the label is not part
// of this scale.
func (s Scale) ToDigits(label string) int64 {
	for i, l := range s.labels {
		if l == label {
			return s.multipliers[i]
		}
	}
	return 1
}

// Labels returns a copy of the label list, smallest multiplier first.
func (s Scale) Labels() []string {
	return append([]string(nil), s.labels...)
}
