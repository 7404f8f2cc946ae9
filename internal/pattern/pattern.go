// Package pattern turns a pasted list of URLs into one regex alternation.
//
// The pipeline is pure: Lines splits the raw text, Clean strips the selected
// URL prefix, Suffix appends the matching marker and Join builds the
// alternation. Compute runs all of it for one Options value.
package pattern

import (
	"iter"
	"slices"
	"strings"
)

const (
	// Delimiter separates the per-line patterns in the final expression.
	Delimiter = "|"

	WildcardSuffix = ".*"
	StrictSuffix   = "$"
)

// Suffix returns the marker appended for m, or "" for an invalid mode.
func (m MatchingMode) Suffix() string {
	switch m {
	case Wildcard:
		return WildcardSuffix
	case Strict:
		return StrictSuffix
	default:
		return ""
	}
}

// Suffix appends the matching marker for m to a cleaned line.
func Suffix(cleaned string, m MatchingMode) string {
	return cleaned + m.Suffix()
}

// Join concatenates the pattern lines with Delimiter, keeping their order.
func Join(lines iter.Seq[string]) string {
	var b strings.Builder
	first := true
	for line := range lines {
		if !first {
			b.WriteString(Delimiter)
		}
		b.WriteString(line)
		first = false
	}
	return b.String()
}

// Patterns yields one pattern line per candidate line of raw.
func Patterns(raw string, opts Options) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range Lines(raw) {
			if !yield(Suffix(Clean(line, opts.Cleanup), opts.Matching)) {
				return
			}
		}
	}
}

// ComputeLines returns the per-line patterns for raw.
func ComputeLines(raw string, opts Options) []string {
	return slices.Collect(Patterns(raw, opts))
}

// Compute builds the final alternation for raw. Blank input yields "".
func Compute(raw string, opts Options) string {
	return Join(Patterns(raw, opts))
}
