package pattern

import (
	"iter"
	"slices"
	"strings"
)

// Lines yields the trimmed, non-blank lines of raw in input order.
// Duplicates are kept.
func Lines(raw string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for piece := range strings.SplitSeq(raw, "\n") {
			line := strings.TrimSpace(piece)
			if line == "" {
				continue
			}
			if !yield(line) {
				return
			}
		}
	}
}

// SplitLines collects Lines(raw).
func SplitLines(raw string) []string {
	return slices.Collect(Lines(raw))
}
