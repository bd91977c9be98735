package clean

import (
	"strings"
	"unicode/utf8"
)

// minRepeatedLen is the minimum trimmed length (in characters) for a
// line to be eligible for repeated-expression counting. Shorter lines
// such as "1." or section numbers are structural, not boilerplate, no
// matter how often they recur.
const minRepeatedLen = 10

// RepeatedSet holds the trimmed contents of lines classified as
// repeated boilerplate. It is built once per document and read-only
// during cleaning.
type RepeatedSet map[string]struct{}

// Contains reports whether the trimmed line is in the set.
func (s RepeatedSet) Contains(trimmed string) bool {
	_, ok := s[trimmed]
	return ok
}

// DetectRepeated counts exact trimmed-line occurrences in a single
// pass and returns the set of lines appearing at least threshold
// times. Lines of minRepeatedLen trimmed characters or fewer are never
// counted. The result is order-independent.
func DetectRepeated(lines []string, threshold int) RepeatedSet {
	counts := make(map[string]int)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if utf8.RuneCountInString(trimmed) > minRepeatedLen {
			counts[trimmed]++
		}
	}

	set := make(RepeatedSet)
	for line, n := range counts {
		if n >= threshold {
			set[line] = struct{}{}
		}
	}
	return set
}
