package clean

import (
	"regexp"
	"strings"
	"unicode"
)

// LineKind classifies the outcome of normalizing one raw line.
type LineKind int

const (
	// LineDropped marks a line removed entirely: repeated boilerplate
	// or a short artifact with no structural meaning.
	LineDropped LineKind = iota

	// LineBlank marks an empty line kept as a paragraph boundary.
	LineBlank

	// LineKept marks a cleaned line, possibly indent-prefixed.
	LineKept
)

// Line is the normalized form of one raw input line. Text is empty
// unless Kind is LineKept.
type Line struct {
	Kind LineKind
	Text string
}

// indentPrefix is one normalized indentation level. Kept lines carry
// at most two levels regardless of source whitespace irregularity.
const indentPrefix = "  "

// maxLeadingWhitespace is the largest leading-whitespace run still
// treated as meaningful alignment; anything wider is extraction noise.
const maxLeadingWhitespace = 10

// lineException matches short lines that must survive the word-count
// filter: numbered list markers ("1.", "12)"), D/M/YYYY dates, and
// article references ("Art. 5").
var lineException = regexp.MustCompile(`^\d+[.)]\s*|^\d{1,2}/\d{1,2}/\d{4}|^Art\.?\s*\d+`)

// NormalizeLine decides whether a raw line marks a paragraph boundary,
// is dropped, or is kept in cleaned form. The decision order is fixed:
// blank check, repeated-expression check, short-line check with
// structural exceptions, then indent normalization. Every input maps
// deterministically to exactly one outcome.
func NormalizeLine(raw string, repeated RepeatedSet, minWords int) Line {
	trimmed := strings.TrimSpace(raw)

	if trimmed == "" {
		return Line{Kind: LineBlank}
	}

	if repeated.Contains(trimmed) {
		return Line{Kind: LineDropped}
	}

	if len(strings.Fields(trimmed)) < minWords && !lineException.MatchString(trimmed) {
		return Line{Kind: LineDropped}
	}

	if leading := leadingWhitespace(raw); leading > 0 && leading <= maxLeadingWhitespace {
		levels := leading / 4
		if levels > 2 {
			levels = 2
		}
		return Line{Kind: LineKept, Text: strings.Repeat(indentPrefix, levels) + trimmed}
	}

	return Line{Kind: LineKept, Text: trimmed}
}

// leadingWhitespace counts leading whitespace characters on the
// original, untrimmed line.
func leadingWhitespace(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			break
		}
		n++
	}
	return n
}
