package clean

import (
	"regexp"
	"strings"
)

// paragraphException matches short joined paragraphs that still carry
// meaning as single-line items: numbered items and article references.
// Looser than lineException: once lines have been joined, an article
// reference needs no trailing number.
var paragraphException = regexp.MustCompile(`^\d+[.)]|^Art\.`)

// AssembleParagraphs folds normalized lines into paragraphs. A blank
// marker flushes the accumulator; an indented line flushes and then
// starts a fresh paragraph (its indentation strips before storage);
// any other kept line joins the current paragraph. Joined paragraphs
// with fewer than three words are dropped afterwards unless they match
// a structural exception. The short filter reapplies at paragraph
// granularity since multi-line joins can produce short aggregates that
// still represent a meaningful single-line item.
func AssembleParagraphs(lines []Line) []string {
	var paragraphs []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = nil
		}
	}

	for _, line := range lines {
		switch {
		case line.Kind == LineDropped:
			// Already excluded upstream; never a structural signal.
		case line.Kind == LineBlank:
			flush()
		case strings.HasPrefix(line.Text, indentPrefix):
			flush()
			current = append(current, strings.TrimSpace(line.Text))
		default:
			current = append(current, line.Text)
		}
	}
	flush()

	kept := paragraphs[:0]
	for _, p := range paragraphs {
		if len(strings.Fields(p)) >= DefaultMinWords || paragraphException.MatchString(p) {
			kept = append(kept, p)
		}
	}
	return kept
}
