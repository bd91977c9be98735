// Package clean implements the text normalization pipeline for
// court-document PDFs: boilerplate stripping, repeated-expression
// detection, alignment-aware line filtering, and paragraph assembly.
//
// The pipeline runs two passes over a document. The first pass builds
// a document-wide set of repeated expressions from every page's lines;
// the second pass cleans each page against that set. All stages are
// pure and deterministic, and nothing here is shared across documents.
package clean

import (
	"strings"

	"github.com/fwojciec/lexdoc"
)

// DefaultMinWords is the word-count threshold below which a line is
// dropped unless it matches a structural exception.
const DefaultMinWords = 3

// DefaultThreshold is the repetition threshold used when cleaning a
// single page in isolation.
const DefaultThreshold = 3

// DocumentThreshold is the more aggressive repetition threshold used
// for document-wide detection across all pages.
const DocumentThreshold = 2

// Ensure Pipeline implements lexdoc.Cleaner at compile time.
var _ lexdoc.Cleaner = (*Pipeline)(nil)

// Pipeline is the full normalization pipeline for one document.
type Pipeline struct {
	stripper  *BoilerplateStripper
	minWords  int
	threshold int
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithMinWords sets the word-count threshold for the line filter.
// Defaults to DefaultMinWords.
func WithMinWords(n int) Option {
	return func(p *Pipeline) {
		p.minWords = n
	}
}

// WithThreshold sets the repetition threshold for document-wide
// repeated-expression detection. Defaults to DocumentThreshold.
func WithThreshold(n int) Option {
	return func(p *Pipeline) {
		p.threshold = n
	}
}

// New creates a Pipeline with compiled boilerplate patterns.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		stripper:  NewBoilerplateStripper(),
		minWords:  DefaultMinWords,
		threshold: DocumentThreshold,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Clean runs the two-pass pipeline over a document's extracted pages.
// The repeated-expression pass completes over the whole corpus before
// any per-page cleaning starts. Pages with no extractable text and
// pages that clean down to nothing are omitted; page order is
// preserved for the rest.
func (p *Pipeline) Clean(pages []lexdoc.PageText) []lexdoc.PageParagraphs {
	var corpus []string
	for _, pg := range pages {
		if strings.TrimSpace(pg.Text) == "" {
			continue
		}
		corpus = append(corpus, strings.Split(pg.Text, "\n")...)
	}
	repeated := DetectRepeated(corpus, p.threshold)

	var out []lexdoc.PageParagraphs
	for _, pg := range pages {
		if strings.TrimSpace(pg.Text) == "" {
			continue
		}
		paragraphs := p.CleanText(pg.Text, repeated)
		if len(paragraphs) == 0 {
			continue
		}
		out = append(out, lexdoc.PageParagraphs{Index: pg.Index, Paragraphs: paragraphs})
	}
	return out
}

// CleanText cleans one page of raw text against a previously detected
// repeated-expression set and returns its paragraphs. A nil set
// triggers self-detection over the page's own lines with
// DefaultThreshold.
func (p *Pipeline) CleanText(text string, repeated RepeatedSet) []string {
	if text == "" {
		return nil
	}

	text = p.stripper.Strip(text)
	lines := strings.Split(text, "\n")

	if repeated == nil {
		repeated = DetectRepeated(lines, DefaultThreshold)
	}

	normalized := make([]Line, 0, len(lines))
	for _, raw := range lines {
		line := NormalizeLine(raw, repeated, p.minWords)
		if line.Kind == LineDropped {
			continue
		}
		normalized = append(normalized, line)
	}

	return AssembleParagraphs(normalized)
}
