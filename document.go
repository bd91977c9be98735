package lexdoc

import (
	"context"
	"time"
)

// PageText is the raw text extracted from a single PDF page. An empty
// Text marks a blank page or a recovered extraction failure; empty
// pages stay in the sequence so page indexes remain stable.
type PageText struct {
	Index int
	Text  string
}

// PageParagraphs holds the cleaned paragraphs of one page. Paragraph
// order matches the original line order on the page.
type PageParagraphs struct {
	Index      int
	Paragraphs []string
}

// Document represents one processed PDF. Pages only contains pages
// that yielded at least one paragraph after cleaning. PageCount and
// ParagraphCount are derived summaries persisted with the processing
// record; history lookups return them without the page content itself.
type Document struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	SourcePath     string           `json:"sourcePath"` // local path or URL
	ContentHash    string           `json:"contentHash"`
	Pages          []PageParagraphs `json:"pages,omitempty"`
	PageCount      int              `json:"pageCount"`
	ParagraphCount int              `json:"paragraphCount"`
	ProcessedAt    time.Time        `json:"processedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Name == "" {
		return Errorf(EINVALID, "document name required")
	}
	if d.SourcePath == "" {
		return Errorf(EINVALID, "document source path required")
	}
	return nil
}

// CountParagraphs returns the total number of paragraphs across Pages.
func (d *Document) CountParagraphs() int {
	n := 0
	for _, p := range d.Pages {
		n += len(p.Paragraphs)
	}
	return n
}

// DocumentWriter persists a processed document in an output format
// (docx, markdown). Writers must refuse documents with no pages so
// empty output files are never produced.
type DocumentWriter interface {
	WriteDocument(ctx context.Context, doc *Document) error
}

// DocumentService records processing history so repeated runs over the
// same sources can skip unchanged documents.
type DocumentService interface {
	// RecordDocument records a processed document, replacing any
	// previous record for the same source path.
	RecordDocument(ctx context.Context, doc *Document) error

	// FindDocumentBySource retrieves the most recent record for a
	// source path. Returns ENOTFOUND if none exists.
	FindDocumentBySource(ctx context.Context, sourcePath string) (*Document, error)

	// FindDocuments retrieves all records, most recently processed first.
	FindDocuments(ctx context.Context) ([]*Document, error)
}
