package lexdoc

import (
	"context"
	"io"
)

// PageExtractor extracts per-page raw text from a PDF byte stream.
// Implementations hide the PDF parser and recover per-page extraction
// failures into empty page texts, so a broken page never aborts the
// document. Only a stream-level failure (unreadable PDF) is an error.
type PageExtractor interface {
	ExtractPages(ctx context.Context, src io.ReaderAt, size int64) ([]PageText, error)
}
