// Package pdf extracts per-page text from PDF files using the
// ledongthuc/pdf text-layer parser. Scanned (image-only) PDFs yield
// empty pages; OCR is out of scope.
package pdf

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/lexdoc"
	lpdf "github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"
)

// Ensure Extractor implements lexdoc.PageExtractor at compile time.
var _ lexdoc.PageExtractor = (*Extractor)(nil)

// Extractor reads the embedded text layer of a PDF page by page.
type Extractor struct {
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger used for per-page extraction warnings.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractPages extracts the text of every page in order. A page whose
// extraction fails contributes an empty string and a warning log;
// per-page failures never abort the document. Page indexes start at 0.
func (e *Extractor) ExtractPages(ctx context.Context, src io.ReaderAt, size int64) ([]lexdoc.PageText, error) {
	reader, err := lpdf.NewReader(src, size)
	if err != nil {
		return nil, lexdoc.Errorf(lexdoc.EINVALID, "unreadable PDF: %v", err)
	}

	numPages := reader.NumPage()
	fonts := make(map[string]*lpdf.Font)
	pages := make([]lexdoc.PageText, 0, numPages)

	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text, err := extractPage(reader, i, fonts)
		if err != nil {
			e.logger.Warn("page extraction failed", "page", i, "err", err)
			text = ""
		}
		pages = append(pages, lexdoc.PageText{Index: i - 1, Text: text})
	}

	return pages, nil
}

// extractPage reads one page's plain text, reusing font definitions
// across pages. The parser panics on some malformed content streams,
// so panics are recovered into per-page errors here.
func extractPage(reader *lpdf.Reader, pageNum int, fonts map[string]*lpdf.Font) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page content stream: %v", r)
		}
	}()

	page := reader.Page(pageNum)
	if page.V.IsNull() {
		return "", nil
	}

	for _, name := range page.Fonts() {
		if _, ok := fonts[name]; !ok {
			font := page.Font(name)
			fonts[name] = &font
		}
	}

	raw, err := page.GetPlainText(fonts)
	if err != nil {
		return "", err
	}

	// Extracted text often carries decomposed accents; normalize so the
	// repeated-expression detector sees one spelling per line.
	return norm.NFC.String(raw), nil
}
