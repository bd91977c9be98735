package mock

import (
	"context"

	"github.com/fwojciec/lexdoc"
)

var _ lexdoc.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of lexdoc.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, doc *lexdoc.Document) error
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, doc *lexdoc.Document) error {
	return w.WriteDocumentFn(ctx, doc)
}
