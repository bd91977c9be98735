package mock

import (
	"context"
	"io"

	"github.com/fwojciec/lexdoc"
)

var _ lexdoc.PageExtractor = (*PageExtractor)(nil)

// PageExtractor is a mock implementation of lexdoc.PageExtractor.
type PageExtractor struct {
	ExtractPagesFn func(ctx context.Context, src io.ReaderAt, size int64) ([]lexdoc.PageText, error)
}

func (e *PageExtractor) ExtractPages(ctx context.Context, src io.ReaderAt, size int64) ([]lexdoc.PageText, error) {
	return e.ExtractPagesFn(ctx, src, size)
}
