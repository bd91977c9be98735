package mock

import (
	"context"

	"github.com/fwojciec/lexdoc"
)

var _ lexdoc.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of lexdoc.DocumentService.
type DocumentService struct {
	RecordDocumentFn       func(ctx context.Context, doc *lexdoc.Document) error
	FindDocumentBySourceFn func(ctx context.Context, sourcePath string) (*lexdoc.Document, error)
	FindDocumentsFn        func(ctx context.Context) ([]*lexdoc.Document, error)
}

func (s *DocumentService) RecordDocument(ctx context.Context, doc *lexdoc.Document) error {
	return s.RecordDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentBySource(ctx context.Context, sourcePath string) (*lexdoc.Document, error) {
	return s.FindDocumentBySourceFn(ctx, sourcePath)
}

func (s *DocumentService) FindDocuments(ctx context.Context) ([]*lexdoc.Document, error) {
	return s.FindDocumentsFn(ctx)
}
