package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fwojciec/lexdoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ lexdoc.DocumentService = (*DocumentService)(nil)

// DocumentService implements lexdoc.DocumentService using SQLite. It
// stores one processing record per source path: name, content hash of
// the source bytes, and page/paragraph summary counts. Page content
// itself lives in the written output files, not here.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// RecordDocument records a processed document, replacing any previous
// record for the same source path.
func (s *DocumentService) RecordDocument(ctx context.Context, doc *lexdoc.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	doc.ProcessedAt = time.Now().UTC()
	doc.PageCount = len(doc.Pages)
	doc.ParagraphCount = doc.CountParagraphs()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, name, source_path, content_hash, page_count, paragraph_count, processed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(source_path) DO UPDATE SET
			id = excluded.id,
			name = excluded.name,
			content_hash = excluded.content_hash,
			page_count = excluded.page_count,
			paragraph_count = excluded.paragraph_count,
			processed_at = excluded.processed_at
	`, doc.ID, doc.Name, doc.SourcePath, doc.ContentHash, doc.PageCount,
		doc.ParagraphCount, doc.ProcessedAt.Format(time.RFC3339))

	return err
}

// FindDocumentBySource retrieves the record for a source path.
// Returns ENOTFOUND if none exists.
func (s *DocumentService) FindDocumentBySource(ctx context.Context, sourcePath string) (*lexdoc.Document, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, source_path, content_hash, page_count, paragraph_count, processed_at
		FROM documents
		WHERE source_path = ?
	`, sourcePath)

	doc, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return nil, lexdoc.Errorf(lexdoc.ENOTFOUND, "no record for source %q", sourcePath)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// FindDocuments retrieves all records, most recently processed first.
func (s *DocumentService) FindDocuments(ctx context.Context) ([]*lexdoc.Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, source_path, content_hash, page_count, paragraph_count, processed_at
		FROM documents
		ORDER BY processed_at DESC, name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*lexdoc.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// scanner abstracts sql.Row and sql.Rows for scanDocument.
type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(s scanner) (*lexdoc.Document, error) {
	var doc lexdoc.Document
	var processedAt string

	if err := s.Scan(&doc.ID, &doc.Name, &doc.SourcePath, &doc.ContentHash,
		&doc.PageCount, &doc.ParagraphCount, &processedAt); err != nil {
		return nil, err
	}

	var err error
	doc.ProcessedAt, err = time.Parse(time.RFC3339, processedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse processed_at: %w", err)
	}
	return &doc, nil
}
