package process_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/lexdoc"
	"github.com/fwojciec/lexdoc/mock"
	"github.com/fwojciec/lexdoc/process"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passthroughDeps() (*mock.PageExtractor, *mock.Cleaner, *mock.DocumentWriter) {
	extractor := &mock.PageExtractor{
		ExtractPagesFn: func(ctx context.Context, src io.ReaderAt, size int64) ([]lexdoc.PageText, error) {
			return []lexdoc.PageText{{Index: 0, Text: "raw page text"}}, nil
		},
	}
	cleaner := &mock.Cleaner{
		CleanFn: func(pages []lexdoc.PageText) []lexdoc.PageParagraphs {
			return []lexdoc.PageParagraphs{{Index: 0, Paragraphs: []string{"O réu foi citado regularmente."}}}
		},
	}
	writer := &mock.DocumentWriter{
		WriteDocumentFn: func(ctx context.Context, doc *lexdoc.Document) error {
			return nil
		},
	}
	return extractor, cleaner, writer
}

func TestProcessor_ProcessBytes(t *testing.T) {
	t.Parallel()

	t.Run("extracts cleans writes and records", func(t *testing.T) {
		t.Parallel()

		extractor, cleaner, _ := passthroughDeps()

		var written, recorded *lexdoc.Document
		writer := &mock.DocumentWriter{
			WriteDocumentFn: func(ctx context.Context, doc *lexdoc.Document) error {
				written = doc
				return nil
			},
		}
		documents := &mock.DocumentService{
			FindDocumentBySourceFn: func(ctx context.Context, sourcePath string) (*lexdoc.Document, error) {
				return nil, lexdoc.Errorf(lexdoc.ENOTFOUND, "no record")
			},
			RecordDocumentFn: func(ctx context.Context, doc *lexdoc.Document) error {
				recorded = doc
				return nil
			},
		}

		p := &process.Processor{Extractor: extractor, Cleaner: cleaner, Writer: writer, Documents: documents}
		doc, err := p.ProcessBytes(context.Background(), "sentenca.pdf", "/in/sentenca.pdf", []byte("%PDF-fake"))
		require.NoError(t, err)

		assert.Equal(t, "sentenca.pdf", doc.Name)
		assert.Equal(t, "/in/sentenca.pdf", doc.SourcePath)
		assert.NotEmpty(t, doc.ContentHash)
		assert.Equal(t, 1, doc.PageCount)
		assert.Equal(t, 1, doc.ParagraphCount)
		assert.Same(t, doc, written)
		assert.Same(t, doc, recorded)
	})

	t.Run("skips unchanged content with ECONFLICT", func(t *testing.T) {
		t.Parallel()

		extractor, cleaner, writer := passthroughDeps()
		content := []byte("%PDF-fake")

		// First run records the hash, second run should see it unchanged.
		var savedHash string
		documents := &mock.DocumentService{
			FindDocumentBySourceFn: func(ctx context.Context, sourcePath string) (*lexdoc.Document, error) {
				if savedHash == "" {
					return nil, lexdoc.Errorf(lexdoc.ENOTFOUND, "no record")
				}
				return &lexdoc.Document{SourcePath: sourcePath, ContentHash: savedHash}, nil
			},
			RecordDocumentFn: func(ctx context.Context, doc *lexdoc.Document) error {
				savedHash = doc.ContentHash
				return nil
			},
		}

		p := &process.Processor{Extractor: extractor, Cleaner: cleaner, Writer: writer, Documents: documents}

		_, err := p.ProcessBytes(context.Background(), "a.pdf", "/in/a.pdf", content)
		require.NoError(t, err)

		_, err = p.ProcessBytes(context.Background(), "a.pdf", "/in/a.pdf", content)
		require.Error(t, err)
		assert.Equal(t, lexdoc.ECONFLICT, lexdoc.ErrorCode(err))
	})

	t.Run("force reprocesses unchanged content", func(t *testing.T) {
		t.Parallel()

		extractor, cleaner, writer := passthroughDeps()
		documents := &mock.DocumentService{
			FindDocumentBySourceFn: func(ctx context.Context, sourcePath string) (*lexdoc.Document, error) {
				t.Fatal("force should not consult existing records")
				return nil, nil
			},
			RecordDocumentFn: func(ctx context.Context, doc *lexdoc.Document) error {
				return nil
			},
		}

		p := &process.Processor{Extractor: extractor, Cleaner: cleaner, Writer: writer, Documents: documents, Force: true}
		_, err := p.ProcessBytes(context.Background(), "a.pdf", "/in/a.pdf", []byte("%PDF-fake"))
		require.NoError(t, err)
	})

	t.Run("returns EEMPTY when cleaning leaves nothing", func(t *testing.T) {
		t.Parallel()

		extractor, _, writer := passthroughDeps()
		cleaner := &mock.Cleaner{
			CleanFn: func(pages []lexdoc.PageText) []lexdoc.PageParagraphs {
				return nil
			},
		}

		p := &process.Processor{Extractor: extractor, Cleaner: cleaner, Writer: writer}
		_, err := p.ProcessBytes(context.Background(), "a.pdf", "/in/a.pdf", []byte("%PDF-fake"))

		require.Error(t, err)
		assert.Equal(t, lexdoc.EEMPTY, lexdoc.ErrorCode(err))
	})

	t.Run("works without a document store", func(t *testing.T) {
		t.Parallel()

		extractor, cleaner, writer := passthroughDeps()
		p := &process.Processor{Extractor: extractor, Cleaner: cleaner, Writer: writer}

		doc, err := p.ProcessBytes(context.Background(), "a.pdf", "/in/a.pdf", []byte("%PDF-fake"))
		require.NoError(t, err)
		assert.Equal(t, 1, doc.ParagraphCount)
	})
}

func TestProcessor_ProcessFile(t *testing.T) {
	t.Parallel()

	t.Run("reads the file and uses its base name", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "acordao.pdf")
		require.NoError(t, os.WriteFile(path, []byte("%PDF-fake"), 0644))

		extractor, cleaner, writer := passthroughDeps()
		p := &process.Processor{Extractor: extractor, Cleaner: cleaner, Writer: writer}

		doc, err := p.ProcessFile(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, "acordao.pdf", doc.Name)
		assert.Equal(t, path, doc.SourcePath)
	})

	t.Run("returns ENOTFOUND for a missing file", func(t *testing.T) {
		t.Parallel()

		extractor, cleaner, writer := passthroughDeps()
		p := &process.Processor{Extractor: extractor, Cleaner: cleaner, Writer: writer}

		_, err := p.ProcessFile(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))
		require.Error(t, err)
		assert.Equal(t, lexdoc.ENOTFOUND, lexdoc.ErrorCode(err))
	})
}

func TestProcessor_ProcessURL(t *testing.T) {
	t.Parallel()

	t.Run("downloads and names the document from the URL path", func(t *testing.T) {
		t.Parallel()

		extractor, cleaner, writer := passthroughDeps()
		downloader := &mock.Downloader{
			DownloadFn: func(ctx context.Context, url string) ([]byte, error) {
				return []byte("%PDF-fake"), nil
			},
		}

		p := &process.Processor{Extractor: extractor, Cleaner: cleaner, Writer: writer, Downloader: downloader}
		doc, err := p.ProcessURL(context.Background(), "https://esaj.tjsp.jus.br/docs/sentenca.pdf")
		require.NoError(t, err)
		assert.Equal(t, "sentenca.pdf", doc.Name)
		assert.Equal(t, "https://esaj.tjsp.jus.br/docs/sentenca.pdf", doc.SourcePath)
	})

	t.Run("returns EINVALID when no downloader is configured", func(t *testing.T) {
		t.Parallel()

		extractor, cleaner, writer := passthroughDeps()
		p := &process.Processor{Extractor: extractor, Cleaner: cleaner, Writer: writer}

		_, err := p.ProcessURL(context.Background(), "https://example.com/a.pdf")
		require.Error(t, err)
		assert.Equal(t, lexdoc.EINVALID, lexdoc.ErrorCode(err))
	})
}

func TestProcessor_ProcessDir(t *testing.T) {
	t.Parallel()

	t.Run("processes every PDF and counts failures", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.pdf"), []byte("%PDF-a"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "b.pdf"), []byte("%PDF-b"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "c.pdf"), []byte("%PDF-c"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

		extractor, _, writer := passthroughDeps()
		cleaner := &mock.Cleaner{
			CleanFn: func(pages []lexdoc.PageText) []lexdoc.PageParagraphs {
				return []lexdoc.PageParagraphs{{Index: 0, Paragraphs: []string{"Parágrafo limpo do texto."}}}
			},
		}
		// b.pdf fails at extraction, the others succeed.
		failing := &mock.PageExtractor{
			ExtractPagesFn: func(ctx context.Context, src io.ReaderAt, size int64) ([]lexdoc.PageText, error) {
				buf := make([]byte, size)
				if _, err := src.ReadAt(buf, 0); err != nil {
					return nil, err
				}
				if string(buf) == "%PDF-b" {
					return nil, lexdoc.Errorf(lexdoc.EINVALID, "corrupt file")
				}
				return extractor.ExtractPagesFn(ctx, src, size)
			},
		}

		p := &process.Processor{Extractor: failing, Cleaner: cleaner, Writer: writer, Concurrency: 2}
		summary, err := p.ProcessDir(context.Background(), dir)
		require.NoError(t, err)

		assert.Equal(t, 2, summary.Processed)
		assert.Equal(t, 1, summary.Failed)
		assert.Zero(t, summary.Skipped)
	})

	t.Run("counts unchanged documents as skipped", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.pdf"), []byte("%PDF-a"), 0644))

		extractor, cleaner, writer := passthroughDeps()
		documents := &mock.DocumentService{
			FindDocumentBySourceFn: func(ctx context.Context, sourcePath string) (*lexdoc.Document, error) {
				return &lexdoc.Document{SourcePath: sourcePath, ContentHash: "deadbeef"}, nil
			},
		}
		// Match the stored hash by precomputing through a first pass.
		first := &process.Processor{Extractor: extractor, Cleaner: cleaner, Writer: writer}
		doc, err := first.ProcessFile(context.Background(), filepath.Join(dir, "a.pdf"))
		require.NoError(t, err)
		documents.FindDocumentBySourceFn = func(ctx context.Context, sourcePath string) (*lexdoc.Document, error) {
			return &lexdoc.Document{SourcePath: sourcePath, ContentHash: doc.ContentHash}, nil
		}

		p := &process.Processor{Extractor: extractor, Cleaner: cleaner, Writer: writer, Documents: documents}
		summary, err := p.ProcessDir(context.Background(), dir)
		require.NoError(t, err)

		assert.Equal(t, 1, summary.Skipped)
		assert.Zero(t, summary.Processed)
		assert.Zero(t, summary.Failed)
	})

	t.Run("returns ENOTFOUND for a directory without PDFs", func(t *testing.T) {
		t.Parallel()

		extractor, cleaner, writer := passthroughDeps()
		p := &process.Processor{Extractor: extractor, Cleaner: cleaner, Writer: writer}

		_, err := p.ProcessDir(context.Background(), t.TempDir())
		require.Error(t, err)
		assert.Equal(t, lexdoc.ENOTFOUND, lexdoc.ErrorCode(err))
	})
}
