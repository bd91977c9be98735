// Package process provides document processing orchestration.
// It coordinates PDF extraction, text cleaning, output writing, and
// recording of processed documents.
package process

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/lexdoc"
	"golang.org/x/sync/errgroup"
)

// Processor orchestrates the processing of legal PDF documents.
type Processor struct {
	Extractor   lexdoc.PageExtractor
	Cleaner     lexdoc.Cleaner
	Writer      lexdoc.DocumentWriter
	Documents   lexdoc.DocumentService
	Downloader  lexdoc.Downloader
	Concurrency int
	Force       bool
	Logger      *slog.Logger
}

// Summary holds the outcome of a processing run.
type Summary struct {
	Processed int
	Skipped   int
	Failed    int
}

// hashBytes computes a hash of the content using xxhash.
func hashBytes(content []byte) string {
	h := xxhash.Sum64(content)
	return fmt.Sprintf("%x", h)
}

// ProcessBytes processes a single PDF held in memory. The name becomes the
// document name and sourcePath identifies where the bytes came from.
// Already-processed sources with an unchanged content hash are skipped
// with an ECONFLICT error unless Force is set.
func (p *Processor) ProcessBytes(ctx context.Context, name, sourcePath string, content []byte) (*lexdoc.Document, error) {
	hash := hashBytes(content)

	if !p.Force && p.Documents != nil {
		existing, err := p.Documents.FindDocumentBySource(ctx, sourcePath)
		if err != nil && lexdoc.ErrorCode(err) != lexdoc.ENOTFOUND {
			return nil, err
		}
		if existing != nil && existing.ContentHash == hash {
			return nil, lexdoc.Errorf(lexdoc.ECONFLICT, "document %q already processed with identical content", sourcePath)
		}
	}

	pages, err := p.Extractor.ExtractPages(ctx, bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, err
	}

	cleaned := p.Cleaner.Clean(pages)

	doc := &lexdoc.Document{
		Name:        name,
		SourcePath:  sourcePath,
		ContentHash: hash,
		Pages:       cleaned,
	}
	doc.PageCount = len(cleaned)
	doc.ParagraphCount = doc.CountParagraphs()
	if doc.ParagraphCount == 0 {
		return nil, lexdoc.Errorf(lexdoc.EEMPTY, "document %q contains no usable text", sourcePath)
	}

	if err := p.Writer.WriteDocument(ctx, doc); err != nil {
		return nil, err
	}

	if p.Documents != nil {
		if err := p.Documents.RecordDocument(ctx, doc); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// ProcessFile processes a single PDF file on disk.
func (p *Processor) ProcessFile(ctx context.Context, path string) (*lexdoc.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, lexdoc.Errorf(lexdoc.ENOTFOUND, "file %q not found", path)
		}
		return nil, err
	}
	return p.ProcessBytes(ctx, filepath.Base(path), path, content)
}

// ProcessURL downloads a PDF and processes it. The document name is
// derived from the last path segment of the URL.
func (p *Processor) ProcessURL(ctx context.Context, rawURL string) (*lexdoc.Document, error) {
	if p.Downloader == nil {
		return nil, lexdoc.Errorf(lexdoc.EINVALID, "URL processing is not configured")
	}

	content, err := p.Downloader.Download(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	name := "document.pdf"
	if u, err := url.Parse(rawURL); err == nil {
		if base := filepath.Base(u.Path); base != "." && base != "/" && base != "" {
			name = base
		}
	}

	return p.ProcessBytes(ctx, name, rawURL, content)
}

// ProcessDir processes every PDF file in a directory concurrently.
// Individual document failures are logged and counted without aborting
// the run.
func (p *Processor) ProcessDir(ctx context.Context, dir string) (*Summary, error) {
	paths, err := listPDFs(dir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, lexdoc.Errorf(lexdoc.ENOTFOUND, "no PDF files found in %q", dir)
	}

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	var mu sync.Mutex
	summary := &Summary{}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, path := range paths {
		g.Go(func() error {
			doc, err := p.ProcessFile(gctx, path)

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				summary.Processed++
				p.log().Info("processed document", slog.String("path", path), slog.Int("paragraphs", doc.ParagraphCount))
			case lexdoc.ErrorCode(err) == lexdoc.ECONFLICT:
				summary.Skipped++
				p.log().Info("skipped unchanged document", slog.String("path", path))
			default:
				summary.Failed++
				p.log().Error("failed to process document", slog.String("path", path), slog.Any("error", err))
			}
			return gctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return summary, err
	}
	return summary, nil
}

func (p *Processor) log() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

func listPDFs(dir string) ([]string, error) {
	var paths []string
	for _, pattern := range []string{"*.pdf", "*.PDF"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)
	return paths, nil
}
