package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/lexdoc"
	"github.com/fwojciec/lexdoc/clean"
	"github.com/fwojciec/lexdoc/docx"
	"github.com/fwojciec/lexdoc/fs"
	lexhttp "github.com/fwojciec/lexdoc/http"
	"github.com/fwojciec/lexdoc/pdf"
	"github.com/fwojciec/lexdoc/process"
	lexslog "github.com/fwojciec/lexdoc/slog"
)

// Run executes the clean command.
func (c *CleanCmd) Run(deps *Dependencies) error {
	logger := slog.New(slog.NewTextHandler(deps.Stderr, nil))

	var writer lexdoc.DocumentWriter
	switch c.Format {
	case "markdown":
		writer = fs.NewWriter(c.Out)
	default:
		writer = docx.NewWriter(c.Out)
	}

	fetcher := lexhttp.NewFetcher(lexhttp.WithTimeout(c.Timeout))
	defer fetcher.Close()

	processor := &process.Processor{
		Extractor:   lexslog.NewLoggingExtractor(pdf.NewExtractor(pdf.WithLogger(logger)), logger),
		Cleaner:     clean.New(clean.WithMinWords(c.MinWords), clean.WithThreshold(c.Threshold)),
		Writer:      writer,
		Documents:   deps.Documents,
		Downloader:  fetcher,
		Concurrency: c.Concurrency,
		Force:       c.Force,
		Logger:      logger,
	}

	switch {
	case strings.HasPrefix(c.Source, "http://") || strings.HasPrefix(c.Source, "https://"):
		doc, err := processor.ProcessURL(deps.Ctx, c.Source)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lexdoc.ErrorMessage(err))
			return err
		}
		printDocument(deps, doc)
		return nil

	case isDir(c.Source):
		summary, err := processor.ProcessDir(deps.Ctx, c.Source)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lexdoc.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Processed %d documents (%d skipped, %d failed)\n",
			summary.Processed, summary.Skipped, summary.Failed)
		return nil

	default:
		if ext := strings.ToLower(filepath.Ext(c.Source)); ext != ".pdf" {
			err := lexdoc.Errorf(lexdoc.EINVALID, "source %q is not a PDF file", c.Source)
			fmt.Fprintf(deps.Stderr, "error: %s\n", lexdoc.ErrorMessage(err))
			return err
		}
		doc, err := processor.ProcessFile(deps.Ctx, c.Source)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lexdoc.ErrorMessage(err))
			return err
		}
		printDocument(deps, doc)
		return nil
	}
}

func printDocument(deps *Dependencies, doc *lexdoc.Document) {
	fmt.Fprintf(deps.Stdout, "Processed %q: %d pages, %d paragraphs\n",
		doc.Name, doc.PageCount, doc.ParagraphCount)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
