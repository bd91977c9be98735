// Package fs provides file-based markdown output for processed documents.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/lexdoc"
)

// OutputName derives the output file name from a source PDF name.
// Example: sentenca.pdf → sentenca_extracted.md.
func OutputName(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return base + "_extracted.md"
}

// FormatDocument formats a document as markdown with YAML frontmatter:
// one "## Page N" heading per page, one block per paragraph.
func FormatDocument(doc *lexdoc.Document) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(doc.SourcePath)
	if doc.ContentHash != "" {
		b.WriteString("\nhash: ")
		b.WriteString(doc.ContentHash)
	}
	if !doc.ProcessedAt.IsZero() {
		b.WriteString("\nprocessed: ")
		b.WriteString(doc.ProcessedAt.Format("2006-01-02"))
	}
	b.WriteString("\n---\n")

	for _, page := range doc.Pages {
		fmt.Fprintf(&b, "\n## Page %d\n", page.Index+1)
		for _, paragraph := range page.Paragraphs {
			b.WriteString("\n")
			b.WriteString(paragraph)
			b.WriteString("\n")
		}
	}

	return b.String()
}

// Ensure Writer implements lexdoc.DocumentWriter at compile time.
var _ lexdoc.DocumentWriter = (*Writer)(nil)

// Writer writes documents as markdown files into a base directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteDocument writes a document to disk as a markdown file. Documents
// with no pages are refused so empty output files are never produced.
func (w *Writer) WriteDocument(ctx context.Context, doc *lexdoc.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	if len(doc.Pages) == 0 {
		return lexdoc.Errorf(lexdoc.EEMPTY, "document %q has no pages to write", doc.Name)
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	path := filepath.Join(w.baseDir, OutputName(doc.Name))
	return os.WriteFile(path, []byte(FormatDocument(doc)), 0644)
}
