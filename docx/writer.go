// Package docx writes processed documents as Office Open XML (.docx)
// files: one "Page N" heading per page followed by that page's
// paragraphs. The package assembles the OOXML parts directly: a zip
// container holding the content-types manifest, package relationships,
// a minimal style sheet, and the document body.
package docx

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/lexdoc"
)

const (
	wordNS          = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	contentTypesNS  = "http://schemas.openxmlformats.org/package/2006/content-types"
	relationshipsNS = "http://schemas.openxmlformats.org/package/2006/relationships"

	officeDocumentRelType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	stylesRelType         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"

	documentContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	stylesContentType   = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
)

// headingStyle is the style applied to per-page headings.
const headingStyle = "Heading2"

// Ensure Writer implements lexdoc.DocumentWriter at compile time.
var _ lexdoc.DocumentWriter = (*Writer)(nil)

// Writer writes documents as .docx files into a base directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// OutputName derives the output file name from a source PDF name.
// Example: sentenca.pdf → sentenca_extracted.docx.
func OutputName(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return base + "_extracted.docx"
}

// WriteDocument writes the document to disk as a .docx file. Documents
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
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := writePackage(f, doc); err != nil {
		return err
	}
	return f.Close()
}

// writePackage assembles the OOXML zip container.
func writePackage(out io.Writer, doc *lexdoc.Document) error {
	zw := zip.NewWriter(out)

	parts := []struct {
		name  string
		build func() *etree.Document
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML},
		{"word/document.xml", func() *etree.Document { return documentXML(doc) }},
	}

	for _, part := range parts {
		entry, err := zw.Create(part.name)
		if err != nil {
			return err
		}
		if _, err := part.build().WriteTo(entry); err != nil {
			return err
		}
	}

	return zw.Close()
}

func newXMLDocument() *etree.Document {
	d := etree.NewDocument()
	d.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	return d
}

func contentTypesXML() *etree.Document {
	d := newXMLDocument()
	types := d.CreateElement("Types")
	types.CreateAttr("xmlns", contentTypesNS)

	rels := types.CreateElement("Default")
	rels.CreateAttr("Extension", "rels")
	rels.CreateAttr("ContentType", "application/vnd.openxmlformats-package.relationships+xml")

	xml := types.CreateElement("Default")
	xml.CreateAttr("Extension", "xml")
	xml.CreateAttr("ContentType", "application/xml")

	document := types.CreateElement("Override")
	document.CreateAttr("PartName", "/word/document.xml")
	document.CreateAttr("ContentType", documentContentType)

	styles := types.CreateElement("Override")
	styles.CreateAttr("PartName", "/word/styles.xml")
	styles.CreateAttr("ContentType", stylesContentType)

	return d
}

func packageRelsXML() *etree.Document {
	d := newXMLDocument()
	rels := d.CreateElement("Relationships")
	rels.CreateAttr("xmlns", relationshipsNS)

	rel := rels.CreateElement("Relationship")
	rel.CreateAttr("Id", "rId1")
	rel.CreateAttr("Type", officeDocumentRelType)
	rel.CreateAttr("Target", "word/document.xml")

	return d
}

func documentRelsXML() *etree.Document {
	d := newXMLDocument()
	rels := d.CreateElement("Relationships")
	rels.CreateAttr("xmlns", relationshipsNS)

	rel := rels.CreateElement("Relationship")
	rel.CreateAttr("Id", "rId1")
	rel.CreateAttr("Type", stylesRelType)
	rel.CreateAttr("Target", "styles.xml")

	return d
}

func stylesXML() *etree.Document {
	d := newXMLDocument()
	styles := d.CreateElement("w:styles")
	styles.CreateAttr("xmlns:w", wordNS)

	style := styles.CreateElement("w:style")
	style.CreateAttr("w:type", "paragraph")
	style.CreateAttr("w:styleId", headingStyle)
	style.CreateElement("w:name").CreateAttr("w:val", "heading 2")

	pPr := style.CreateElement("w:pPr")
	pPr.CreateElement("w:outlineLvl").CreateAttr("w:val", "1")

	rPr := style.CreateElement("w:rPr")
	rPr.CreateElement("w:b")
	rPr.CreateElement("w:sz").CreateAttr("w:val", "28")

	return d
}

func documentXML(doc *lexdoc.Document) *etree.Document {
	d := newXMLDocument()
	document := d.CreateElement("w:document")
	document.CreateAttr("xmlns:w", wordNS)
	body := document.CreateElement("w:body")

	for _, page := range doc.Pages {
		appendHeading(body, fmt.Sprintf("Page %d", page.Index+1))
		for _, paragraph := range page.Paragraphs {
			appendParagraph(body, paragraph)
		}
	}

	return d
}

func appendHeading(body *etree.Element, text string) {
	p := body.CreateElement("w:p")
	pPr := p.CreateElement("w:pPr")
	pPr.CreateElement("w:pStyle").CreateAttr("w:val", headingStyle)
	appendRun(p, text)
}

func appendParagraph(body *etree.Element, text string) {
	appendRun(body.CreateElement("w:p"), text)
}

func appendRun(p *etree.Element, text string) {
	t := p.CreateElement("w:r").CreateElement("w:t")
	t.CreateAttr("xml:space", "preserve")
	t.SetText(text)
}
