// Package lexdoc extracts machine-readable text from Brazilian
// court-document PDFs (TJSP) and normalizes it into clean,
// paragraph-structured prose. It strips recurring legal boilerplate,
// detects expressions repeated across a document's pages, filters
// extraction artifacts line by line, and reassembles the survivors
// into paragraphs suitable for downstream analysis.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency or concern
// (e.g., pdf/, sqlite/, clean/, gemini/).
package lexdoc
