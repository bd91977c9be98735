package main

import (
	"fmt"

	"github.com/fwojciec/lexdoc"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	docs, err := deps.Documents.FindDocuments(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lexdoc.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents processed yet. Use 'lexdoc clean' to process one.")
		return nil
	}

	for _, d := range docs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d pages  %d paragraphs  %s\n",
			d.ProcessedAt.Format("2006-01-02"), d.Name, d.PageCount, d.ParagraphCount, d.SourcePath)
	}

	return nil
}
