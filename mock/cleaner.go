package mock

import "github.com/fwojciec/lexdoc"

var _ lexdoc.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of lexdoc.Cleaner.
type Cleaner struct {
	CleanFn func(pages []lexdoc.PageText) []lexdoc.PageParagraphs
}

func (c *Cleaner) Clean(pages []lexdoc.PageText) []lexdoc.PageParagraphs {
	return c.CleanFn(pages)
}
