package lexdoc

// Cleaner turns raw page texts into paragraph-structured pages.
// Implementations are pure and deterministic: identical input always
// yields identical output, and no state crosses document boundaries.
// Pages that yield no paragraphs are omitted from the result; an empty
// result means the whole document cleaned down to nothing.
type Cleaner interface {
	Clean(pages []PageText) []PageParagraphs
}
