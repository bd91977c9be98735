package lexdoc

import "context"

// Asker sends a prompt to a language model and returns its response.
// Used by the batch experiment runner; the normalization pipeline
// never calls a model.
type Asker interface {
	Ask(ctx context.Context, prompt string) (string, error)
}
