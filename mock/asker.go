package mock

import (
	"context"

	"github.com/fwojciec/lexdoc"
)

var _ lexdoc.Asker = (*Asker)(nil)

// Asker is a mock implementation of lexdoc.Asker.
type Asker struct {
	AskFn func(ctx context.Context, prompt string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, prompt string) (string, error) {
	return a.AskFn(ctx, prompt)
}
