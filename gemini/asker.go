// Package gemini provides a Google Gemini implementation of
// lexdoc.Asker for the batch experiment runner.
package gemini

import (
	"context"

	"github.com/fwojciec/lexdoc"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is specified.
const DefaultModel = "gemini-2.5-flash"

// Ensure Asker implements lexdoc.Asker at compile time.
var _ lexdoc.Asker = (*Asker)(nil)

// Asker implements lexdoc.Asker using Google Gemini.
type Asker struct {
	client *genai.Client
	model  string
}

// NewAsker creates a new Asker. An empty model selects DefaultModel.
func NewAsker(client *genai.Client, model string) *Asker {
	if model == "" {
		model = DefaultModel
	}
	return &Asker{client: client, model: model}
}

// Ask sends the prompt to the model and returns its response text.
func (a *Asker) Ask(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", lexdoc.Errorf(lexdoc.EINVALID, "prompt required")
	}

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", lexdoc.Errorf(lexdoc.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// Low temperature keeps repeated executions over the same document
// comparable.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a legal analyst. Answer based only on the court document provided. If the answer is not in the document, say so.",
			}},
		},
		Temperature: &temp,
	}
}
