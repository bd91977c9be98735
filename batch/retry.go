package batch

import (
	"context"
	"time"
)

// AskFunc is the signature of a single model call.
type AskFunc func(ctx context.Context, prompt string) (string, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for model-call retries:
// 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// AskWithRetryDelays attempts a model call with backoff retry logic.
// It retries len(delays) times after the initial attempt. The logger
// function, if provided, is called for each retry attempt. Configurable
// delays keep tests free of real waits.
func AskWithRetryDelays(ctx context.Context, prompt string, ask AskFunc, logger LogFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		response, err := ask(ctx, prompt)
		if err == nil {
			return response, nil
		}
		lastErr = err

		// Don't retry after the last attempt
		if attempt >= maxAttempts-1 {
			break
		}

		// Check context before sleeping
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		if logger != nil {
			logger("  retry (attempt %d): %v", attempt+2, err)
		}

		// Wait before next attempt
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
