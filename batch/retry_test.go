package batch_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/lexdoc/batch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskWithRetryDelays(t *testing.T) {
	t.Parallel()

	noDelays := []time.Duration{0, 0, 0}

	t.Run("returns response on first success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		ask := func(ctx context.Context, prompt string) (string, error) {
			calls++
			return "resposta", nil
		}

		got, err := batch.AskWithRetryDelays(context.Background(), "pergunta", ask, nil, noDelays)

		require.NoError(t, err)
		assert.Equal(t, "resposta", got)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		ask := func(ctx context.Context, prompt string) (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("throttled")
			}
			return "resposta", nil
		}

		got, err := batch.AskWithRetryDelays(context.Background(), "pergunta", ask, nil, noDelays)

		require.NoError(t, err)
		assert.Equal(t, "resposta", got)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns last error after exhausting attempts", func(t *testing.T) {
		t.Parallel()

		calls := 0
		ask := func(ctx context.Context, prompt string) (string, error) {
			calls++
			return "", errors.New("throttled")
		}

		_, err := batch.AskWithRetryDelays(context.Background(), "pergunta", ask, nil, noDelays)

		require.Error(t, err)
		assert.Equal(t, 4, calls) // 1 initial + 3 retries
	})

	t.Run("logs each retry attempt", func(t *testing.T) {
		t.Parallel()

		var logged int
		logger := func(format string, args ...any) { logged++ }
		ask := func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("throttled")
		}

		_, err := batch.AskWithRetryDelays(context.Background(), "pergunta", ask, logger, noDelays)

		require.Error(t, err)
		assert.Equal(t, 3, logged)
	})

	t.Run("stops on context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		ask := func(ctx context.Context, prompt string) (string, error) {
			cancel()
			return "", errors.New("throttled")
		}

		_, err := batch.AskWithRetryDelays(ctx, "pergunta", ask, nil, []time.Duration{time.Hour})

		require.ErrorIs(t, err, context.Canceled)
	})
}
