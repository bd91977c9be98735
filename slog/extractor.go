// Package slog provides logging decorators for lexdoc services.
package slog

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/lexdoc"
)

// Ensure LoggingExtractor implements lexdoc.PageExtractor.
var _ lexdoc.PageExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a PageExtractor with logging of extraction
// outcomes and timing.
type LoggingExtractor struct {
	next   lexdoc.PageExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next lexdoc.PageExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractPages delegates to the wrapped extractor and logs the result.
func (e *LoggingExtractor) ExtractPages(ctx context.Context, src io.ReaderAt, size int64) ([]lexdoc.PageText, error) {
	begin := time.Now()
	pages, err := e.next.ExtractPages(ctx, src, size)
	if err != nil {
		e.logger.Error("page extraction failed",
			"size", size,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}

	empty := 0
	for _, page := range pages {
		if page.Text == "" {
			empty++
		}
	}
	e.logger.Info("page extraction",
		"pages", len(pages),
		"empty", empty,
		"size", size,
		"duration", time.Since(begin),
	)
	return pages, nil
}
