package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/schooldir"
)

// Ensure LoggingTextExtractor implements schooldir.TextExtractor.
var _ schooldir.TextExtractor = (*LoggingTextExtractor)(nil)

// LoggingTextExtractor wraps a TextExtractor with logging. Unreadable pages
// are logged individually at warn level.
type LoggingTextExtractor struct {
	next   schooldir.TextExtractor
	logger *slog.Logger
}

// NewLoggingTextExtractor creates a new LoggingTextExtractor.
func NewLoggingTextExtractor(next schooldir.TextExtractor, logger *slog.Logger) *LoggingTextExtractor {
	return &LoggingTextExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingTextExtractor) Extract(ctx context.Context, path string) (pages []*schooldir.Page, err error) {
	defer func(begin time.Time) {
		failed := 0
		for _, p := range pages {
			if p.Err != nil {
				failed++
				e.logger.Warn("page unreadable", "path", path, "page", p.Number, "err", p.Err)
			}
		}
		e.logger.Info("extract text",
			"path", path,
			"pages", len(pages),
			"failed", failed,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, path)
}
