package slog

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/helpview"
)

// Ensure LoggingContentResolver implements helpview.ContentResolver.
var _ helpview.ContentResolver = (*LoggingContentResolver)(nil)

// LoggingContentResolver wraps a ContentResolver with debug logging.
type LoggingContentResolver struct {
	next   helpview.ContentResolver
	logger *slog.Logger
}

// NewLoggingContentResolver creates a new LoggingContentResolver.
func NewLoggingContentResolver(next helpview.ContentResolver, logger *slog.Logger) *LoggingContentResolver {
	return &LoggingContentResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver. Unmapped targets are logged.
func (r *LoggingContentResolver) Resolve(target string) (helpview.Location, bool) {
	loc, ok := r.next.Resolve(target)
	if !ok {
		r.logger.Debug("target not mapped", "target", target)
	}
	return loc, ok
}

// OpenText delegates to the wrapped resolver and logs the operation.
func (r *LoggingContentResolver) OpenText(ctx context.Context, loc helpview.Location) (rc io.ReadCloser, err error) {
	defer func(begin time.Time) {
		r.logger.Debug("open document",
			"location", string(loc),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.OpenText(ctx, loc)
}
