// Package slog provides logging decorators for helpview services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/helpview"
)

// Ensure LoggingSearcher implements helpview.Searcher.
var _ helpview.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with logging. Documents that could not
// be read during a search are logged as warnings.
type LoggingSearcher struct {
	next   helpview.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next helpview.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the run.
func (s *LoggingSearcher) Search(ctx context.Context, catalog *helpview.Catalog, query string, flags helpview.SearchFlags, progress helpview.SearchProgressFunc) (links []helpview.LinkInfo, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"query", query,
			"case_sensitive", flags.CaseSensitive,
			"whole_word", flags.WholeWord,
			"regex", flags.Regex,
			"full_text", flags.FullText,
			"count", len(links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	wrapped := func(p helpview.SearchProgress) {
		if p.Error != nil {
			s.logger.Warn("document skipped", "target", p.Target, "err", p.Error)
		}
		if progress != nil {
			progress(p)
		}
	}
	return s.next.Search(ctx, catalog, query, flags, wrapped)
}
