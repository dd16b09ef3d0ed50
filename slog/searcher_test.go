package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/helpview"
	"github.com/fwojciec/helpview/mock"
	hvslog "github.com/fwojciec/helpview/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSearcher_Search(t *testing.T) {
	t.Parallel()

	t.Run("logs search with count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Searcher{
			SearchFn: func(ctx context.Context, catalog *helpview.Catalog, query string, flags helpview.SearchFlags, progress helpview.SearchProgressFunc) ([]helpview.LinkInfo, error) {
				return []helpview.LinkInfo{{Label: "Printing", Target: "print"}}, nil
			},
		}

		s := hvslog.NewLoggingSearcher(inner, logger)
		links, err := s.Search(context.Background(), &helpview.Catalog{}, "print", helpview.SearchFlags{WholeWord: true}, nil)

		require.NoError(t, err)
		assert.Len(t, links, 1)
		output := buf.String()
		assert.Contains(t, output, "msg=search")
		assert.Contains(t, output, "query=print")
		assert.Contains(t, output, "whole_word=true")
		assert.Contains(t, output, "count=1")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs skipped documents and forwards progress", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Searcher{
			SearchFn: func(ctx context.Context, catalog *helpview.Catalog, query string, flags helpview.SearchFlags, progress helpview.SearchProgressFunc) ([]helpview.LinkInfo, error) {
				progress(helpview.SearchProgress{Completed: 1, Total: 2, Target: "setup", Error: errors.New("permission denied")})
				progress(helpview.SearchProgress{Completed: 2, Total: 2, Target: "intro"})
				return nil, nil
			},
		}

		var events []helpview.SearchProgress
		s := hvslog.NewLoggingSearcher(inner, logger)
		_, err := s.Search(context.Background(), &helpview.Catalog{}, "x", helpview.SearchFlags{FullText: true}, func(p helpview.SearchProgress) {
			events = append(events, p)
		})

		require.NoError(t, err)
		assert.Len(t, events, 2)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "target=setup")
		assert.Contains(t, output, "err=\"permission denied\"")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Searcher{
			SearchFn: func(ctx context.Context, catalog *helpview.Catalog, query string, flags helpview.SearchFlags, progress helpview.SearchProgressFunc) ([]helpview.LinkInfo, error) {
				return nil, helpview.Errorf(helpview.EPATTERN, "bad pattern")
			},
		}

		s := hvslog.NewLoggingSearcher(inner, logger)
		_, err := s.Search(context.Background(), &helpview.Catalog{}, "(", helpview.SearchFlags{Regex: true}, nil)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "msg=search")
		assert.Contains(t, output, "bad pattern")
	})
}
