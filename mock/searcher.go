package mock

import (
	"context"

	"github.com/fwojciec/helpview"
)

var _ helpview.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of helpview.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, catalog *helpview.Catalog, query string, flags helpview.SearchFlags, progress helpview.SearchProgressFunc) ([]helpview.LinkInfo, error)
}

func (s *Searcher) Search(ctx context.Context, catalog *helpview.Catalog, query string, flags helpview.SearchFlags, progress helpview.SearchProgressFunc) ([]helpview.LinkInfo, error) {
	return s.SearchFn(ctx, catalog, query, flags, progress)
}
