package mock

import (
	"context"

	"github.com/fwojciec/helpview"
)

var _ helpview.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of helpview.HistoryService.
type HistoryService struct {
	LoadHistoryFn func(ctx context.Context) (*helpview.History[helpview.Location], error)
	SaveHistoryFn func(ctx context.Context, h *helpview.History[helpview.Location]) error
}

func (s *HistoryService) LoadHistory(ctx context.Context) (*helpview.History[helpview.Location], error) {
	return s.LoadHistoryFn(ctx)
}

func (s *HistoryService) SaveHistory(ctx context.Context, h *helpview.History[helpview.Location]) error {
	return s.SaveHistoryFn(ctx, h)
}
