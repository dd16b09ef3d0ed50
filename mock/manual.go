package mock

import (
	"context"

	"github.com/fwojciec/helpview"
)

var _ helpview.ManualService = (*ManualService)(nil)

// ManualService is a mock implementation of helpview.ManualService.
type ManualService struct {
	CreateManualFn   func(ctx context.Context, manual *helpview.Manual) error
	FindManualByIDFn func(ctx context.Context, id string) (*helpview.Manual, error)
	FindManualsFn    func(ctx context.Context, filter helpview.ManualFilter) ([]*helpview.Manual, error)
	DeleteManualFn   func(ctx context.Context, id string) error
}

func (s *ManualService) CreateManual(ctx context.Context, manual *helpview.Manual) error {
	return s.CreateManualFn(ctx, manual)
}

func (s *ManualService) FindManualByID(ctx context.Context, id string) (*helpview.Manual, error) {
	return s.FindManualByIDFn(ctx, id)
}

func (s *ManualService) FindManuals(ctx context.Context, filter helpview.ManualFilter) ([]*helpview.Manual, error) {
	return s.FindManualsFn(ctx, filter)
}

func (s *ManualService) DeleteManual(ctx context.Context, id string) error {
	return s.DeleteManualFn(ctx, id)
}
