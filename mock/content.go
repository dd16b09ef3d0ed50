package mock

import (
	"context"
	"io"

	"github.com/fwojciec/helpview"
)

var _ helpview.ContentResolver = (*ContentResolver)(nil)

// ContentResolver is a mock implementation of helpview.ContentResolver.
type ContentResolver struct {
	ResolveFn  func(target string) (helpview.Location, bool)
	OpenTextFn func(ctx context.Context, loc helpview.Location) (io.ReadCloser, error)
}

func (r *ContentResolver) Resolve(target string) (helpview.Location, bool) {
	return r.ResolveFn(target)
}

func (r *ContentResolver) OpenText(ctx context.Context, loc helpview.Location) (io.ReadCloser, error) {
	return r.OpenTextFn(ctx, loc)
}

var _ helpview.ContentOpener = (*ContentOpener)(nil)

// ContentOpener is a mock implementation of helpview.ContentOpener.
type ContentOpener struct {
	OpenFn   func(ctx context.Context, loc helpview.Location) (io.ReadCloser, error)
	ExistsFn func(ctx context.Context, loc helpview.Location) bool
}

func (o *ContentOpener) Open(ctx context.Context, loc helpview.Location) (io.ReadCloser, error) {
	return o.OpenFn(ctx, loc)
}

func (o *ContentOpener) Exists(ctx context.Context, loc helpview.Location) bool {
	return o.ExistsFn(ctx, loc)
}
