package mock

import (
	"context"
	"io"

	"github.com/fwojciec/helpview"
)

var _ helpview.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of helpview.Renderer.
type Renderer struct {
	RenderFn func(ctx context.Context, loc helpview.Location, html string) (*helpview.Page, error)
}

func (r *Renderer) Render(ctx context.Context, loc helpview.Location, html string) (*helpview.Page, error) {
	return r.RenderFn(ctx, loc, html)
}

var _ helpview.HelpsetDecoder = (*HelpsetDecoder)(nil)

// HelpsetDecoder is a mock implementation of helpview.HelpsetDecoder.
type HelpsetDecoder struct {
	DecodeHelpsetFn func(r io.Reader) (*helpview.Helpset, error)
}

func (d *HelpsetDecoder) DecodeHelpset(r io.Reader) (*helpview.Helpset, error) {
	return d.DecodeHelpsetFn(r)
}
