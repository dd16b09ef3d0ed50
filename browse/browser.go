package browse

import (
	"context"
	"io"

	"github.com/fwojciec/helpview"
)

// maxPageSize bounds how much of a document is loaded for display.
const maxPageSize = 8 * 1024 * 1024

// Browser displays library pages and records them in a navigation history.
// It is driven by a presentation layer and is not safe for concurrent use.
type Browser struct {
	Library  *Library
	History  *helpview.History[helpview.Location]
	Renderer helpview.Renderer
}

// NewBrowser creates a Browser with an empty history.
func NewBrowser(lib *Library, renderer helpview.Renderer) *Browser {
	return &Browser{
		Library:  lib,
		History:  helpview.NewHistory[helpview.Location](),
		Renderer: renderer,
	}
}

// DisplayPageForTarget resolves target, records it in the history and
// returns the rendered page.
// Returns ENOTFOUND if the target is not mapped.
func (b *Browser) DisplayPageForTarget(ctx context.Context, target string) (*helpview.Page, error) {
	loc, ok := b.Library.Resolve(target)
	if !ok {
		return nil, helpview.Errorf(helpview.ENOTFOUND, "target %q is not mapped to a document", target)
	}
	return b.Follow(ctx, loc)
}

// Follow records loc in the history and returns the rendered page. It is
// used for hyperlinks activated inside a displayed page.
func (b *Browser) Follow(ctx context.Context, loc helpview.Location) (*helpview.Page, error) {
	b.History.NavigateTo(loc)
	return b.render(ctx, loc)
}

// Home displays the library home page.
// Returns ENOTFOUND if no helpset defines a home page.
func (b *Browser) Home(ctx context.Context) (*helpview.Page, error) {
	home := b.Library.HomeID()
	if home == "" {
		return nil, helpview.Errorf(helpview.ENOTFOUND, "no home page defined")
	}
	return b.DisplayPageForTarget(ctx, home)
}

// Back displays the previous page without recording a new history entry.
// Returns nil when there is no previous page.
func (b *Browser) Back(ctx context.Context) (*helpview.Page, error) {
	loc, ok := b.History.Back()
	if !ok {
		return nil, nil
	}
	return b.render(ctx, loc)
}

// Forward displays the next page without recording a new history entry.
// Returns nil when there is no next page.
func (b *Browser) Forward(ctx context.Context) (*helpview.Page, error) {
	loc, ok := b.History.Forward()
	if !ok {
		return nil, nil
	}
	return b.render(ctx, loc)
}

// Current displays the page at the current history position.
// Returns nil when the history is empty.
func (b *Browser) Current(ctx context.Context) (*helpview.Page, error) {
	loc, ok := b.History.Current()
	if !ok {
		return nil, nil
	}
	return b.render(ctx, loc)
}

// CurrentTarget returns the target of the current page, if it is mapped.
func (b *Browser) CurrentTarget() (string, bool) {
	loc, ok := b.History.Current()
	if !ok {
		return "", false
	}
	return b.Library.TargetFor(loc)
}

// render loads and renders the document at loc. Read and render failures
// are returned as an error page for loc, which is already in the history.
func (b *Browser) render(ctx context.Context, loc helpview.Location) (*helpview.Page, error) {
	rc, err := b.Library.OpenText(ctx, loc)
	if err != nil {
		return errorPage(loc, err), nil
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, maxPageSize))
	if err != nil {
		return errorPage(loc, err), nil
	}

	if b.Renderer == nil {
		return &helpview.Page{Location: loc, Content: string(data)}, nil
	}
	page, err := b.Renderer.Render(ctx, loc, string(data))
	if err != nil {
		return errorPage(loc, err), nil
	}
	return page, nil
}

// errorPage describes a page that could not be loaded.
func errorPage(loc helpview.Location, err error) *helpview.Page {
	return &helpview.Page{
		Location: loc,
		Title:    "Error loading page",
		Content:  "# Error loading page\n\n" + helpview.ErrorMessage(err) + "\n",
	}
}
