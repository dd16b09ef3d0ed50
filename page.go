package helpview

import "context"

// Page is a document prepared for display.
type Page struct {
	Location Location
	Title    string
	Content  string // Markdown
	Links    []LinkInfo
}

// Renderer prepares HTML documents for display.
type Renderer interface {
	// Render parses html loaded from loc. Link targets are resolved
	// against loc.
	Render(ctx context.Context, loc Location, html string) (*Page, error)
}
