package helpview

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML document into Markdown for display.
	Convert(html string) (string, error)
}
