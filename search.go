package helpview

import "context"

// SearchFlags controls how a query is matched.
// WholeWord implies regular expression matching.
type SearchFlags struct {
	CaseSensitive bool `json:"caseSensitive"`
	WholeWord     bool `json:"wholeWord"`
	Regex         bool `json:"regex"`
	FullText      bool `json:"fullText"`
}

// SearchProgress reports progress of a running search.
// Completed never decreases within one run; Total is fixed at the start.
type SearchProgress struct {
	Completed int
	Total     int

	// Target is set for full-text units.
	Target string

	// Error is set when a document could not be read. The document is
	// skipped and the search continues.
	Error error

	// Done is set on the final event of a completed run.
	Done bool
}

// SearchProgressFunc is called as search units are processed.
type SearchProgressFunc func(SearchProgress)

// MappedDocument pairs a target with the location of its document.
type MappedDocument struct {
	Target   string   `json:"target"`
	Location Location `json:"location"`
}

// Catalog is a read-only snapshot of the merged library that a search scans.
type Catalog struct {
	Index     []*IndexItem
	TOC       []*TOCItem
	Documents []MappedDocument
}

// Units returns the number of scan units for a search with the given flags.
func (c *Catalog) Units(flags SearchFlags) int {
	n := CountIndexItems(c.Index) + CountTOCItems(c.TOC)
	if flags.FullText {
		n += len(c.Documents)
	}
	return n
}

// Searcher searches a catalog for a query.
type Searcher interface {
	// Search returns matching links sorted by label, without duplicate labels.
	// Returns EPATTERN before scanning if the query does not compile.
	// Returns the context error if the search is canceled.
	Search(ctx context.Context, catalog *Catalog, query string, flags SearchFlags, progress SearchProgressFunc) ([]LinkInfo, error)
}
