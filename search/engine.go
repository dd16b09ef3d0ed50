// Package search provides query compilation and the search engine that scans
// a helpview catalog: index terms, table of contents entries and, optionally,
// the full text of every mapped document.
package search

import (
	"bufio"
	"context"
	"io"
	"regexp"
	"strings"

	"github.com/fwojciec/helpview"
)

// markupRe matches anything between '<' and '>' on one line.
var markupRe = regexp.MustCompile(`<[^>]+>`)

// Ensure Engine implements helpview.Searcher at compile time.
var _ helpview.Searcher = (*Engine)(nil)

// Engine searches a catalog sequentially: index, then contents, then
// documents. Every node and every document is one unit of work; the context
// is checked before each unit, so a canceled search performs at most one
// more unit.
type Engine struct {
	// Content opens documents for full-text search.
	// Required only when FullText is requested.
	Content helpview.ContentResolver
}

// NewEngine creates a new Engine that reads documents through content.
func NewEngine(content helpview.ContentResolver) *Engine {
	return &Engine{Content: content}
}

// scan holds the state of one search run.
type scan struct {
	ctx      context.Context
	pattern  *Pattern
	results  helpview.ResultSet
	progress helpview.SearchProgressFunc
	total    int
	done     int
}

// tick reports one completed unit.
func (s *scan) tick(target string, err error) {
	s.done++
	if s.progress != nil {
		s.progress(helpview.SearchProgress{
			Completed: s.done,
			Total:     s.total,
			Target:    target,
			Error:     err,
		})
	}
}

// Search implements helpview.Searcher.
func (e *Engine) Search(ctx context.Context, catalog *helpview.Catalog, query string, flags helpview.SearchFlags, progress helpview.SearchProgressFunc) ([]helpview.LinkInfo, error) {
	pattern, err := Compile(query, flags)
	if err != nil {
		return nil, err
	}
	if flags.FullText && len(catalog.Documents) > 0 && e.Content == nil {
		return nil, helpview.Errorf(helpview.EINVALID, "full-text search requires a content resolver")
	}

	s := &scan{
		ctx:      ctx,
		pattern:  pattern,
		progress: progress,
		total:    catalog.Units(flags),
	}

	for _, item := range catalog.Index {
		if err := s.searchIndexItem(item); err != nil {
			return nil, err
		}
	}
	for _, item := range catalog.TOC {
		if err := s.searchTOCItem(item); err != nil {
			return nil, err
		}
	}
	if flags.FullText {
		if err := e.searchDocuments(s, catalog.Documents); err != nil {
			return nil, err
		}
	}

	if progress != nil {
		progress(helpview.SearchProgress{Completed: s.total, Total: s.total, Done: true})
	}
	return s.results.Links(), nil
}

// searchIndexItem visits item and its sub-terms in pre-order.
// An item is a hit only if it has a target; its entries are tested regardless.
func (s *scan) searchIndexItem(item *helpview.IndexItem) error {
	if err := s.ctx.Err(); err != nil {
		return err
	}

	if item.Target != "" && s.pattern.Match(item.Label) {
		s.results.Add(helpview.LinkInfo{Label: strings.TrimSpace(item.Label), Target: item.Target})
	}
	for _, entry := range item.Entries {
		if s.pattern.Match(entry.Label) {
			s.results.Add(helpview.LinkInfo{Label: entry.Label, Target: entry.Target})
		}
	}
	s.tick("", nil)

	for _, child := range item.Children {
		if err := s.searchIndexItem(child); err != nil {
			return err
		}
	}
	return nil
}

// searchTOCItem visits item and its children in pre-order.
// Headings without a target are hits too.
func (s *scan) searchTOCItem(item *helpview.TOCItem) error {
	if err := s.ctx.Err(); err != nil {
		return err
	}

	if s.pattern.Match(item.Label) {
		s.results.Add(helpview.LinkInfo{Label: item.Label, Target: item.Target})
	}
	s.tick("", nil)

	for _, child := range item.Children {
		if err := s.searchTOCItem(child); err != nil {
			return err
		}
	}
	return nil
}

// searchDocuments scans each mapped document once. Documents that cannot be
// read are skipped and reported through progress.
func (e *Engine) searchDocuments(s *scan, docs []helpview.MappedDocument) error {
	// Several targets may share a location (e.g. anchors in one page).
	scanned := make(map[helpview.Location]bool, len(docs))

	for _, doc := range docs {
		if err := s.ctx.Err(); err != nil {
			return err
		}

		hit, seen := scanned[doc.Location]
		var err error
		if !seen {
			hit, err = e.scanDocument(s.ctx, doc.Location, s.pattern)
			if err != nil && s.ctx.Err() != nil {
				return s.ctx.Err()
			}
			if err == nil {
				scanned[doc.Location] = hit
			}
		}
		if hit {
			s.results.Add(helpview.LinkInfo{Label: doc.Location.DisplayName(), Target: doc.Target})
		}
		s.tick(doc.Target, err)
	}
	return nil
}

// scanDocument reports whether any line of the document, with markup
// removed, matches pattern. Reading stops at the first match.
func (e *Engine) scanDocument(ctx context.Context, loc helpview.Location, pattern *Pattern) (bool, error) {
	rc, err := e.Content.OpenText(ctx, loc)
	if err != nil {
		return false, contentError(loc, err)
	}
	defer rc.Close()

	r := bufio.NewReader(rc)
	for {
		line, err := r.ReadString('\n')
		if line != "" && pattern.Match(markupRe.ReplaceAllString(strings.TrimRight(line, "\r\n"), "")) {
			return true, nil
		}
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, contentError(loc, err)
		}
	}
}

// contentError wraps a read failure as ECONTENT unless it already carries a code.
func contentError(loc helpview.Location, err error) error {
	if helpview.ErrorCode(err) != helpview.EINTERNAL {
		return err
	}
	return helpview.Errorf(helpview.ECONTENT, "reading %s: %v", loc, err)
}
