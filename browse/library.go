// Package browse provides the live documentation library built from loaded
// helpsets and the browser that navigates it.
package browse

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"sync"

	"github.com/fwojciec/helpview"
	"golang.org/x/sync/errgroup"
)

// defaultLoadConcurrency bounds how many helpsets are decoded at once.
const defaultLoadConcurrency = 4

// Ensure Library implements helpview.ContentResolver at compile time.
var _ helpview.ContentResolver = (*Library)(nil)

// Library merges helpsets into one table of contents, one index and one
// target mapping. Merges are serialized with searches through Catalog,
// which returns a snapshot.
type Library struct {
	mu sync.RWMutex

	openers map[string]helpview.ContentOpener

	homeID  string
	mapping map[string]helpview.Location
	targets []string // mapping keys in insertion order
	toc     []*helpview.TOCItem
	index   []*helpview.IndexItem
}

// NewLibrary creates an empty Library.
func NewLibrary() *Library {
	return &Library{
		openers: make(map[string]helpview.ContentOpener),
		mapping: make(map[string]helpview.Location),
	}
}

// RegisterOpener sets the opener used for locations with the given URL scheme.
func (l *Library) RegisterOpener(scheme string, opener helpview.ContentOpener) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.openers[scheme] = opener
}

// AddHelpset adds a helpset whose relative document URLs resolve against base.
//
// Explicit mappings are added first. Every contents target and the home ID
// that is still unmapped is then mapped to base/<target>.html if that
// document exists. The helpset's contents are added under a root item
// labeled with its title, and its index items are merged into the index.
// The first helpset with a home ID provides the library home.
func (l *Library) AddHelpset(ctx context.Context, hs *helpview.Helpset, base *url.URL) error {
	if err := hs.Validate(); err != nil {
		return err
	}

	explicit := make([]helpview.DocumentMapping, 0, len(hs.Mappings))
	for _, m := range hs.Mappings {
		ref, err := url.Parse(m.URL)
		if err != nil {
			return helpview.Errorf(helpview.EINVALID, "malformed document URL %q: %v", m.URL, err)
		}
		explicit = append(explicit, helpview.DocumentMapping{
			Target: m.Target,
			URL:    base.ResolveReference(ref).String(),
		})
	}

	// Probe without holding the lock: Exists may issue network requests.
	var found []defaultMapping
	for _, c := range l.defaultCandidates(hs, explicit, base) {
		if c.opener.Exists(ctx, c.loc) {
			found = append(found, c)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, m := range explicit {
		l.mapLocked(m.Target, helpview.Location(m.URL))
	}
	for _, c := range found {
		if _, ok := l.mapping[c.target]; !ok {
			l.mapLocked(c.target, c.loc)
		}
	}

	l.toc = append(l.toc, &helpview.TOCItem{
		Label:    hs.Title,
		Target:   hs.HomeID,
		Children: hs.TOC,
	})

	for _, item := range hs.Index {
		l.index = helpview.MergeIndex(l.index, item)
	}

	if l.homeID == "" {
		l.homeID = hs.HomeID
	}
	return nil
}

// mapLocked maps target to loc, replacing any earlier location.
func (l *Library) mapLocked(target string, loc helpview.Location) {
	if _, ok := l.mapping[target]; !ok {
		l.targets = append(l.targets, target)
	}
	l.mapping[target] = loc
}

// defaultMapping is a base/<target>.html location that is mapped only if
// the document exists.
type defaultMapping struct {
	target string
	loc    helpview.Location
	opener helpview.ContentOpener
}

// defaultCandidates lists the contents targets and the home ID of hs that
// neither the library nor the explicit mappings cover, in contents order.
func (l *Library) defaultCandidates(hs *helpview.Helpset, explicit []helpview.DocumentMapping, base *url.URL) []defaultMapping {
	l.mu.RLock()
	defer l.mu.RUnlock()

	seen := make(map[string]bool, len(explicit))
	for _, m := range explicit {
		seen[m.Target] = true
	}

	var candidates []defaultMapping
	add := func(target string) {
		if target == "" || seen[target] {
			return
		}
		seen[target] = true
		if _, ok := l.mapping[target]; ok {
			return
		}
		ref, err := url.Parse(target + ".html")
		if err != nil {
			return
		}
		loc := helpview.Location(base.ResolveReference(ref).String())
		opener, err := l.openerLocked(loc)
		if err != nil {
			return
		}
		candidates = append(candidates, defaultMapping{target: target, loc: loc, opener: opener})
	}

	var walk func(items []*helpview.TOCItem)
	walk = func(items []*helpview.TOCItem) {
		for _, item := range items {
			add(item.Target)
			walk(item.Children)
		}
	}
	walk(hs.TOC)
	add(hs.HomeID)
	return candidates
}

// Source is a helpset to be loaded from a reader.
type Source struct {
	Name string
	Base *url.URL
	Open func() (io.ReadCloser, error)
}

// Loader decodes helpset sources concurrently and adds them to a library
// in source order.
type Loader struct {
	Decoder     helpview.HelpsetDecoder
	Concurrency int
}

// Load decodes every source and adds the helpsets to lib in the order given.
// Decoding runs concurrently; merging is sequential so the merged index
// does not depend on decode timing.
func (ld *Loader) Load(ctx context.Context, lib *Library, sources []Source) error {
	concurrency := ld.Concurrency
	if concurrency <= 0 {
		concurrency = defaultLoadConcurrency
	}

	helpsets := make([]*helpview.Helpset, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, src := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rc, err := src.Open()
			if err != nil {
				return fmt.Errorf("opening helpset %s: %w", src.Name, err)
			}
			defer rc.Close()

			hs, err := ld.Decoder.DecodeHelpset(rc)
			if err != nil {
				return fmt.Errorf("decoding helpset %s: %w", src.Name, err)
			}
			helpsets[i] = hs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, hs := range helpsets {
		if err := lib.AddHelpset(ctx, hs, sources[i].Base); err != nil {
			return fmt.Errorf("adding helpset %s: %w", sources[i].Name, err)
		}
	}
	return nil
}

// Resolve implements helpview.ContentResolver.
func (l *Library) Resolve(target string) (helpview.Location, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	loc, ok := l.mapping[target]
	return loc, ok
}

// TargetFor returns the first target mapped to loc, ignoring any fragment.
func (l *Library) TargetFor(loc helpview.Location) (string, bool) {
	want := stripFragment(loc)

	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, target := range l.targets {
		if stripFragment(l.mapping[target]) == want {
			return target, true
		}
	}
	return "", false
}

// OpenText implements helpview.ContentResolver by dispatching on the
// location's URL scheme.
func (l *Library) OpenText(ctx context.Context, loc helpview.Location) (io.ReadCloser, error) {
	l.mu.RLock()
	opener, err := l.openerLocked(loc)
	l.mu.RUnlock()
	if err != nil {
		return nil, err
	}
	return opener.Open(ctx, loc)
}

func (l *Library) openerLocked(loc helpview.Location) (helpview.ContentOpener, error) {
	u, err := url.Parse(string(loc))
	if err != nil {
		return nil, helpview.Errorf(helpview.EINVALID, "malformed location %q", loc)
	}
	opener, ok := l.openers[u.Scheme]
	if !ok {
		return nil, helpview.Errorf(helpview.EINVALID, "unsupported location scheme %q", u.Scheme)
	}
	return opener, nil
}

// HomeID returns the home target of the first loaded helpset.
func (l *Library) HomeID() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.homeID
}

// TOC returns a copy of the merged table of contents.
func (l *Library) TOC() []*helpview.TOCItem {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return helpview.CloneTOC(l.toc)
}

// Index returns a copy of the merged index.
func (l *Library) Index() []*helpview.IndexItem {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return helpview.CloneIndex(l.index)
}

// Catalog returns a snapshot of the library for searching. Helpsets added
// afterwards do not affect the snapshot.
func (l *Library) Catalog() *helpview.Catalog {
	l.mu.RLock()
	defer l.mu.RUnlock()

	docs := make([]helpview.MappedDocument, 0, len(l.targets))
	for _, target := range l.targets {
		docs = append(docs, helpview.MappedDocument{Target: target, Location: l.mapping[target]})
	}
	return &helpview.Catalog{
		Index:     helpview.CloneIndex(l.index),
		TOC:       helpview.CloneTOC(l.toc),
		Documents: docs,
	}
}

func stripFragment(loc helpview.Location) helpview.Location {
	u, err := url.Parse(string(loc))
	if err != nil {
		return loc
	}
	u.Fragment = ""
	return helpview.Location(u.String())
}
