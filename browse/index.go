package browse

import (
	"slices"
	"strings"

	"github.com/fwojciec/helpview"
)

// IndexRow is one line of the flattened index view.
type IndexRow struct {
	Depth int
	Item  *helpview.IndexItem
}

// Label returns the item label indented two spaces per level.
func (r IndexRow) Label() string {
	return strings.Repeat("  ", r.Depth) + r.Item.Label
}

// FlattenIndex lists every index term depth-first, sorting siblings by label.
// The forest itself is not reordered.
func FlattenIndex(forest []*helpview.IndexItem) []IndexRow {
	var rows []IndexRow
	var walk func(items []*helpview.IndexItem, depth int)
	walk = func(items []*helpview.IndexItem, depth int) {
		sorted := slices.Clone(items)
		slices.SortStableFunc(sorted, func(a, b *helpview.IndexItem) int {
			return strings.Compare(a.Label, b.Label)
		})
		for _, item := range sorted {
			rows = append(rows, IndexRow{Depth: depth, Item: item})
			walk(item.Children, depth+1)
		}
	}
	walk(forest, 0)
	return rows
}

// EntryLinks returns the cross-references of item sorted by label.
// Entries with equal labels are all kept.
func EntryLinks(item *helpview.IndexItem) []helpview.LinkInfo {
	links := make([]helpview.LinkInfo, 0, len(item.Entries))
	for _, e := range item.Entries {
		links = append(links, helpview.LinkInfo{Label: e.Label, Target: e.Target})
	}
	slices.SortStableFunc(links, helpview.LinkInfo.Compare)
	return links
}
