package helpview

// IndexItem is a term of the back-of-book style index.
// Children are sub-terms; Entries are cross-references listed under the term.
type IndexItem struct {
	Label    string       `json:"label"`
	Target   string       `json:"target,omitempty"`
	Children []*IndexItem `json:"children,omitempty"`
	Entries  []IndexEntry `json:"entries,omitempty"`
}

// IndexEntry is a cross-reference listed under an index term.
type IndexEntry struct {
	Label  string `json:"label"`
	Target string `json:"target"`
}

// MergeIndex merges item into forest and returns the updated forest.
//
// If forest already holds an item with the same label (exact match, first in
// list order), item's children are merged recursively into that item's
// children and item's entries are appended to its entries. Otherwise item is
// appended with its whole subtree. The forest takes ownership of item.
//
// Sibling lookup is a linear scan, so a merge costs O(n*m) for n siblings and
// m incoming items. Index breadth is bounded by authored documentation.
func MergeIndex(forest []*IndexItem, item *IndexItem) []*IndexItem {
	for _, existing := range forest {
		if existing.Label != item.Label {
			continue
		}
		for _, child := range item.Children {
			existing.Children = MergeIndex(existing.Children, child)
		}
		existing.Entries = append(existing.Entries, item.Entries...)
		return forest
	}
	return append(forest, item)
}

// CountIndexItems returns the number of items in forest, counting every
// nested item. Entries are not counted.
func CountIndexItems(forest []*IndexItem) int {
	n := 0
	for _, item := range forest {
		n += 1 + CountIndexItems(item.Children)
	}
	return n
}

// CloneIndex returns a deep copy of forest.
func CloneIndex(forest []*IndexItem) []*IndexItem {
	if forest == nil {
		return nil
	}
	out := make([]*IndexItem, len(forest))
	for i, item := range forest {
		out[i] = &IndexItem{
			Label:    item.Label,
			Target:   item.Target,
			Children: CloneIndex(item.Children),
			Entries:  append([]IndexEntry(nil), item.Entries...),
		}
	}
	return out
}
