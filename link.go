package helpview

import (
	"slices"
	"strings"
)

// LinkInfo is a label/target pair shown as a row in index and search results.
// Links are ordered and compared by label only.
type LinkInfo struct {
	Label  string `json:"label"`
	Target string `json:"target"`
}

// Compare orders links lexicographically by label.
func (l LinkInfo) Compare(other LinkInfo) int {
	return strings.Compare(l.Label, other.Label)
}

// ResultSet is a sorted set of links keyed by label.
// Adding a link whose label is already present is a no-op, so the first
// target inserted for a label wins.
type ResultSet struct {
	links []LinkInfo
}

// Add inserts link in label order. Returns false if the label was already present.
func (s *ResultSet) Add(link LinkInfo) bool {
	i, found := slices.BinarySearchFunc(s.links, link, LinkInfo.Compare)
	if found {
		return false
	}
	s.links = slices.Insert(s.links, i, link)
	return true
}

// Len returns the number of links in the set.
func (s *ResultSet) Len() int {
	return len(s.links)
}

// Links returns a copy of the links in ascending label order.
func (s *ResultSet) Links() []LinkInfo {
	return slices.Clone(s.links)
}
