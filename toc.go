package helpview

// TOCItem is a node of the table of contents. Order is significant and
// reflects document structure; it is never re-sorted.
type TOCItem struct {
	Label    string     `json:"label"`
	Target   string     `json:"target,omitempty"`
	Children []*TOCItem `json:"children,omitempty"`
}

// CountTOCItems returns the number of items in items, counting every nested item.
func CountTOCItems(items []*TOCItem) int {
	n := 0
	for _, item := range items {
		n += 1 + CountTOCItems(item.Children)
	}
	return n
}

// CloneTOC returns a deep copy of items.
func CloneTOC(items []*TOCItem) []*TOCItem {
	if items == nil {
		return nil
	}
	out := make([]*TOCItem, len(items))
	for i, item := range items {
		out[i] = &TOCItem{
			Label:    item.Label,
			Target:   item.Target,
			Children: CloneTOC(item.Children),
		}
	}
	return out
}
