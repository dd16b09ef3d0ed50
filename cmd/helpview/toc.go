package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/helpview"
	"github.com/fwojciec/helpview/browse"
)

// Run executes the toc command.
func (c *TOCCmd) Run(deps *Dependencies) error {
	toc := deps.Library.TOC()
	if len(toc) == 0 {
		fmt.Fprintln(deps.Stdout, "No manuals registered. Use 'helpview add' to register one.")
		return nil
	}
	printTOC(deps.Stdout, toc, 0)
	return nil
}

func printTOC(w io.Writer, items []*helpview.TOCItem, depth int) {
	for _, item := range items {
		line := strings.Repeat("  ", depth) + item.Label
		if item.Target != "" {
			line += "  " + metaStyle.Render(item.Target)
		}
		fmt.Fprintln(w, line)
		printTOC(w, item.Children, depth+1)
	}
}

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	rows := browse.FlattenIndex(deps.Library.Index())
	if len(rows) == 0 {
		fmt.Fprintln(deps.Stdout, "The index is empty.")
		return nil
	}
	printIndex(deps.Stdout, rows, c.Entries)
	return nil
}

func printIndex(w io.Writer, rows []browse.IndexRow, entries bool) {
	for _, row := range rows {
		line := row.Label()
		if row.Item.Target != "" {
			line += "  " + metaStyle.Render(row.Item.Target)
		}
		fmt.Fprintln(w, line)
		if !entries {
			continue
		}
		indent := strings.Repeat("  ", row.Depth+1)
		for _, link := range browse.EntryLinks(row.Item) {
			fmt.Fprintf(w, "%s-> %s  %s\n", indent, link.Label, metaStyle.Render(link.Target))
		}
	}
}
