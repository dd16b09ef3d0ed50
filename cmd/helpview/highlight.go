package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/helpview"
	"github.com/fwojciec/helpview/search"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	matchStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("214"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// highlight styles every match of p in text.
func highlight(text string, p *search.Pattern) string {
	if p == nil {
		return text
	}

	var b strings.Builder
	last := 0
	for _, m := range p.FindAllIndex(text) {
		if m[0] == m[1] || m[0] < last {
			continue
		}
		b.WriteString(text[last:m[0]])
		b.WriteString(matchStyle.Render(text[m[0]:m[1]]))
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

// printPage writes a rendered page followed by its numbered links.
func printPage(w io.Writer, page *helpview.Page, p *search.Pattern) {
	fmt.Fprintln(w, titleStyle.Render(page.Title))
	fmt.Fprintln(w, metaStyle.Render(string(page.Location)))
	fmt.Fprintln(w)
	if page.Content != "" {
		fmt.Fprintln(w, highlight(page.Content, p))
	}

	if len(page.Links) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Links:")
	for i, link := range page.Links {
		fmt.Fprintf(w, "  [%d] %s %s\n", i+1, link.Label, metaStyle.Render(link.Target))
	}
}

// printResults writes search results, one per line.
func printResults(w io.Writer, links []helpview.LinkInfo) {
	if len(links) == 0 {
		fmt.Fprintln(w, "No matches.")
		return
	}
	for _, link := range links {
		fmt.Fprintf(w, "%s  %s\n", link.Label, metaStyle.Render(link.Target))
	}
}
