// Package goquery prepares HTML help pages for display using
// PuerkitoBio/goquery.
package goquery

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/helpview"
)

// Ensure Renderer implements helpview.Renderer at compile time.
var _ helpview.Renderer = (*Renderer)(nil)

// Renderer extracts the title and hyperlinks of a page and converts its
// body for display.
type Renderer struct {
	Converter helpview.Converter
}

// NewRenderer creates a Renderer that converts page bodies with conv.
// If conv is nil, the body's plain text is used.
func NewRenderer(conv helpview.Converter) *Renderer {
	return &Renderer{Converter: conv}
}

// Render parses html loaded from loc.
// Returns ECONTENT if the page cannot be parsed or converted.
func (r *Renderer) Render(ctx context.Context, loc helpview.Location, html string) (*helpview.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(string(loc))
	if err != nil {
		return nil, helpview.Errorf(helpview.EINVALID, "invalid page location: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, helpview.Errorf(helpview.ECONTENT, "failed to parse HTML: %v", err)
	}

	page := &helpview.Page{
		Location: loc,
		Title:    pageTitle(doc, loc),
		Links:    extractLinks(doc, base),
	}

	body := doc.Find("body")
	if r.Converter == nil {
		page.Content = strings.TrimSpace(body.Text())
		return page, nil
	}

	bodyHTML, err := body.Html()
	if err != nil {
		return nil, helpview.Errorf(helpview.ECONTENT, "failed to read page body: %v", err)
	}
	page.Content, err = r.Converter.Convert(bodyHTML)
	if err != nil {
		return nil, err
	}
	return page, nil
}

// pageTitle returns the document title, falling back to the first heading
// and then to the file name of loc.
func pageTitle(doc *goquery.Document, loc helpview.Location) string {
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}
	return loc.DisplayName()
}

// extractLinks returns the page's hyperlinks in document order, resolved
// against base. Duplicate destinations keep their first label.
func extractLinks(doc *goquery.Document, base *url.URL) []helpview.LinkInfo {
	seen := make(map[string]bool)
	var links []helpview.LinkInfo

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" || isNonDocumentLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" || seen[resolved] {
			return
		}
		seen[resolved] = true

		label := strings.Join(strings.Fields(sel.Text()), " ")
		if label == "" {
			label = resolved
		}
		links = append(links, helpview.LinkInfo{Label: label, Target: resolved})
	})

	return links
}

// resolveURL resolves href against base. Returns empty string if href cannot
// be parsed or only points at an anchor on the same page.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)

	samePage := *resolved
	samePage.Fragment = ""
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if samePage.String() == baseNoFragment.String() {
		return ""
	}
	return resolved.String()
}

// isNonDocumentLink checks if a href cannot be displayed as a help page.
func isNonDocumentLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
