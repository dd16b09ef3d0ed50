// Package etree decodes helpset configuration files using beevik/etree.
//
// A helpset file looks like:
//
//	<configuration>
//	  <title>Manual</title>
//	  <homeID>intro</homeID>
//	  <documentMapping target="intro" url="pages/intro.html"/>
//	  <tocItem text="Getting started" target="intro">
//	    <tocItem text="Install" target="install"/>
//	  </tocItem>
//	  <indexItem text="Install" target="install">
//	    <indexEntry text="Linux" target="install-linux"/>
//	  </indexItem>
//	</configuration>
package etree

import (
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/helpview"
)

// Ensure Decoder implements helpview.HelpsetDecoder.
var _ helpview.HelpsetDecoder = (*Decoder)(nil)

// Decoder reads helpset XML files.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// DecodeHelpset parses a helpset configuration document.
// Returns EINVALID if the document is malformed or is not a configuration.
func (d *Decoder) DecodeHelpset(r io.Reader) (*helpview.Helpset, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, helpview.Errorf(helpview.EINVALID, "parsing helpset XML: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, helpview.Errorf(helpview.EINVALID, "empty helpset XML")
	}
	if root.Tag != "configuration" {
		return nil, helpview.Errorf(helpview.EINVALID, "unexpected root element <%s>", root.Tag)
	}

	hs := &helpview.Helpset{
		Title:  childText(root, "title"),
		HomeID: childText(root, "homeID"),
	}
	for _, el := range root.SelectElements("documentMapping") {
		hs.Mappings = append(hs.Mappings, helpview.DocumentMapping{
			Target: strings.TrimSpace(el.SelectAttrValue("target", "")),
			URL:    strings.TrimSpace(el.SelectAttrValue("url", "")),
		})
	}
	hs.TOC = tocItems(root)
	hs.Index = indexItems(root)

	if err := hs.Validate(); err != nil {
		return nil, err
	}
	return hs, nil
}

func childText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}

func tocItems(parent *etree.Element) []*helpview.TOCItem {
	var items []*helpview.TOCItem
	for _, el := range parent.SelectElements("tocItem") {
		items = append(items, &helpview.TOCItem{
			Label:    el.SelectAttrValue("text", ""),
			Target:   el.SelectAttrValue("target", ""),
			Children: tocItems(el),
		})
	}
	return items
}

func indexItems(parent *etree.Element) []*helpview.IndexItem {
	var items []*helpview.IndexItem
	for _, el := range parent.SelectElements("indexItem") {
		item := &helpview.IndexItem{
			Label:    el.SelectAttrValue("text", ""),
			Target:   el.SelectAttrValue("target", ""),
			Children: indexItems(el),
		}
		for _, entry := range el.SelectElements("indexEntry") {
			item.Entries = append(item.Entries, helpview.IndexEntry{
				Label:  entry.SelectAttrValue("text", ""),
				Target: entry.SelectAttrValue("target", ""),
			})
		}
		items = append(items, item)
	}
	return items
}
