// Package html extracts plain text from HTML for use as copy-mode base
// text, mirroring the behavior of a browser's `element.innerText`: inline
// text runs are concatenated, while block-level elements are separated by a
// space so words straddling adjacent elements don't run together.
package html

import (
	"io"

	"github.com/npillmayer/ntroff/cord"
	"golang.org/x/net/html"
)

// blockLevel lists the tag names after which a word boundary must be
// inserted, since their closing tag corresponds to a visual line break.
var blockLevel = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// TextFromHTML parses an HTML fragment and returns its rendered text
// content as a cord, ready to seed an input-stack base text.
func TextFromHTML(input io.Reader) (cord.Cord, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return cord.Cord{}, err
	}
	b := cord.NewBuilder()
	for _, n := range nodes {
		collectText(n, b)
	}
	return b.Cord(), nil
}

func collectText(n *html.Node, b *cord.Builder) {
	switch n.Type {
	case html.TextNode:
		b.Append(cord.StringLeaf(n.Data))
	case html.ElementNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collectText(c, b)
		}
		if blockLevel[n.Data] {
			b.Append(cord.StringLeaf(" "))
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
