// Package dom is a small in-memory element tree built on x/net/html. It
// stands in for the browser DOM: elements carry attributes, inline style and
// a layout box, and can be queried with CSS selectors.
package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Document is a parsed page.
type Document struct {
	Title string

	root   *html.Node
	byNode map[*html.Node]*Element
	byID   map[string]*Element
	order  []*Element
}

// Parse reads HTML markup into a Document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return newDocument(root), nil
}

func newDocument(root *html.Node) *Document {
	d := &Document{
		root:   root,
		byNode: make(map[*html.Node]*Element),
		byID:   make(map[string]*Element),
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			el := &Element{node: n, doc: d}
			d.byNode[n] = el
			d.order = append(d.order, el)
			if id := el.ID(); id != "" {
				// First element wins on duplicate ids, as getElementById does.
				if _, dup := d.byID[id]; !dup {
					d.byID[id] = el
				}
			}
			if n.Data == "title" && d.Title == "" {
				d.Title = textContent(n)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return d
}

// Elements returns every element in document order.
func (d *Document) Elements() []*Element {
	return d.order
}

// Body returns the <body> element, or nil.
func (d *Document) Body() *Element {
	for _, el := range d.order {
		if el.node.Data == "body" {
			return el
		}
	}
	return nil
}

// Query returns elements matching a selector group in document order. An
// invalid selector matches nothing.
func (d *Document) Query(selector string) []*Element {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil
	}
	nodes := sel.MatchAll(d.root)
	out := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		if el, ok := d.byNode[n]; ok {
			out = append(out, el)
		}
	}
	return out
}

// QueryOne returns the first match for selector, or nil.
func (d *Document) QueryOne(selector string) *Element {
	if els := d.Query(selector); len(els) > 0 {
		return els[0]
	}
	return nil
}

// ByID looks up an element by its id attribute.
func (d *Document) ByID(id string) (*Element, bool) {
	el, ok := d.byID[id]
	return el, ok
}

// Resolve maps an in-page href such as "#about" to its target element.
// Anything other than a non-empty fragment resolves to nothing.
func (d *Document) Resolve(href string) (*Element, bool) {
	id, ok := strings.CutPrefix(href, "#")
	if !ok || id == "" {
		return nil, false
	}
	return d.ByID(id)
}

// ScrollHeight is the bottom edge of the lowest laid-out element.
func (d *Document) ScrollHeight() float64 {
	var h float64
	for _, el := range d.order {
		if b := el.box.Top + el.box.Height; b > h {
			h = b
		}
	}
	return h
}

// Render writes the document, including any style edits, as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}
