package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Box is an element's vertical extent in page coordinates.
type Box struct {
	Top    float64
	Height float64
}

// Element wraps an html.Node with a layout box.
type Element struct {
	node *html.Node
	doc  *Document
	box  Box
}

func (e *Element) Tag() string { return e.node.Data }

func (e *Element) ID() string {
	v, _ := e.Attr("id")
	return v
}

// Href returns the raw href attribute.
func (e *Element) Href() string {
	v, _ := e.Attr("href")
	return v
}

// Label is a short human-readable name: tag#id, or tag.class for anonymous
// elements.
func (e *Element) Label() string {
	if id := e.ID(); id != "" {
		return e.Tag() + "#" + id
	}
	if cls := e.Classes(); len(cls) > 0 {
		return fmt.Sprintf("%s.%s@%d", e.Tag(), cls[0], e.index())
	}
	return fmt.Sprintf("%s@%d", e.Tag(), e.index())
}

func (e *Element) index() int {
	for i, el := range e.doc.order {
		if el == e {
			return i
		}
	}
	return -1
}

func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func (e *Element) SetAttr(key, val string) {
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			e.node.Attr[i].Val = val
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: val})
	if key == "id" {
		if _, dup := e.doc.byID[val]; !dup {
			e.doc.byID[val] = e
		}
	}
}

func (e *Element) RemoveAttr(key string) {
	attrs := e.node.Attr[:0]
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		attrs = append(attrs, a)
	}
	e.node.Attr = attrs
}

func (e *Element) Classes() []string {
	v, _ := e.Attr("class")
	return strings.Fields(v)
}

// Text returns the element's whitespace-collapsed text content.
func (e *Element) Text() string {
	return textContent(e.node)
}

// Children returns the direct element children.
func (e *Element) Children() []*Element {
	var out []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if el, ok := e.doc.byNode[c]; ok {
			out = append(out, el)
		}
	}
	return out
}

func (e *Element) Box() Box { return e.box }

func (e *Element) SetBox(b Box) { e.box = b }

// Offset is the element's top edge, the analogue of offsetTop.
func (e *Element) Offset() float64 { return e.box.Top }

func (e *Element) Height() float64 { return e.box.Height }
