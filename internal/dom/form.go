package dom

import (
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Query returns descendants of e matching selector, in document order.
func (e *Element) Query(selector string) []*Element {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil
	}
	var out []*Element
	for _, n := range sel.MatchAll(e.node) {
		if n == e.node {
			continue
		}
		if el, ok := e.doc.byNode[n]; ok {
			out = append(out, el)
		}
	}
	return out
}

// Value is the current value of a form control: the value attribute for
// inputs, the text for textareas.
func (e *Element) Value() string {
	if e.Tag() == "textarea" {
		return e.rawText()
	}
	v, _ := e.Attr("value")
	return v
}

// SetValue sets a form control's value.
func (e *Element) SetValue(v string) {
	if e.Tag() == "textarea" {
		e.SetText(v)
		return
	}
	e.SetAttr("value", v)
}

// SetText replaces all children of e with a single text node.
func (e *Element) SetText(s string) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	if s != "" {
		e.node.AppendChild(&html.Node{Type: html.TextNode, Data: s})
	}
}

func (e *Element) rawText() string {
	var s string
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			s += c.Data
		}
	}
	return s
}

// Controls returns the form's input, textarea and select elements.
func (e *Element) Controls() []*Element {
	return e.Query("input, textarea, select")
}
