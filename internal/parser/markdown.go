package parser

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	gmparser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/dgallion1/sitefx/internal/dom"
)

// MarkdownParser turns a Markdown page into sectioned HTML: every h1/h2
// opens a <section> carrying the heading's id, the section body is wrapped
// in a .reveal block, and a nav menu links to each section. Headings take
// ids from {#id} attributes or are slugged automatically.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*dom.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			gmparser.WithAutoHeadingID(),
			gmparser.WithAttribute(),
		),
	)
	root := md.Parser().Parse(text.NewReader(src))

	type section struct {
		id      string
		class   string
		title   string
		heading ast.Node
		body    []ast.Node
	}
	var intro []ast.Node
	var sections []*section
	title := ""

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok && h.Level <= 2 {
			s := &section{
				id:      attr(h, "id"),
				class:   attr(h, "class"),
				title:   string(h.Text(src)),
				heading: h,
			}
			// The section carries the heading's id and classes.
			h.RemoveAttributes()
			if title == "" && h.Level == 1 {
				title = s.title
			}
			sections = append(sections, s)
			continue
		}
		if len(sections) == 0 {
			intro = append(intro, n)
			continue
		}
		top := sections[len(sections)-1]
		top.body = append(top.body, n)
	}
	if title == "" {
		title = stem(filename)
	}

	var out bytes.Buffer
	render := func(nodes ...ast.Node) error {
		for _, n := range nodes {
			if err := md.Renderer().Render(&out, src, n); err != nil {
				return fmt.Errorf("render markdown: %w", err)
			}
		}
		return nil
	}

	fmt.Fprintf(&out, "<!DOCTYPE html>\n<html><head><title>%s</title></head><body>\n", html.EscapeString(title))
	if len(sections) > 0 {
		out.WriteString(`<nav class="navbar"><ul class="nav-menu">`)
		for _, s := range sections {
			if s.id == "" {
				continue
			}
			fmt.Fprintf(&out, `<li><a href="#%s">%s</a></li>`, html.EscapeString(s.id), html.EscapeString(s.title))
		}
		out.WriteString("</ul></nav>\n")
	}
	if err := render(intro...); err != nil {
		return nil, err
	}
	for _, s := range sections {
		out.WriteString("<section")
		if s.id != "" {
			fmt.Fprintf(&out, ` id="%s"`, html.EscapeString(s.id))
		}
		if s.class != "" {
			fmt.Fprintf(&out, ` class="%s"`, html.EscapeString(s.class))
		}
		out.WriteString(">")
		if err := render(s.heading); err != nil {
			return nil, err
		}
		if len(s.body) > 0 {
			out.WriteString(`<div class="reveal">`)
			if err := render(s.body...); err != nil {
				return nil, err
			}
			out.WriteString("</div>")
		}
		out.WriteString("</section>\n")
	}
	out.WriteString("</body></html>\n")

	return dom.Parse(&out)
}

func attr(h *ast.Heading, name string) string {
	v, ok := h.AttributeString(name)
	if !ok {
		return ""
	}
	switch id := v.(type) {
	case []byte:
		return string(id)
	case string:
		return id
	}
	return ""
}
