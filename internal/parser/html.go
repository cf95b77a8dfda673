package parser

import (
	"io"

	"github.com/dgallion1/sitefx/internal/dom"
)

// HTMLParser handles HTML pages.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*dom.Document, error) {
	doc, err := dom.Parse(r)
	if err != nil {
		return nil, err
	}
	if doc.Title == "" {
		doc.Title = stem(filename)
	}
	return doc, nil
}
