package parser

import (
	"fmt"
	"io"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dgallion1/sitefx/internal/dom"
)

// Parser converts page source into a dom.Document.
type Parser interface {
	Parse(r io.Reader, filename string) (*dom.Document, error)
}

var byExtension = map[string]func() Parser{
	".html":     func() Parser { return &HTMLParser{} },
	".htm":      func() Parser { return &HTMLParser{} },
	".md":       func() Parser { return &MarkdownParser{} },
	".markdown": func() Parser { return &MarkdownParser{} },
}

// SupportedExtensions returns the page extensions ForFile accepts, sorted.
func SupportedExtensions() []string {
	return slices.Sorted(maps.Keys(byExtension))
}

// ForFile returns the parser for a filename's extension.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	newParser, ok := byExtension[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported file extension %q (want one of %s)",
			ext, strings.Join(SupportedExtensions(), ", "))
	}
	return newParser(), nil
}

// IsSupportedExtension reports whether ForFile can load filename.
func IsSupportedExtension(filename string) bool {
	_, ok := byExtension[strings.ToLower(filepath.Ext(filename))]
	return ok
}

func stem(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
