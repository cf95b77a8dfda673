// Package layout assigns estimated vertical boxes to a parsed page so that
// scroll simulation has offsets to work with. It is a rough flow model,
// not a CSS engine: block elements stack, inline elements sit on the line
// of their parent.
package layout

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/sitefx/internal/dom"
)

// Config controls the flow estimate.
type Config struct {
	LineHeight   float64 // Pixels per text line.
	CharsPerLine int     // Characters that fit on one line.
	BlockGap     float64 // Vertical gap after each block.
	ImageHeight  float64 // Height of an <img> without data-height.
}

// DefaultConfig returns a desktop-ish estimate.
func DefaultConfig() Config {
	return Config{
		LineHeight:   24,
		CharsPerLine: 90,
		BlockGap:     16,
		ImageHeight:  240,
	}
}

var inlineTags = map[string]bool{
	"a": true, "abbr": true, "b": true, "br": true, "code": true, "em": true,
	"i": true, "label": true, "small": true, "span": true, "strong": true,
	"sub": true, "sup": true, "time": true,
}

var skippedTags = map[string]bool{
	"script": true, "style": true, "template": true, "noscript": true,
}

var headingScale = map[string]float64{
	"h1": 2.0, "h2": 1.6, "h3": 1.3, "h4": 1.1, "h5": 1.0, "h6": 1.0,
}

// Apply lays out the document body and returns the total page height.
func Apply(doc *dom.Document, cfg Config) float64 {
	cfg = withDefaults(cfg)
	body := doc.Body()
	if body == nil {
		return 0
	}
	return place(body, 0, cfg)
}

func withDefaults(cfg Config) Config {
	def := DefaultConfig()
	if cfg.LineHeight <= 0 {
		cfg.LineHeight = def.LineHeight
	}
	if cfg.CharsPerLine <= 0 {
		cfg.CharsPerLine = def.CharsPerLine
	}
	if cfg.BlockGap < 0 {
		cfg.BlockGap = def.BlockGap
	}
	if cfg.ImageHeight <= 0 {
		cfg.ImageHeight = def.ImageHeight
	}
	return cfg
}

// place positions el at top and returns its height. Explicit data-top and
// data-height attributes override the estimate.
func place(el *dom.Element, top float64, cfg Config) float64 {
	if v, ok := pixels(el, "data-top"); ok {
		top = v
	}

	kids := blockChildren(el)
	var height float64
	switch {
	case el.Tag() == "img":
		height = cfg.ImageHeight
	case len(kids) == 0:
		height = textHeight(el, cfg)
		placeInline(el, top, cfg)
	default:
		cursor := top
		for _, k := range el.Children() {
			if skippedTags[k.Tag()] {
				continue
			}
			if inlineTags[k.Tag()] {
				k.SetBox(dom.Box{Top: cursor, Height: cfg.LineHeight})
				placeInline(k, cursor, cfg)
				continue
			}
			h := place(k, cursor, cfg)
			cursor = k.Offset() + h + cfg.BlockGap
		}
		height = cursor - top
		if height > 0 {
			height -= cfg.BlockGap
		}
	}

	if v, ok := pixels(el, "data-height"); ok {
		height = v
	}
	el.SetBox(dom.Box{Top: top, Height: height})
	return height
}

func placeInline(el *dom.Element, top float64, cfg Config) {
	for _, k := range el.Children() {
		k.SetBox(dom.Box{Top: top, Height: cfg.LineHeight})
		placeInline(k, top, cfg)
	}
}

func blockChildren(el *dom.Element) []*dom.Element {
	var out []*dom.Element
	for _, k := range el.Children() {
		if !inlineTags[k.Tag()] && !skippedTags[k.Tag()] {
			out = append(out, k)
		}
	}
	return out
}

// textHeight estimates the rendered height of a leaf block.
func textHeight(el *dom.Element, cfg Config) float64 {
	lines := EstimateLines(el.Text(), cfg.CharsPerLine)
	if lines == 0 {
		return 0
	}
	scale := 1.0
	if s, ok := headingScale[el.Tag()]; ok {
		scale = s
	}
	return float64(lines) * cfg.LineHeight * scale
}

// EstimateLines gives a rough wrapped line count for text at the given
// width in characters.
func EstimateLines(text string, charsPerLine int) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	if charsPerLine <= 0 {
		return 1
	}
	n := utf8.RuneCountInString(text)
	return int(math.Ceil(float64(n) / float64(charsPerLine)))
}

func pixels(el *dom.Element, attr string) (float64, bool) {
	v, ok := el.Attr(attr)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(v), "px"), 64)
	if err != nil || f < 0 {
		return 0, false
	}
	return f, true
}
