package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/sitefx/internal/dom"
)

var testCfg = Config{
	LineHeight:   20,
	CharsPerLine: 80,
	BlockGap:     10,
	ImageHeight:  100,
}

func parse(t *testing.T, markup string) *dom.Document {
	t.Helper()
	doc, err := dom.Parse(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

func TestEstimateLines(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  int
	}{
		{"", 80, 0},
		{"   ", 80, 0},
		{"abc", 80, 1},
		{strings.Repeat("x", 80), 80, 1},
		{strings.Repeat("x", 81), 80, 2},
		{strings.Repeat("x", 181), 90, 3},
		{"abc", 0, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EstimateLines(tt.text, tt.width), "len=%d width=%d", len(tt.text), tt.width)
	}
}

func TestApply_StacksSections(t *testing.T) {
	doc := parse(t, `<body>
<section id="a" data-height="500"><p>x</p></section>
<section id="b" data-height="700"></section>
<section id="c"><h2>Title</h2><p>short</p></section>
</body>`)

	total := Apply(doc, testCfg)

	a, _ := doc.ByID("a")
	b, _ := doc.ByID("b")
	c, _ := doc.ByID("c")
	assert.Equal(t, dom.Box{Top: 0, Height: 500}, a.Box())
	assert.Equal(t, dom.Box{Top: 510, Height: 700}, b.Box())
	// h2 is 1.6 lines tall, then a one-line paragraph.
	assert.Equal(t, dom.Box{Top: 1220, Height: 62}, c.Box())
	assert.Equal(t, 1282.0, total)
	assert.Equal(t, 1282.0, doc.ScrollHeight())
}

func TestApply_DataTopOverride(t *testing.T) {
	doc := parse(t, `<body>
<div id="pinned" data-top="2000px" data-height="100"></div>
<div id="after"><p>next</p></div>
</body>`)
	Apply(doc, testCfg)

	pinned, _ := doc.ByID("pinned")
	after, _ := doc.ByID("after")
	assert.Equal(t, 2000.0, pinned.Offset())
	assert.Equal(t, 2110.0, after.Offset())
}

func TestApply_InlineChildrenShareLine(t *testing.T) {
	doc := parse(t, `<body><p id="p">Hello <a id="link" href="#x">there</a></p></body>`)
	Apply(doc, testCfg)

	p, _ := doc.ByID("p")
	link, _ := doc.ByID("link")
	assert.Equal(t, p.Offset(), link.Offset())
	assert.Equal(t, 20.0, link.Height())
}

func TestApply_ImagesAndScripts(t *testing.T) {
	doc := parse(t, `<body><img id="img" data-src="a.png"><script>var x = 1;</script><p id="p">t</p></body>`)
	Apply(doc, testCfg)

	img, _ := doc.ByID("img")
	p, _ := doc.ByID("p")
	assert.Equal(t, 100.0, img.Height())
	assert.Equal(t, 110.0, p.Offset())
}

func TestApply_BadOverrideIgnored(t *testing.T) {
	doc := parse(t, `<body><p id="p" data-height="tall">t</p></body>`)
	Apply(doc, testCfg)
	p, _ := doc.ByID("p")
	assert.Equal(t, 20.0, p.Height())
}

func TestApply_ZeroConfigUsesDefaults(t *testing.T) {
	doc := parse(t, `<body><p id="p">t</p></body>`)
	Apply(doc, Config{})
	p, _ := doc.ByID("p")
	assert.Equal(t, DefaultConfig().LineHeight, p.Height())
}
