package site

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/dgallion1/sitefx/internal/config"
	"github.com/dgallion1/sitefx/internal/contact"
	"github.com/dgallion1/sitefx/internal/dom"
	"github.com/dgallion1/sitefx/internal/layout"
	"github.com/dgallion1/sitefx/internal/nav"
	"github.com/dgallion1/sitefx/internal/reveal"
)

// Step is one simulated user action: a scroll to a position or a click on
// a link.
type Step struct {
	ScrollY float64
	Href    string
}

func (s Step) String() string {
	if s.Href != "" {
		return "click " + s.Href
	}
	return "scroll " + strconv.FormatFloat(s.ScrollY, 'f', -1, 64)
}

// ParseSteps reads a comma-separated list such as "0,600,#projects,1200".
// Entries starting with "#", "mailto:" or "tel:" are clicks; the rest are
// scroll positions in pixels.
func ParseSteps(s string) ([]Step, error) {
	var steps []Step
	for _, raw := range strings.Split(s, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if nav.IsInPage(raw) || nav.IsExternalScheme(raw) {
			steps = append(steps, Step{Href: raw})
			continue
		}
		y, err := strconv.ParseFloat(strings.TrimSuffix(raw, "px"), 64)
		if err != nil {
			return nil, fmt.Errorf("step %q: not a scroll position or link", raw)
		}
		steps = append(steps, Step{ScrollY: y})
	}
	return steps, nil
}

// MinStride is the smallest sweep increment, in pixels.
const MinStride = 1.0

// SweepSteps scrolls from the top to the bottom of a page in increments of
// stride pixels, always ending at the bottom. A non-positive stride means
// half the viewport; smaller positive strides are raised to MinStride.
func SweepSteps(pageHeight, viewportHeight, stride float64) []Step {
	maxY := math.Max(0, pageHeight-viewportHeight)
	if !(stride > 0) {
		stride = viewportHeight / 2
	}
	stride = math.Max(stride, MinStride)
	var steps []Step
	for y := 0.0; y < maxY; y += stride {
		steps = append(steps, Step{ScrollY: y})
	}
	return append(steps, Step{ScrollY: maxY})
}

// Frame is the observable outcome of one step.
type Frame struct {
	Step         string   `json:"step" yaml:"step"`
	ScrollY      float64  `json:"scroll_y" yaml:"scroll_y"`
	Active       string   `json:"active,omitempty" yaml:"active,omitempty"`
	Revealed     []string `json:"revealed,omitempty" yaml:"revealed,omitempty"`
	Loaded       []string `json:"loaded,omitempty" yaml:"loaded,omitempty"`
	Navigated    string   `json:"navigated,omitempty" yaml:"navigated,omitempty"`
	NavbarShadow string   `json:"navbar_shadow" yaml:"navbar_shadow"`
	Progress     float64  `json:"progress" yaml:"progress"`
}

// Report is the result of a simulation run.
type Report struct {
	Title      string   `json:"title" yaml:"title"`
	PageHeight float64  `json:"page_height" yaml:"page_height"`
	Viewport   float64  `json:"viewport" yaml:"viewport"`
	Strategy   string   `json:"strategy" yaml:"strategy"`
	Observed   int      `json:"observed" yaml:"observed"`
	Frames     []Frame  `json:"frames" yaml:"frames"`
	Unrevealed []string `json:"unrevealed,omitempty" yaml:"unrevealed,omitempty"`
}

// Simulator drives a laid-out page through a viewport.
type Simulator struct {
	Effects *Effects

	doc   *dom.Document
	cfg   config.Config
	vp    *reveal.Viewport
	log   *slog.Logger
	frame *Frame
}

type viewportScroller struct{ s *Simulator }

func (v viewportScroller) ScrollIntoView(target *dom.Element, _ nav.ScrollOptions) {
	v.s.scrollTo(target.Offset())
}

type navigationRecorder struct{ s *Simulator }

func (n navigationRecorder) Navigate(href string) {
	if n.s.frame != nil {
		n.s.frame.Navigated = href
	}
}

// NewSimulator lays out doc and initializes its effects against an offline
// viewport. Acknowledgments from the contact form go to notifier.
func NewSimulator(cfg config.Config, doc *dom.Document, notifier contact.Notifier, log *slog.Logger) (*Simulator, error) {
	if log == nil {
		log = slog.Default()
	}
	layout.Apply(doc, layout.Config{
		LineHeight:   cfg.Layout.LineHeight,
		CharsPerLine: cfg.Layout.CharsPerLine,
		BlockGap:     cfg.Layout.BlockGap,
		ImageHeight:  cfg.Layout.ImageHeight,
	})

	s := &Simulator{
		doc: doc,
		cfg: cfg,
		vp:  reveal.NewViewport(cfg.Viewport.Height),
		log: log,
	}
	fx, err := Init(cfg, doc, Providers{
		NewObserver: s.vp.Observer,
		Scroller:    viewportScroller{s},
		Navigator:   navigationRecorder{s},
		Notifier:    notifier,
	}, log)
	if err != nil {
		return nil, err
	}
	fx.Reveal.OnReveal = func(t reveal.Target) {
		if s.frame != nil {
			s.frame.Revealed = append(s.frame.Revealed, label(t))
		}
	}
	if fx.Lazy != nil {
		fx.Lazy.OnLoad = func(img reveal.Image) {
			if s.frame != nil {
				s.frame.Loaded = append(s.frame.Loaded, label(img))
			}
		}
	}
	s.Effects = fx
	return s, nil
}

func label(t reveal.Target) string {
	if el, ok := t.(*dom.Element); ok {
		return el.Label()
	}
	return fmt.Sprintf("%v", t)
}

// Document returns the page being simulated.
func (s *Simulator) Document() *dom.Document { return s.doc }

// MaxScroll is the largest reachable scroll position.
func (s *Simulator) MaxScroll() float64 {
	return math.Max(0, s.doc.ScrollHeight()-s.vp.Height())
}

func (s *Simulator) scrollTo(y float64) {
	s.vp.ScrollTo(math.Min(math.Max(y, 0), s.MaxScroll()))
}

// Run executes steps in order and reports a frame per step.
func (s *Simulator) Run(steps []Step) *Report {
	r := &Report{
		Title:      s.doc.Title,
		PageHeight: s.doc.ScrollHeight(),
		Viewport:   s.vp.Height(),
		Strategy:   s.cfg.Reveal.Strategy,
		Observed:   len(s.Effects.Observed()),
	}

	for _, step := range steps {
		f := &Frame{Step: step.String()}
		s.frame = f
		if step.Href != "" {
			ev := &Event{}
			if !s.Effects.Click(ev, step.Href) {
				// A click that scrolls nothing still lets pending
				// notifications through.
				s.vp.Flush()
			}
		} else {
			s.scrollTo(step.ScrollY)
		}
		st := s.Effects.OnScroll(s.vp.ScrollY(), s.vp.Height())
		f.ScrollY = s.vp.ScrollY()
		f.Active = st.Active
		f.NavbarShadow = st.NavbarShadow
		f.Progress = st.Progress
		r.Frames = append(r.Frames, *f)
		s.log.Debug("frame", "step", f.Step, "scroll_y", f.ScrollY, "active", f.Active, "revealed", len(f.Revealed))
	}
	s.frame = nil

	for _, el := range s.Effects.Observed() {
		if s.Effects.Reveal.State(el) != reveal.Revealed {
			r.Unrevealed = append(r.Unrevealed, el.Label())
		}
	}
	return r
}
