// Package site wires the page effects together. Init takes the page's
// element collections and the event providers explicitly; nothing is
// registered globally.
package site

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgallion1/sitefx/internal/config"
	"github.com/dgallion1/sitefx/internal/contact"
	"github.com/dgallion1/sitefx/internal/dom"
	"github.com/dgallion1/sitefx/internal/effects"
	"github.com/dgallion1/sitefx/internal/nav"
	"github.com/dgallion1/sitefx/internal/reveal"
)

// Page provides labeled element collections. *dom.Document implements it.
type Page interface {
	Query(selector string) []*dom.Element
	QueryOne(selector string) *dom.Element
	Resolve(href string) (*dom.Element, bool)
	ScrollHeight() float64
}

// Providers are the environment callbacks the effects depend on.
type Providers struct {
	NewObserver reveal.ObserverFactory
	Scroller    nav.Scroller[*dom.Element]
	Navigator   nav.Navigator
	Notifier    contact.Notifier
}

// Effects is an initialized page.
type Effects struct {
	Reveal  *reveal.Controller
	Lazy    *reveal.LazyImages
	Anchors *nav.AnchorHandler[*dom.Element]
	Contact *contact.Handler

	page      Page
	log       *slog.Logger
	sections  []nav.Section
	links     []nav.Link
	anchors   map[string]bool
	threshold float64
	highlight nav.Highlight
	navbar    *dom.Element
	shadow    effects.NavbarShadow
	hover     effects.Hover
	buttons   []*dom.Element
	menu      *dom.Element
	observed  []*dom.Element
}

// ScrollState is what a scroll event changed.
type ScrollState struct {
	Active       string
	NavbarShadow string
	Progress     float64
}

// Init hides and observes the reveal targets, hooks up lazy images and
// collects sections, nav links, buttons and the navbar.
func Init(cfg config.Config, page Page, p Providers, log *slog.Logger) (*Effects, error) {
	if log == nil {
		log = slog.Default()
	}
	if p.NewObserver == nil {
		return nil, fmt.Errorf("site: no observer provider")
	}

	margin, err := reveal.ParseMargin(cfg.Reveal.RootMargin)
	if err != nil {
		return nil, err
	}
	strategy, err := reveal.StrategyFor(cfg.Reveal.Strategy, cfg.Reveal.Animation, cfg.Reveal.OffsetPx, cfg.Reveal.Duration)
	if err != nil {
		return nil, err
	}

	fx := &Effects{
		page:      page,
		log:       log,
		threshold: cfg.Nav.ThresholdPx,
		highlight: nav.Highlight{Active: cfg.Nav.ActiveOpacity, Inactive: cfg.Nav.InactiveOpacity},
		shadow: effects.NavbarShadow{
			Offset:   cfg.Navbar.ShadowOffset,
			Scrolled: cfg.Navbar.ScrolledShadow,
			Resting:  cfg.Navbar.RestingShadow,
		},
		hover: effects.Hover{Lifted: cfg.Buttons.HoverTransform, Rest: cfg.Buttons.RestTransform},
		Anchors: &nav.AnchorHandler[*dom.Element]{
			Resolver:  page,
			Scroller:  p.Scroller,
			Navigator: p.Navigator,
		},
		Contact: &contact.Handler{Notifier: p.Notifier, Log: log},
	}

	opts := reveal.Options{Threshold: cfg.Reveal.Threshold, RootMargin: margin}
	fx.Reveal = reveal.NewController(opts, strategy, p.NewObserver, log)
	fx.observed = page.Query(strings.Join(cfg.Reveal.Selectors, ", "))
	targets := make([]reveal.Target, len(fx.observed))
	for i, el := range fx.observed {
		targets[i] = el
	}
	fx.Reveal.Register(targets)

	images := 0
	if cfg.LazyImages.Enabled {
		fx.Lazy = reveal.NewLazyImages(reveal.Options{}, p.NewObserver)
		var imgs []reveal.Image
		for _, el := range page.Query(cfg.LazyImages.Selector) {
			imgs = append(imgs, el)
		}
		fx.Lazy.Register(imgs)
		images = len(imgs)
	}

	for _, el := range page.Query(cfg.Nav.SectionSelector) {
		fx.sections = append(fx.sections, el)
	}
	for _, el := range page.Query(cfg.Nav.LinkSelector) {
		fx.links = append(fx.links, el)
	}
	fx.anchors = make(map[string]bool)
	for _, el := range page.Query(cfg.Nav.AnchorSelector) {
		if href := el.Href(); nav.IsInPage(href) {
			fx.anchors[href] = true
		}
	}
	if cfg.Navbar.Selector != "" {
		fx.navbar = page.QueryOne(cfg.Navbar.Selector)
	}
	if cfg.Buttons.Selector != "" {
		fx.buttons = page.Query(cfg.Buttons.Selector)
	}
	if cfg.Nav.MenuSelector != "" {
		fx.menu = page.QueryOne(cfg.Nav.MenuSelector)
	}

	log.Info("effects initialized",
		"observed", len(fx.observed),
		"lazy_images", images,
		"sections", len(fx.sections),
		"nav_links", len(fx.links),
		"anchors", len(fx.anchors),
		"buttons", len(fx.buttons),
		"strategy", cfg.Reveal.Strategy,
	)
	return fx, nil
}

// Observed returns the reveal targets in document order.
func (fx *Effects) Observed() []*dom.Element { return fx.observed }

// Buttons returns the elements with hover effects.
func (fx *Effects) Buttons() []*dom.Element { return fx.buttons }

// OnScroll runs the scroll handlers: active link, navbar shadow and
// progress.
func (fx *Effects) OnScroll(scrollY, viewportHeight float64) ScrollState {
	var navbar effects.Styler
	if fx.navbar != nil {
		navbar = fx.navbar
	}
	return ScrollState{
		Active:       fx.highlight.Apply(fx.sections, fx.links, scrollY, fx.threshold),
		NavbarShadow: fx.shadow.Update(navbar, scrollY),
		Progress:     effects.ScrollProgress(scrollY, fx.page.ScrollHeight(), viewportHeight),
	}
}

// Click routes a click on a link with the given href. Fragments scroll only
// when some link matching the anchor selector carries that href; mailto:
// and tel: navigate; anything else is left to the browser. It reports
// whether a scroll was requested.
func (fx *Effects) Click(ev nav.Event, href string) bool {
	switch {
	case nav.IsInPage(href):
		if !fx.anchors[href] {
			return false
		}
		return fx.Anchors.Click(ev, href)
	case nav.IsExternalScheme(href):
		fx.Anchors.ClickExternal(ev, href)
	}
	return false
}

func (fx *Effects) HoverEnter(btn *dom.Element) { fx.hover.Enter(btn) }

func (fx *Effects) HoverLeave(btn *dom.Element) { fx.hover.Leave(btn) }

// ToggleMenu flips the mobile menu. Returns "" when the page has no menu.
func (fx *Effects) ToggleMenu() string {
	if fx.menu == nil {
		return ""
	}
	return effects.ToggleMenu(fx.menu)
}

// SubmitContact acknowledges a form submission.
func (fx *Effects) SubmitContact(ev contact.Event, form contact.Form) contact.Submission {
	return fx.Contact.Submit(ev, form)
}
