package nav

import "strings"

// Event is the default-action half of a UI event.
type Event interface {
	PreventDefault()
}

// Resolver finds the element an in-page href points at.
type Resolver[T any] interface {
	Resolve(href string) (T, bool)
}

// Scroller brings a target into view.
type Scroller[T any] interface {
	ScrollIntoView(target T, opts ScrollOptions)
}

// Navigator leaves the page, e.g. for mailto: and tel: links.
type Navigator interface {
	Navigate(href string)
}

// ScrollOptions mirror scrollIntoView's behavior and block arguments.
type ScrollOptions struct {
	Behavior string
	Block    string
}

// SmoothStart scrolls smoothly so the target's top meets the viewport top.
var SmoothStart = ScrollOptions{Behavior: "smooth", Block: "start"}

// AnchorHandler routes link clicks.
type AnchorHandler[T any] struct {
	Resolver  Resolver[T]
	Scroller  Scroller[T]
	Navigator Navigator
}

// IsInPage reports whether href is a fragment link.
func IsInPage(href string) bool {
	return strings.HasPrefix(href, "#")
}

// IsExternalScheme reports whether href is a mailto: or tel: link.
func IsExternalScheme(href string) bool {
	return strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "tel:")
}

// Click handles an in-page anchor. The default action is always prevented;
// if the target does not exist nothing else happens. It reports whether a
// scroll was requested.
func (h *AnchorHandler[T]) Click(ev Event, href string) bool {
	ev.PreventDefault()
	target, ok := h.Resolver.Resolve(href)
	if !ok || h.Scroller == nil {
		return false
	}
	h.Scroller.ScrollIntoView(target, SmoothStart)
	return true
}

// ClickExternal handles mailto: and tel: links by handing them to the
// navigator after preventing the default action.
func (h *AnchorHandler[T]) ClickExternal(ev Event, href string) {
	ev.PreventDefault()
	if h.Navigator != nil {
		h.Navigator.Navigate(href)
	}
}
