// Package effects holds the small cosmetic handlers of a portfolio page:
// button hover lift, navbar shadow, scroll progress and the mobile menu.
package effects

// Styler takes inline style writes.
type Styler interface {
	SetStyle(prop, value string)
}

// StyleReader can also read inline style back.
type StyleReader interface {
	Styler
	Style(prop string) string
}

// Hover lifts a button while the pointer is over it.
type Hover struct {
	Lifted string
	Rest   string
}

func DefaultHover() Hover {
	return Hover{Lifted: "translateY(-3px)", Rest: "translateY(0)"}
}

func (h Hover) Enter(btn Styler) { btn.SetStyle("transform", h.Lifted) }

func (h Hover) Leave(btn Styler) { btn.SetStyle("transform", h.Rest) }

// NavbarShadow deepens the navbar shadow once the page is scrolled past
// Offset pixels.
type NavbarShadow struct {
	Offset   float64
	Scrolled string
	Resting  string
}

func DefaultNavbarShadow() NavbarShadow {
	return NavbarShadow{
		Offset:   100,
		Scrolled: "0 4px 15px rgba(0,0,0,0.2)",
		Resting:  "0 2px 10px rgba(0,0,0,0.1)",
	}
}

// Update applies the shadow for scrollY and returns it. A nil navbar is
// ignored.
func (n NavbarShadow) Update(navbar Styler, scrollY float64) string {
	shadow := n.Resting
	if scrollY > n.Offset {
		shadow = n.Scrolled
	}
	if navbar != nil {
		navbar.SetStyle("box-shadow", shadow)
	}
	return shadow
}

// ScrollProgress is how far down the page the viewport is, in percent.
// Pages that fit in the viewport report 0. The result is not clamped, so
// overscroll can fall outside [0, 100].
func ScrollProgress(scrollY, scrollHeight, viewportHeight float64) float64 {
	span := scrollHeight - viewportHeight
	if span <= 0 {
		return 0
	}
	return scrollY / span * 100
}

// ToggleMenu flips the menu between hidden and a flex row and returns the
// new display value. Anything other than "none" counts as shown.
func ToggleMenu(menu StyleReader) string {
	next := "none"
	if menu.Style("display") == "none" {
		next = "flex"
	}
	menu.SetStyle("display", next)
	return next
}
