// Package nav keeps navigation links in step with the page: highlighting
// the link for the section in view and routing anchor clicks.
package nav

// Section is a page region that a nav link can point at.
type Section interface {
	ID() string
	Offset() float64
}

// Link is a navigation link styled by whether it is active.
type Link interface {
	Href() string
	SetStyle(prop, value string)
}

// Highlight is the pair of opacities applied to nav links.
type Highlight struct {
	Active   string
	Inactive string
}

// DefaultHighlight dims inactive links to 0.6.
func DefaultHighlight() Highlight {
	return Highlight{Active: "1", Inactive: "0.6"}
}

// CurrentSection returns the id of the last section, in document order,
// whose offset minus thresholdPx is at or above scrollY. Sections without an
// id are ignored. Returns "" when none qualifies.
func CurrentSection(sections []Section, scrollY, thresholdPx float64) string {
	current := ""
	for _, s := range sections {
		id := s.ID()
		if id == "" {
			continue
		}
		if scrollY >= s.Offset()-thresholdPx {
			current = id
		}
	}
	return current
}

// UpdateActiveSection marks at most one link active: the one whose href is
// "#" plus the current section id. It returns that id.
func UpdateActiveSection(sections []Section, links []Link, scrollY, thresholdPx float64) string {
	return DefaultHighlight().Apply(sections, links, scrollY, thresholdPx)
}

// Apply is UpdateActiveSection with custom opacities.
func (h Highlight) Apply(sections []Section, links []Link, scrollY, thresholdPx float64) string {
	current := CurrentSection(sections, scrollY, thresholdPx)
	for _, l := range links {
		l.SetStyle("opacity", h.Inactive)
		if current != "" && l.Href() == "#"+current {
			l.SetStyle("opacity", h.Active)
		}
	}
	return current
}
