package site

import (
	"github.com/dgallion1/sitefx/internal/contact"
	"github.com/dgallion1/sitefx/internal/dom"
)

// Form adapts a <form> element to contact.Form. Fields are found by name;
// a missing or empty named field falls back to the control at the same
// position (name, email, message).
type Form struct {
	El *dom.Element
}

func (f Form) Fields() contact.Submission {
	ctrls := f.controls()
	value := func(name string, pos int) string {
		if c := named(ctrls, name); c != nil && c.Value() != "" {
			return c.Value()
		}
		if pos < len(ctrls) {
			return ctrls[pos].Value()
		}
		return ""
	}
	return contact.Submission{
		Name:    value("name", 0),
		Email:   value("email", 1),
		Message: value("message", 2),
	}
}

// Fill types s into the form's fields.
func (f Form) Fill(s contact.Submission) {
	ctrls := f.controls()
	for i, kv := range [][2]string{{"name", s.Name}, {"email", s.Email}, {"message", s.Message}} {
		c := named(ctrls, kv[0])
		if c == nil && i < len(ctrls) {
			c = ctrls[i]
		}
		if c != nil {
			c.SetValue(kv[1])
		}
	}
}

func named(ctrls []*dom.Element, name string) *dom.Element {
	for _, c := range ctrls {
		if n, _ := c.Attr("name"); n == name {
			return c
		}
	}
	return nil
}

func (f Form) Reset() {
	for _, c := range f.controls() {
		c.SetValue("")
	}
}

func (f Form) controls() []*dom.Element {
	var out []*dom.Element
	for _, c := range f.El.Controls() {
		switch t, _ := c.Attr("type"); t {
		case "submit", "button", "reset", "hidden":
			continue
		}
		out = append(out, c)
	}
	return out
}

// Event records whether the default action was prevented.
type Event struct {
	Prevented bool
}

func (e *Event) PreventDefault() { e.Prevented = true }
