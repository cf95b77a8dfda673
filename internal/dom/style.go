package dom

import "strings"

type declaration struct {
	prop  string
	value string
}

// parseStyle splits an inline style attribute into ordered declarations.
func parseStyle(s string) []declaration {
	var decls []declaration
	for _, part := range strings.Split(s, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		value = strings.TrimSpace(value)
		if prop == "" {
			continue
		}
		decls = append(decls, declaration{prop: prop, value: value})
	}
	return decls
}

func formatStyle(decls []declaration) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.prop+": "+d.value)
	}
	return strings.Join(parts, "; ")
}

// Style returns the inline value of a CSS property, or "".
func (e *Element) Style(prop string) string {
	v, _ := e.Attr("style")
	prop = strings.ToLower(prop)
	for _, d := range parseStyle(v) {
		if d.prop == prop {
			return d.value
		}
	}
	return ""
}

// SetStyle sets an inline CSS property, keeping declaration order. An empty
// value removes the property, like assigning "" to element.style.
func (e *Element) SetStyle(prop, value string) {
	v, _ := e.Attr("style")
	prop = strings.ToLower(prop)
	decls := parseStyle(v)

	out := decls[:0]
	replaced := false
	for _, d := range decls {
		if d.prop == prop {
			if value == "" || replaced {
				continue
			}
			d.value = value
			replaced = true
		}
		out = append(out, d)
	}
	if !replaced && value != "" {
		out = append(out, declaration{prop: prop, value: value})
	}

	if len(out) == 0 {
		e.RemoveAttr("style")
		return
	}
	e.SetAttr("style", formatStyle(out))
}
