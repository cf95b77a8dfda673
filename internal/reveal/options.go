package reveal

import (
	"fmt"
	"strconv"
	"strings"
)

// Margin grows (positive) or shrinks (negative) the observation root on
// each side, in pixels.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// ParseMargin reads CSS margin shorthand with one to four pixel values,
// e.g. "0px 0px -100px 0px".
func ParseMargin(s string) (Margin, error) {
	fields := strings.Fields(s)
	vals := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSuffix(f, "px")
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Margin{}, fmt.Errorf("root margin %q: invalid length %q", s, f)
		}
		vals = append(vals, v)
	}

	switch len(vals) {
	case 1:
		return Margin{vals[0], vals[0], vals[0], vals[0]}, nil
	case 2:
		return Margin{vals[0], vals[1], vals[0], vals[1]}, nil
	case 3:
		return Margin{vals[0], vals[1], vals[2], vals[1]}, nil
	case 4:
		return Margin{vals[0], vals[1], vals[2], vals[3]}, nil
	default:
		return Margin{}, fmt.Errorf("root margin %q: want 1 to 4 values, got %d", s, len(vals))
	}
}

func (m Margin) String() string {
	return fmt.Sprintf("%gpx %gpx %gpx %gpx", m.Top, m.Right, m.Bottom, m.Left)
}

// Options configure visibility observation.
type Options struct {
	// Threshold is the visible fraction of a target needed to count as
	// intersecting.
	Threshold  float64
	RootMargin Margin
}

// DefaultOptions fire when a tenth of the element is visible, with the
// viewport's bottom edge pulled up by 100px.
func DefaultOptions() Options {
	return Options{
		Threshold:  0.1,
		RootMargin: Margin{Bottom: -100},
	}
}
