package reveal

import "fmt"

// Strategy decides what hidden and revealed look like.
type Strategy interface {
	Hide(t Target)
	Reveal(t Target)
}

// Keyframe hides with opacity and reveals by starting a CSS animation that
// the page's stylesheet defines.
type Keyframe struct {
	Animation string
}

// DefaultAnimation is the animation shorthand applied on reveal.
const DefaultAnimation = "slideInDown 0.6s ease forwards"

func (k Keyframe) Hide(t Target) {
	t.SetStyle("opacity", "0")
}

func (k Keyframe) Reveal(t Target) {
	anim := k.Animation
	if anim == "" {
		anim = DefaultAnimation
	}
	t.SetStyle("animation", anim)
}

// Transition hides with opacity and a downward offset, then lets a CSS
// transition carry the element into place.
type Transition struct {
	OffsetPx float64
	Duration string
}

func (tr Transition) Hide(t Target) {
	dur := tr.Duration
	if dur == "" {
		dur = "0.6s"
	}
	t.SetStyle("opacity", "0")
	t.SetStyle("transform", fmt.Sprintf("translateY(%gpx)", tr.OffsetPx))
	t.SetStyle("transition", fmt.Sprintf("opacity %s ease, transform %s ease", dur, dur))
}

func (tr Transition) Reveal(t Target) {
	t.SetStyle("opacity", "1")
	t.SetStyle("transform", "translateY(0)")
}

// StrategyFor maps a configured strategy name onto a Strategy.
func StrategyFor(name, animation string, offsetPx float64, duration string) (Strategy, error) {
	switch name {
	case "", "keyframe":
		return Keyframe{Animation: animation}, nil
	case "transition":
		return Transition{OffsetPx: offsetPx, Duration: duration}, nil
	default:
		return nil, fmt.Errorf("unknown reveal strategy %q", name)
	}
}
