package reveal

import "math"

// Viewport is an offline visibility provider. It holds a scroll position
// and a height and computes intersections geometrically for every observer
// created from it. Notifications are delivered on Flush or ScrollTo, never
// from inside Observe, mirroring the asynchronous delivery of browsers.
type Viewport struct {
	height    float64
	scrollY   float64
	observers []*viewportObserver
}

func NewViewport(height float64) *Viewport {
	return &Viewport{height: height}
}

func (v *Viewport) Height() float64 { return v.height }

func (v *Viewport) ScrollY() float64 { return v.scrollY }

// Observer creates an observer bound to this viewport. Its signature
// matches ObserverFactory.
func (v *Viewport) Observer(opts Options, cb Callback) Observer {
	o := &viewportObserver{
		vp:   v,
		opts: opts,
		cb:   cb,
		last: make(map[Target]bool),
	}
	v.observers = append(v.observers, o)
	return o
}

// ScrollTo moves the viewport and delivers any resulting notifications.
func (v *Viewport) ScrollTo(y float64) {
	v.scrollY = y
	v.Flush()
}

// Flush delivers notifications for targets whose intersection state changed
// since they were last reported, including targets never reported yet.
func (v *Viewport) Flush() {
	for _, o := range v.observers {
		o.flush()
	}
}

// Ratio is the fraction of g inside the viewport after applying margin.
// Zero-height elements count as fully visible when their top edge is
// inside the root.
func (v *Viewport) Ratio(g Geometry, m Margin) float64 {
	rootTop := v.scrollY - m.Top
	rootBottom := v.scrollY + v.height + m.Bottom
	if rootBottom < rootTop {
		return 0
	}

	top := g.Offset()
	h := g.Height()
	if h <= 0 {
		if top >= rootTop && top <= rootBottom {
			return 1
		}
		return 0
	}
	overlap := math.Min(top+h, rootBottom) - math.Max(top, rootTop)
	if overlap <= 0 {
		return 0
	}
	return math.Min(overlap/h, 1)
}

type viewportObserver struct {
	vp      *Viewport
	opts    Options
	cb      Callback
	targets []Target
	last    map[Target]bool
}

func (o *viewportObserver) Observe(t Target) {
	for _, existing := range o.targets {
		if existing == t {
			return
		}
	}
	o.targets = append(o.targets, t)
}

func (o *viewportObserver) Unobserve(t Target) {
	for i, existing := range o.targets {
		if existing == t {
			o.targets = append(o.targets[:i], o.targets[i+1:]...)
			break
		}
	}
	delete(o.last, t)
}

func (o *viewportObserver) flush() {
	var entries []Entry
	for _, t := range o.targets {
		var ratio float64
		if g, ok := t.(Geometry); ok {
			ratio = o.vp.Ratio(g, o.opts.RootMargin)
		}
		hit := ratio > 0 && ratio >= o.opts.Threshold
		prev, reported := o.last[t]
		if reported && prev == hit {
			continue
		}
		o.last[t] = hit
		entries = append(entries, Entry{Target: t, IsIntersecting: hit, Ratio: ratio})
	}
	if len(entries) > 0 {
		o.cb(entries)
	}
}
