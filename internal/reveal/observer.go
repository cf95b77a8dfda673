// Package reveal applies one-shot entrance effects to page elements as they
// scroll into view.
package reveal

// Target is anything that can take inline style changes.
type Target interface {
	SetStyle(prop, value string)
}

// Geometry is implemented by targets that know their vertical extent.
// Observers that compute intersections need it.
type Geometry interface {
	Offset() float64
	Height() float64
}

// Entry is one visibility notification.
type Entry struct {
	Target         Target
	IsIntersecting bool
	Ratio          float64
}

// Callback receives batched visibility notifications.
type Callback func(entries []Entry)

// Observer is a visibility-notification provider, the analogue of an
// IntersectionObserver instance.
type Observer interface {
	Observe(t Target)
	Unobserve(t Target)
}

// ObserverFactory creates an Observer that reports to cb using opts.
type ObserverFactory func(opts Options, cb Callback) Observer
