package reveal

import "log/slog"

// State is the lifecycle of an observed element.
type State int

const (
	Unknown State = iota
	Pending
	Revealed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Revealed:
		return "revealed"
	default:
		return "unknown"
	}
}

// Controller hides registered elements and reveals each one exactly once,
// the first time it is reported as intersecting.
//
// A Controller is driven from a single event loop and is not safe for
// concurrent use.
type Controller struct {
	strategy Strategy
	observer Observer
	states   map[Target]State
	log      *slog.Logger

	// OnReveal, if set, is called after each reveal.
	OnReveal func(t Target)
}

// NewController builds a controller whose observer comes from newObserver.
func NewController(opts Options, strategy Strategy, newObserver ObserverFactory, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	c := &Controller{
		strategy: strategy,
		states:   make(map[Target]State),
		log:      log,
	}
	c.observer = newObserver(opts, c.handle)
	return c
}

// Register sets the hidden baseline on each target and starts observing it.
// Targets already known to the controller are skipped.
func (c *Controller) Register(targets []Target) {
	n := 0
	for _, t := range targets {
		if _, seen := c.states[t]; seen {
			continue
		}
		c.strategy.Hide(t)
		c.states[t] = Pending
		c.observer.Observe(t)
		n++
	}
	c.log.Debug("observing elements", "count", n)
}

func (c *Controller) handle(entries []Entry) {
	for _, e := range entries {
		if !e.IsIntersecting {
			continue
		}
		if c.states[e.Target] != Pending {
			continue
		}
		c.strategy.Reveal(e.Target)
		c.states[e.Target] = Revealed
		c.observer.Unobserve(e.Target)
		if c.OnReveal != nil {
			c.OnReveal(e.Target)
		}
	}
}

// State reports where t is in its lifecycle.
func (c *Controller) State(t Target) State {
	return c.states[t]
}

// Pending returns how many registered targets have not been revealed yet.
func (c *Controller) Pending() int {
	n := 0
	for _, s := range c.states {
		if s == Pending {
			n++
		}
	}
	return n
}
