package reveal

// Image is a target whose attributes can be rewritten.
type Image interface {
	Target
	Attr(key string) (string, bool)
	SetAttr(key, val string)
	RemoveAttr(key string)
}

// LazyImages swaps data-src into src the first time an image becomes
// visible, then stops watching it.
type LazyImages struct {
	observer Observer

	// OnLoad, if set, is called after an image's src is set.
	OnLoad func(img Image)
}

func NewLazyImages(opts Options, newObserver ObserverFactory) *LazyImages {
	l := &LazyImages{}
	l.observer = newObserver(opts, l.handle)
	return l
}

func (l *LazyImages) Register(imgs []Image) {
	for _, img := range imgs {
		l.observer.Observe(img)
	}
}

func (l *LazyImages) handle(entries []Entry) {
	for _, e := range entries {
		if !e.IsIntersecting {
			continue
		}
		img, ok := e.Target.(Image)
		if !ok {
			l.observer.Unobserve(e.Target)
			continue
		}
		if src, ok := img.Attr("data-src"); ok {
			img.SetAttr("src", src)
			img.RemoveAttr("data-src")
			if l.OnLoad != nil {
				l.OnLoad(img)
			}
		}
		l.observer.Unobserve(img)
	}
}
