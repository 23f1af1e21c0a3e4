package reactive

// Computed is a cached derived value (the "computed" of the spec's
// external-interface list): its compute function runs lazily, tracking
// whatever signals it reads, and only reruns when one of them changes.
type Computed[T any] struct {
	base    signalBase
	compute func() T
	value   T
	dirty   bool
	sources []*signalBase
}

// NewComputed creates a Computed from a pure function of other signals.
func NewComputed[T any](compute func() T) *Computed[T] {
	c := &Computed[T]{base: signalBase{id: nextID()}, compute: compute, dirty: true}
	return c
}

// MarkDirty implements Listener: invalidates the cached value. A Computed
// does not eagerly recompute; it recomputes the next time Get is called.
func (c *Computed[T]) MarkDirty() {
	if c.dirty {
		return
	}
	c.dirty = true
	c.base.notify()
}

// ID implements Listener.
func (c *Computed[T]) ID() uint64 { return c.base.id }

func (c *Computed[T]) addSource(s *signalBase) {
	for _, existing := range c.sources {
		if existing == s {
			return
		}
	}
	c.sources = append(c.sources, s)
}

// Get returns the current value, recomputing first if stale, and
// subscribes the current listener to this Computed.
func (c *Computed[T]) Get() T {
	if c.dirty {
		for _, s := range c.sources {
			s.unsubscribe(c)
		}
		c.sources = c.sources[:0]

		old := setListener(c)
		c.value = c.compute()
		setListener(old)
		c.dirty = false
	}
	c.base.track()
	return c.value
}
