package reactive

import "reflect"

// signalBase is the type-erased subscriber bookkeeping shared by Signal and
// Computed, mirroring the subscribe/unsubscribe/notify split so either can
// be a dependency source for an Effect or another Computed.
type signalBase struct {
	id   uint64
	subs []Listener
}

func (s *signalBase) subscribe(l Listener) {
	if l == nil {
		return
	}
	lid := l.ID()
	for _, existing := range s.subs {
		if existing.ID() == lid {
			return
		}
	}
	s.subs = append(s.subs, l)
}

func (s *signalBase) unsubscribe(l Listener) {
	if l == nil {
		return
	}
	lid := l.ID()
	for i, existing := range s.subs {
		if existing.ID() == lid {
			s.subs[i] = s.subs[len(s.subs)-1]
			s.subs = s.subs[:len(s.subs)-1]
			return
		}
	}
}

// notify marks every subscriber dirty. While a Batch is in progress the
// subscribers are appended to pendingUpdates instead; otherwise listeners are
// notified (and, for effects with a scheduler, scheduled) immediately.
func (s *signalBase) notify() {
	subs := make([]Listener, len(s.subs))
	copy(subs, s.subs)

	if batchDepth > 0 {
		for _, l := range subs {
			pendingUpdates = append(pendingUpdates, l)
		}
		return
	}
	for _, l := range subs {
		l.MarkDirty()
	}
}

// track subscribes the current listener (if any) to this source and, for
// effects/computeds, records the source for later unsubscription.
func (s *signalBase) track() {
	l := CurrentListener()
	if l == nil {
		return
	}
	s.subscribe(l)
	if e, ok := l.(*Effect); ok {
		e.addSource(s)
	}
	if c, ok := l.(sourceTracker); ok {
		c.addSource(s)
	}
}

// sourceTracker is implemented by listeners (Computed) that need to
// unsubscribe from stale sources between recomputations.
type sourceTracker interface {
	addSource(*signalBase)
}

// Signal is a reactive value cell: Get reads and tracks, Set writes and
// notifies subscribers when the value actually changed.
type Signal[T any] struct {
	base  signalBase
	value T
	equal func(a, b T) bool
}

// NewSignal creates a signal with the given initial value.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{base: signalBase{id: nextID()}, value: initial}
}

// WithEquals configures a custom equality function, useful for types where
// the default comparison (== for comparable types, reflect.DeepEqual
// otherwise) is too strict, too expensive, or wrong.
func (s *Signal[T]) WithEquals(fn func(a, b T) bool) *Signal[T] {
	s.equal = fn
	return s
}

// Get returns the current value, subscribing the current listener.
func (s *Signal[T]) Get() T {
	s.base.track()
	return s.value
}

// Peek returns the current value without tracking a dependency.
func (s *Signal[T]) Peek() T {
	return s.value
}

// Set stores a new value and, if it differs from the old one, notifies
// subscribers.
func (s *Signal[T]) Set(value T) {
	if s.equals(s.value, value) {
		return
	}
	s.value = value
	s.base.notify()
}

// Update atomically reads and replaces the value via fn.
func (s *Signal[T]) Update(fn func(T) T) {
	s.Set(fn(s.value))
}

func (s *Signal[T]) equals(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return defaultEquals(a, b)
}

func defaultEquals[T any](a, b T) bool {
	switch av := any(a).(type) {
	case string:
		bv, ok := any(b).(string)
		return ok && av == bv
	case int:
		bv, ok := any(b).(int)
		return ok && av == bv
	case int64:
		bv, ok := any(b).(int64)
		return ok && av == bv
	case float64:
		bv, ok := any(b).(float64)
		return ok && av == bv
	case bool:
		bv, ok := any(b).(bool)
		return ok && av == bv
	case nil:
		return any(b) == nil
	default:
		return reflect.DeepEqual(a, b)
	}
}

// ShallowSignal is a Signal whose equality check always reports "changed",
// whatever the payload, so every Set notifies — the reactive-capability equivalent of
// shallowRef, used when the host only cares about identity, not deep value
// equality (e.g. a props/attrs map replaced wholesale on every patch).
func ShallowSignal[T any](initial T) *Signal[T] {
	return NewSignal(initial).WithEquals(func(T, T) bool { return false })
}
