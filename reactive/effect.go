package reactive

// Scheduler intercepts an effect's re-run. Given the effect's run function,
// it decides when (or whether, in a batching scheduler) to invoke it. When
// nil, the effect reruns synchronously and immediately on every write.
type Scheduler func(run func())

// Effect is a reactive side effect: its body runs immediately on creation,
// tracking every Signal/Computed it reads, and reruns whenever any of them
// changes.
type Effect struct {
	id       uint64
	fn       func() Cleanup
	cleanup  Cleanup
	sources  []*signalBase
	owner    *Owner
	disposed bool
	pending  bool
	scheduler Scheduler
}

// MarkDirty implements Listener. It schedules (or runs) the effect exactly
// once per batch of writes, even if several of its sources changed.
func (e *Effect) MarkDirty() {
	if e.disposed || e.pending {
		return
	}
	e.pending = true
	run := func() {
		e.pending = false
		e.run()
	}
	if e.scheduler != nil {
		e.scheduler(run)
	} else {
		run()
	}
}

// ID implements Listener.
func (e *Effect) ID() uint64 { return e.id }

func (e *Effect) addSource(s *signalBase) {
	for _, existing := range e.sources {
		if existing == s {
			return
		}
	}
	e.sources = append(e.sources, s)
}

// run executes the effect's body, first tearing down the previous run's
// cleanup and source subscriptions so stale dependencies cannot re-fire it.
func (e *Effect) run() {
	if e.disposed {
		return
	}
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
	for _, s := range e.sources {
		s.unsubscribe(e)
	}
	e.sources = e.sources[:0]

	old := setListener(e)
	e.cleanup = e.fn()
	setListener(old)
}

// Dispose tears the effect down: runs its last cleanup and unsubscribes
// from every tracked source. Safe to call more than once.
func (e *Effect) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
	for _, s := range e.sources {
		s.unsubscribe(e)
	}
	e.sources = nil
}

// CreateEffect creates and immediately runs an effect within the current
// owner (if any). scheduler, when non-nil, is consulted on every rerun
// instead of running the effect body synchronously — this is how a
// component's render effect is routed through the renderer's job queue.
func CreateEffect(fn func() Cleanup, scheduler Scheduler) *Effect {
	e := &Effect{id: nextID(), fn: fn, owner: CurrentOwner(), scheduler: scheduler}
	if e.owner != nil {
		e.owner.registerEffect(e)
	}
	e.run()
	return e
}
