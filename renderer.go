package renderkit

// Renderer binds the patch algorithm to one HostAdapter and tracks, per
// container, the vnode tree currently mounted there so repeated Render
// calls against the same container patch instead of re-mounting.
type Renderer struct {
	adapter HostAdapter

	mounted map[any]*VNode

	jobQueue   []func()
	isFlushing bool
}

// CreateRenderer returns a Renderer bound to adapter. adapter must not be
// nil.
func CreateRenderer(adapter HostAdapter) *Renderer {
	return &Renderer{
		adapter: adapter,
		mounted: make(map[any]*VNode),
	}
}

// Render mounts vnode into container, or patches it against whatever was
// last rendered there. Passing a nil vnode unmounts and clears the
// container's tracked tree.
func (r *Renderer) Render(vnode *VNode, container any) {
	previous := r.mounted[container]
	r.patch(previous, vnode, container, nil)
	if vnode == nil {
		delete(r.mounted, container)
		return
	}
	r.mounted[container] = vnode
}

// scheduleJob is the scheduler handed to every component's render effect
// (spec.md §5): reruns are appended to a queue, and when no flush is in
// progress the queue is drained right away, so a signal write outside a
// flush re-renders before the write returns and each such write gets its
// own render pass. Jobs scheduled while a flush is running join that flush
// instead of starting another; coalescing several writes into one pass
// takes a reactive.Batch around them. The cooperative single-threaded
// execution model means there is never a concurrent flush to guard against,
// only a re-entrant one (a job that itself schedules more jobs while
// flushing).
func (r *Renderer) scheduleJob(run func()) {
	r.jobQueue = append(r.jobQueue, run)
	if r.isFlushing {
		return
	}
	r.flushJobs()
}

func (r *Renderer) flushJobs() {
	r.isFlushing = true
	for len(r.jobQueue) > 0 {
		job := r.jobQueue[0]
		r.jobQueue = r.jobQueue[1:]
		job()
	}
	r.isFlushing = false
}
