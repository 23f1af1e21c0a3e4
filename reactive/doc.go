// Package reactive provides the fine-grained reactive primitives the
// renderer core consumes as an opaque capability: Signal (a mutable
// tracked value), Computed (a cached derived value), Effect (a side effect
// that re-runs when its dependencies change), and Owner (a disposal scope
// that ties a component instance's effects to its lifetime).
//
// Reading a Signal or Computed during a tracked context (inside an Effect's
// body, or a Computed's compute function) automatically subscribes that
// context so it reruns/recomputes when the value changes. Writing a Signal
// notifies its subscribers — synchronously by default, or through a
// per-Effect Scheduler that can batch/coalesce reruns.
//
// The execution model is single-threaded and cooperative: there is no
// preemption, and at most one render pass is ever in flight. This lets the
// package track "current listener" and "current owner" as plain package
// state rather than the per-goroutine bookkeeping a concurrent renderer
// would need.
package reactive
