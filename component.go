package renderkit

import "github.com/renderkit-go/renderkit/reactive"

// PropDecl declares one input a component accepts: its zero/default value
// (used when the incoming prop is nil/absent) and, when Default is a
// function, a factory invoked to produce that default.
type PropDecl struct {
	// Default is either a concrete default value, or a func() any invoked
	// to produce one (spec.md §4.5 step 3: "defaults that are functions
	// are invoked").
	Default any
}

// PropDecls declares a component's full set of named inputs.
type PropDecls map[string]PropDecl

// SetupContext is the second argument passed to a component's Setup
// function, bundling everything setup needs besides its (read-only) props.
type SetupContext struct {
	Attrs func() map[string]any
	Emit  func(event string, args ...any)
	Slots Slots
}

// RenderContext is passed to a component's Render function. It resolves
// reads across {state, props, setupState} in that order, and {$slots} for
// the literal key "$slots" (spec.md §4.5 step 7 — the source renderer has
// a `k === '$slots'` typo where k is undefined; the intended behavior,
// implemented here, is a literal "$slots" lookup).
type RenderContext struct {
	instance *ComponentInstance
}

// Get resolves a name across state, props, then setupState, in that order;
// "$slots" resolves to the instance's slot map. Returns ok=false (and logs
// a diagnostic) if no container has the key.
func (rc RenderContext) Get(name string) (any, bool) {
	if name == "$slots" {
		return rc.instance.Slots, true
	}
	if rc.instance.State != nil {
		if v, ok := rc.instance.State.Get(name); ok {
			return v, true
		}
	}
	if v, ok := rc.instance.Props.Get(name); ok {
		return v, true
	}
	if rc.instance.SetupState != nil {
		if v, ok := rc.instance.SetupState[name]; ok {
			return v, true
		}
	}
	reportDiagnostic("render context: unknown key %q", name)
	return nil, false
}

// Set writes a name, targeting {state, props (with warning), setupState}
// in that order. Writing an unknown name is a diagnosed no-op.
func (rc RenderContext) Set(name string, value any) {
	if rc.instance.State != nil {
		if _, ok := rc.instance.State.Peek(name); ok {
			rc.instance.State.Set(name, value)
			return
		}
	}
	if _, ok := rc.instance.Props.Peek(name); ok {
		reportDiagnostic("render context: writing to prop %q is not allowed", name)
		return
	}
	if rc.instance.SetupState != nil {
		if _, ok := rc.instance.SetupState[name]; ok {
			rc.instance.SetupState[name] = value
			return
		}
	}
	reportDiagnostic("render context: cannot write unknown key %q", name)
}

// ComponentDef is the static descriptor of a stateful component, analogous
// to a Vue "options object": a props declaration, a setup function, an
// optional legacy data() factory, a render function, and lifecycle
// callbacks.
type ComponentDef struct {
	Props PropDecls

	// Setup runs once at mount, before the render effect is created. It
	// may return either a render function (func(RenderContext) *VNode,
	// replacing Render) or a plain map recorded as instance.SetupState.
	Setup func(props reactive.ReadOnlyMap, ctx SetupContext) any

	// Data is the legacy data() factory: its result becomes the
	// instance's reactive State map.
	Data func() map[string]any

	// Render produces the component's subtree. Ignored if Setup returned
	// a render function.
	Render func(RenderContext) *VNode

	BeforeCreate func()
	Created      func()
	BeforeMount  func()
	Mounted      func()
	BeforeUpdate func()
	Updated      func()
	BeforeUnmount func()
	Unmounted     func()
}

// ComponentInstance is the per-mount bookkeeping for a component vnode. It
// is created at mount and torn down at unmount (unmount.go), at which
// point its Owner (and every effect it holds) is disposed.
type ComponentInstance struct {
	Def *ComponentDef

	Props *reactive.Map
	Attrs map[string]any
	State *reactive.Map

	SetupState map[string]any
	Slots      Slots

	SubTree   *VNode
	IsMounted bool

	mountedCallbacks []func()

	Emit func(event string, args ...any)

	owner  *reactive.Owner
	effect *reactive.Effect

	container any
	anchor    any
}

// currentInstance is the single-slot "current instance" register described
// in spec.md §4.5 step 5 / §5: set only between acquire (before Setup) and
// release (after Setup) of exactly one component, so onMounted calls during
// Setup can register against it. Safe under the single-threaded model.
var currentInstance *ComponentInstance

// OnMounted registers cb to run once, after the currently-mounting
// component's subtree has been inserted into the host, in registration
// order. Must be called during that component's Setup; calling it outside
// setup is a usage error (spec.md §7): it is reported diagnostically and
// the call is a no-op.
func OnMounted(cb func()) {
	if currentInstance == nil {
		reportDiagnostic("OnMounted called outside of setup()")
		return
	}
	currentInstance.mountedCallbacks = append(currentInstance.mountedCallbacks, cb)
}
