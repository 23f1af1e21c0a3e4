// Package renderkit is a platform-agnostic reactive virtual-DOM renderer.
//
// It reconciles a tree of VNode descriptors against a previously rendered
// tree of host-backed nodes and issues the minimal sequence of host
// mutations needed to bring the host tree in line. The renderer never talks
// to a concrete host (a browser DOM, a terminal, a native widget tree)
// directly: it is bound to one via a HostAdapter (see adapter.go), and to a
// reactive-primitives capability (see the reactive package) that re-invokes
// a callback whenever its tracked reads change.
//
// # Core pieces
//
// VNode is the immutable descriptor produced by user code. Renderer is the
// entry point returned by CreateRenderer, exposing Render; OnMounted is a
// package-level function called from a component's setup.
// ComponentDef describes a stateful component: its props declaration,
// setup function, optional legacy data() factory, render function, and
// lifecycle callbacks.
//
// # Reconciliation
//
// patch (patch.go) is the dispatcher that routes an (old, new) VNode pair
// to the element, text/comment, fragment, or component path. Keyed child
// lists are reconciled with the fast-diff algorithm in children.go, which
// trims common prefix/suffix runs and resolves the remaining middle with a
// longest-increasing-subsequence computation (lis.go) so that the number of
// host moves issued is minimal for the chosen key matching.
package renderkit

// Kind discriminates the variants a VNode can be. Using a tagged sum instead
// of stringly/typeof dispatch means the patch dispatcher is a plain switch.
type Kind uint8

const (
	// KindElement is a host-tag element, e.g. "div", "button".
	KindElement Kind = iota
	// KindText is a plain text node.
	KindText
	// KindComment is a host comment node.
	KindComment
	// KindFragment groups children without a host node of its own.
	KindFragment
	// KindComponent is a stateful component instance (ComponentDef-backed).
	KindComponent
	// KindFunctional is a stateless function component (just a render func).
	KindFunctional
)

func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComment:
		return "Comment"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindFunctional:
		return "Functional"
	default:
		return "Unknown"
	}
}

// Props maps attribute/prop names to values. Names beginning with "on"
// denote event handlers; everything else is a host attribute or a
// component input, depending on the node's Kind.
type Props map[string]any

// Children is the children payload of a VNode: nil, a string (text
// content), a slice of child VNodes, or — for component vnodes — a Slots
// map. Callers build it as a plain string, an ordinary slice literal, or a
// Slots map; the renderer type-switches on it at patch time.
type Children any

// Slots maps a slot name to a thunk returning the slot's VNode. It is the
// Children payload of a component vnode.
type Slots map[string]func() *VNode

// VNode is an immutable-by-convention descriptor of an intended host
// subtree. The renderer mutates El, Instance and Rendered as bookkeeping
// once the node is mounted; everything else is set once by the caller.
type VNode struct {
	Kind Kind

	// Tag is the host tag name when Kind == KindElement.
	Tag string

	Props    Props
	Children Children

	// Key is the identity token used by the keyed children fast-diff.
	// Equality is strict; within one parent no two siblings may share a
	// non-nil key.
	Key any

	// Text is the textual payload for KindText / KindComment nodes.
	Text string

	// Def is the component descriptor for KindComponent nodes.
	Def *ComponentDef

	// Func is the render function for KindFunctional nodes.
	Func func(props Props) *VNode

	// El is the back-reference to the host node once mounted, nil before.
	El any

	// Instance is the back-reference to the component instance for
	// KindComponent nodes, nil for everything else and nil before mount.
	Instance *ComponentInstance

	// Rendered is the previous render output of a KindFunctional node,
	// since functional components keep no instance to hang it off of.
	Rendered *VNode
}

// Text builds a KindText vnode.
func Text(s string) *VNode {
	return &VNode{Kind: KindText, Text: s}
}

// Comment builds a KindComment vnode.
func Comment(s string) *VNode {
	return &VNode{Kind: KindComment, Text: s}
}

// Fragment builds a KindFragment vnode grouping the given children.
func Fragment(children ...*VNode) *VNode {
	return &VNode{Kind: KindFragment, Children: children}
}

// H builds a KindElement vnode, in the spirit of hyperscript factories.
// children may be a string (sets text content) or []* VNode.
func H(tag string, props Props, children Children) *VNode {
	return &VNode{Kind: KindElement, Tag: tag, Props: props, Children: children}
}

// Component builds a KindComponent vnode for the given descriptor.
func Component(def *ComponentDef, props Props, children Children) *VNode {
	return &VNode{Kind: KindComponent, Def: def, Props: props, Children: children}
}

// Functional builds a KindFunctional vnode wrapping a stateless render func.
func Functional(fn func(props Props) *VNode, props Props) *VNode {
	return &VNode{Kind: KindFunctional, Func: fn, Props: props}
}

// sameType reports whether old and next may be patched in place rather than
// unmounted/remounted. Per the dispatcher contract, a type change at the
// same position always forces unmount+mount.
func sameType(old, next *VNode) bool {
	if old.Kind != next.Kind {
		return false
	}
	switch old.Kind {
	case KindElement:
		return old.Tag == next.Tag
	case KindComponent:
		return old.Def == next.Def
	case KindFunctional:
		return sameFuncPointer(old.Func, next.Func)
	default:
		return true
	}
}

// childSlice normalizes a Children payload into a slice, or nil if it is
// not a sequence (nil, a string, or a Slots map).
func childSlice(c Children) []*VNode {
	if c == nil {
		return nil
	}
	if s, ok := c.([]*VNode); ok {
		return s
	}
	return nil
}

// childText reports whether c is textual (primitive) content and, if so,
// returns it.
func childText(c Children) (string, bool) {
	if c == nil {
		return "", false
	}
	if s, ok := c.(string); ok {
		return s, true
	}
	return "", false
}

func isSequence(c Children) bool {
	_, ok := c.([]*VNode)
	return ok
}
