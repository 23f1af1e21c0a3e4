package renderkit

// HostAdapter is the platform binding the renderer consumes. It never
// constructs or inspects host nodes itself; every mutation goes through
// these methods so the same reconciler drives a browser DOM, a terminal
// screen, or an in-memory test tree (see package testhost) without change.
type HostAdapter interface {
	// CreateElement creates a new host element for the given tag.
	CreateElement(tag string) any
	// CreateTextNode creates a new host text node.
	CreateTextNode(text string) any
	// CreateCommentNode creates a new host comment node.
	CreateCommentNode(text string) any

	// Insert inserts node into parent, before anchor (appended if anchor
	// is nil).
	Insert(node, parent, anchor any)
	// Remove detaches node from its parent host tree.
	Remove(node any)

	// SetElementText replaces all of el's children with a single text node
	// carrying the given content.
	SetElementText(el any, text string)
	// SetText updates a standalone text/comment node's content.
	SetText(node any, text string)

	// PatchProps applies a single attribute/event/property change. A nil
	// next value means "remove this prop"; a nil prev value means "this
	// prop did not previously exist".
	PatchProps(el any, name string, prev, next any)

	// Parent returns node's current host parent, or nil if it has none.
	// The renderer itself does not call it.
	Parent(node any) any
	// NextSibling returns node's next host sibling, or nil. The dispatcher
	// uses it to find the anchor for a node that replaces one of another type.
	NextSibling(node any) any
}

// FrameScheduler is an optional extension a HostAdapter may also implement.
// nextFrame is consumed by transition-style callers that want to defer work
// to the next paint; the core renderer itself never requires it.
type FrameScheduler interface {
	NextFrame(cb func())
}
