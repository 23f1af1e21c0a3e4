// Package testhost is an in-memory HostAdapter implementation used by the
// renderer's own tests and by consumers exercising component trees without
// a real host. It keeps an ordinary tree of Node values instead of talking
// to any platform, so assertions can walk it directly.
package testhost

import "fmt"

// NodeKind discriminates the kinds of node the in-memory tree can hold.
type NodeKind int

const (
	Element NodeKind = iota
	Text
	Comment
)

// Node is an in-memory stand-in for a host node: an element with attributes
// and ordered children, or a leaf text/comment node.
type Node struct {
	Kind NodeKind
	Tag  string
	Text string
	Attr map[string]any

	parent   *Node
	children []*Node
}

// NewRoot returns a fresh element node suitable as a Render container.
func NewRoot(tag string) *Node {
	return &Node{Kind: Element, Tag: tag, Attr: map[string]any{}}
}

// Children returns n's children in document order.
func (n *Node) Children() []*Node { return n.children }

// Parent returns n's parent, or nil for a root node.
func (n *Node) Parent() *Node { return n.parent }

func (n *Node) indexOf(target *Node) int {
	for i, c := range n.children {
		if c == target {
			return i
		}
	}
	return -1
}

func (n *Node) removeChild(target *Node) {
	idx := n.indexOf(target)
	if idx < 0 {
		return
	}
	n.children = append(n.children[:idx], n.children[idx+1:]...)
}

// Adapter implements renderkit.HostAdapter entirely in memory.
type Adapter struct {
	// Mutations records every Insert/Remove/SetElementText/SetText/PatchProps
	// call (node creation is not recorded), for tests that want to assert the
	// shape of a patch rather than just its end state.
	Mutations []string
}

func (a *Adapter) log(format string, args ...any) {
	a.Mutations = append(a.Mutations, fmt.Sprintf(format, args...))
}

func (a *Adapter) CreateElement(tag string) any {
	return &Node{Kind: Element, Tag: tag, Attr: map[string]any{}}
}

func (a *Adapter) CreateTextNode(text string) any {
	return &Node{Kind: Text, Text: text}
}

func (a *Adapter) CreateCommentNode(text string) any {
	return &Node{Kind: Comment, Text: text}
}

func (a *Adapter) Insert(node, parent, anchor any) {
	n := node.(*Node)
	p := parent.(*Node)
	if n.parent != nil {
		n.parent.removeChild(n)
	}
	if anchor == nil {
		p.children = append(p.children, n)
	} else {
		at := anchor.(*Node)
		idx := p.indexOf(at)
		if idx < 0 {
			p.children = append(p.children, n)
		} else {
			p.children = append(p.children, nil)
			copy(p.children[idx+1:], p.children[idx:])
			p.children[idx] = n
		}
	}
	n.parent = p
	a.log("insert %s", describe(n))
}

func (a *Adapter) Remove(node any) {
	n := node.(*Node)
	if n.parent != nil {
		n.parent.removeChild(n)
		n.parent = nil
	}
	a.log("remove %s", describe(n))
}

func (a *Adapter) SetElementText(el any, text string) {
	n := el.(*Node)
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
	if text != "" {
		n.children = []*Node{{Kind: Text, Text: text, parent: n}}
	}
	a.log("setElementText %s %q", describe(n), text)
}

func (a *Adapter) SetText(node any, text string) {
	n := node.(*Node)
	n.Text = text
	a.log("setText %s %q", describe(n), text)
}

func (a *Adapter) PatchProps(el any, name string, prev, next any) {
	n := el.(*Node)
	if next == nil {
		delete(n.Attr, name)
	} else {
		n.Attr[name] = next
	}
	a.log("patchProps %s %s=%v", describe(n), name, next)
}

func (a *Adapter) Parent(node any) any {
	n, ok := node.(*Node)
	if !ok || n.parent == nil {
		return nil
	}
	return n.parent
}

func (a *Adapter) NextSibling(node any) any {
	n, ok := node.(*Node)
	if !ok || n == nil || n.parent == nil {
		return nil
	}
	idx := n.parent.indexOf(n)
	if idx < 0 || idx+1 >= len(n.parent.children) {
		return nil
	}
	return n.parent.children[idx+1]
}

func describe(n *Node) string {
	switch n.Kind {
	case Element:
		return "<" + n.Tag + ">"
	case Text:
		return "text(" + n.Text + ")"
	default:
		return "comment(" + n.Text + ")"
	}
}
