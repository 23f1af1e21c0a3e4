package renderkit

// patch is the dispatcher: it routes an (old, new) vnode pair to the
// mount/patch/unmount path appropriate to new's Kind (spec.md §4.1).
// anchor is the host node before which newly inserted nodes must go (nil
// means append).
func (r *Renderer) patch(old, next *VNode, container, anchor any) {
	if next == nil {
		if old != nil {
			r.unmount(old)
		}
		return
	}

	if old != nil && !sameType(old, next) {
		anchor = r.adapter.NextSibling(lastHostNode(old))
		r.unmount(old)
		old = nil
	}

	switch next.Kind {
	case KindElement:
		if old == nil {
			r.mountElement(next, container, anchor)
		} else {
			r.patchElement(old, next)
		}
	case KindText:
		r.patchTextLike(old, next, container, anchor, r.adapter.CreateTextNode)
	case KindComment:
		r.patchTextLike(old, next, container, anchor, r.adapter.CreateCommentNode)
	case KindFragment:
		r.patchFragment(old, next, container, anchor)
	case KindComponent, KindFunctional:
		r.patchComponentNode(old, next, container, anchor)
	}
}

// patchTextLike handles Text and Comment nodes identically, differing only
// in which adapter constructor creates the host node.
func (r *Renderer) patchTextLike(old, next *VNode, container, anchor any, create func(string) any) {
	if old == nil {
		el := create(next.Text)
		next.El = el
		r.adapter.Insert(el, container, anchor)
		return
	}
	next.El = old.El
	if old.Text != next.Text {
		r.adapter.SetText(next.El, next.Text)
	}
}

// mountElement creates a host element, mounts its children (or sets text
// content for primitive children), applies its initial props, and inserts
// it into container before anchor (spec.md §4.2 Mount).
func (r *Renderer) mountElement(v *VNode, container, anchor any) {
	el := r.adapter.CreateElement(v.Tag)
	v.El = el

	if text, ok := childText(v.Children); ok {
		r.adapter.SetElementText(el, text)
	} else if children := childSlice(v.Children); children != nil {
		for _, child := range children {
			r.patch(nil, child, el, nil)
		}
	}

	for name, value := range v.Props {
		r.adapter.PatchProps(el, name, nil, value)
	}

	r.adapter.Insert(el, container, anchor)
}

// patchElement carries over the host node, diffs props, then reconciles
// children (spec.md §4.2 Patch).
func (r *Renderer) patchElement(old, next *VNode) {
	el := old.El
	next.El = el

	for name, newValue := range next.Props {
		oldValue, existed := old.Props[name]
		if !existed || !propsEqual(oldValue, newValue) {
			r.adapter.PatchProps(el, name, oldValue, newValue)
		}
	}
	for name, oldValue := range old.Props {
		if _, exists := next.Props[name]; !exists {
			r.adapter.PatchProps(el, name, oldValue, nil)
		}
	}

	r.patchChildren(old, next, el, nil)
}

// patchFragment has no host node of its own: mounting patches each child
// straight into container; patching delegates to the children reconciler
// with container as the parent (spec.md §4.1).
func (r *Renderer) patchFragment(old, next *VNode, container, anchor any) {
	if old == nil {
		for _, child := range childSlice(next.Children) {
			r.patch(nil, child, container, anchor)
		}
		return
	}
	r.patchChildren(old, next, container, anchor)
}

