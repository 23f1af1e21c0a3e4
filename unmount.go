package renderkit

// unmount tears v's subtree down: components run BeforeUnmount, recurse into
// their subtree, dispose their reactive owner (stopping the render effect
// and every other effect it owns), then run Unmounted;
// fragments have no host node and just recurse into their children;
// elements/text/comments recurse into their children and then remove their
// own host node, clearing every prop they carried (spec.md §4.6).
func (r *Renderer) unmount(v *VNode) {
	if v == nil {
		return
	}

	switch v.Kind {
	case KindComponent:
		r.unmountComponent(v)

	case KindFunctional:
		r.unmount(v.Rendered)

	case KindFragment:
		for _, child := range childSlice(v.Children) {
			r.unmount(child)
		}

	default: // KindElement, KindText, KindComment
		if children := childSlice(v.Children); children != nil {
			for _, child := range children {
				r.unmount(child)
			}
		}
		if v.Kind == KindElement {
			for name, value := range v.Props {
				r.adapter.PatchProps(v.El, name, value, nil)
			}
		}
		if v.El != nil {
			r.adapter.Remove(v.El)
		}
	}
}

func (r *Renderer) unmountComponent(v *VNode) {
	instance := v.Instance
	if instance == nil {
		return
	}
	if instance.Def.BeforeUnmount != nil {
		instance.Def.BeforeUnmount()
	}
	r.unmount(instance.SubTree)
	if instance.owner != nil {
		instance.owner.Dispose()
	}
	if instance.Def.Unmounted != nil {
		instance.Def.Unmounted()
	}
}
