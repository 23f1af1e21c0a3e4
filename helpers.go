package renderkit

import "reflect"

// propsEqual compares two prop values. Most host attributes are comparable
// scalars; reflect.DeepEqual is the safe fallback for everything else
// (slices, maps, structs, funcs) since comparing uncomparable dynamic types
// with == panics. DeepEqual reports two non-nil funcs as unequal, so an
// event-handler prop always counts as changed.
func propsEqual(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	default:
		return reflect.DeepEqual(a, b)
	}
}

// firstHostNode returns the first real host node contained in v's subtree,
// descending through fragments and components which have none of their
// own. Returns nil if v's subtree currently mounts no host nodes.
func firstHostNode(v *VNode) any {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case KindFragment:
		for _, child := range childSlice(v.Children) {
			if n := firstHostNode(child); n != nil {
				return n
			}
		}
		return nil
	case KindComponent:
		if v.Instance != nil {
			return firstHostNode(v.Instance.SubTree)
		}
		return nil
	case KindFunctional:
		return firstHostNode(v.Rendered)
	default:
		return v.El
	}
}

// lastHostNode returns the last real host node contained in v's subtree,
// the mirror of firstHostNode. patch uses it on a vnode being replaced by one
// of a different type, to find the host node that follows it as the anchor.
func lastHostNode(v *VNode) any {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case KindFragment:
		children := childSlice(v.Children)
		for i := len(children) - 1; i >= 0; i-- {
			if n := lastHostNode(children[i]); n != nil {
				return n
			}
		}
		return nil
	case KindComponent:
		if v.Instance != nil {
			return lastHostNode(v.Instance.SubTree)
		}
		return nil
	case KindFunctional:
		return lastHostNode(v.Rendered)
	default:
		return v.El
	}
}

// sameFuncPointer compares two function values by entry point. Functions
// are not comparable in Go; this is the idiomatic workaround used when a
// functional component's identity must survive across renders.
func sameFuncPointer(a, b func(props Props) *VNode) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

// key returns the node's reconciliation key, nil-safe so callers comparing
// two list positions never need to check for a nil *VNode themselves. A nil
// key means "no key" (siblings matched positionally).
func (v *VNode) key() any {
	if v == nil {
		return nil
	}
	return v.Key
}
