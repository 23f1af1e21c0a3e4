package renderkit

import (
	"strings"

	"github.com/renderkit-go/renderkit/reactive"
)

// mountComponent creates an instance for v (a KindComponent or
// KindFunctional vnode), runs it through the mount half of the component
// lifecycle, and inserts its subtree into container before anchor
// (spec.md §4.5).
func (r *Renderer) mountComponent(v *VNode, container, anchor any) {
	if v.Kind == KindFunctional {
		r.mountFunctional(v, container, anchor)
		return
	}

	def := v.Def
	if def.BeforeCreate != nil {
		def.BeforeCreate()
	}

	props, attrs := resolveProps(def.Props, v.Props)

	instance := &ComponentInstance{
		Def:   def,
		Props: reactive.NewMap(props),
		Attrs: attrs,
		Slots: slotsOf(v.Children),
	}
	instance.owner = reactive.NewOwner(nil)
	instance.container = container
	instance.anchor = anchor
	instance.Emit = func(event string, args ...any) {
		emitEvent(instance.Props, event, args...)
	}
	if def.Data != nil {
		instance.State = reactive.NewMap(def.Data())
	}

	v.Instance = instance

	var renderFn func(RenderContext) *VNode
	reactive.WithOwner(instance.owner, func() {
		previous := currentInstance
		currentInstance = instance
		if def.Setup != nil {
			ctx := SetupContext{
				Attrs: func() map[string]any { return instance.Attrs },
				Emit:  instance.Emit,
				Slots: instance.Slots,
			}
			switch result := def.Setup(reactive.ReadOnly(instance.Props), ctx).(type) {
			case func(RenderContext) *VNode:
				renderFn = result
			case map[string]any:
				instance.SetupState = result
			}
		}
		currentInstance = previous

		if renderFn == nil {
			renderFn = def.Render
		}
		if def.Created != nil {
			def.Created()
		}

		r.createRenderEffect(instance, renderFn)
	})
}

// mountFunctional runs a stateless function component: no instance, no
// lifecycle, just an immediate render and a patch of its result.
func (r *Renderer) mountFunctional(v *VNode, container, anchor any) {
	result := v.Func(v.Props)
	r.patch(nil, result, container, anchor)
	v.El = result.El
	v.Rendered = result
}

// createRenderEffect wires the component's reactive render effect
// (spec.md §4.5 steps 8-9): the first run mounts the subtree and fires
// mounted hooks, every subsequent run patches against the previous subtree.
func (r *Renderer) createRenderEffect(instance *ComponentInstance, renderFn func(RenderContext) *VNode) {
	instance.effect = reactive.CreateEffect(func() reactive.Cleanup {
		if !instance.IsMounted {
			if instance.Def.BeforeMount != nil {
				instance.Def.BeforeMount()
			}
			subTree := renderFn(RenderContext{instance: instance})
			instance.SubTree = subTree
			r.patch(nil, subTree, instance.container, instance.anchor)
			instance.IsMounted = true
			for _, cb := range instance.mountedCallbacks {
				cb()
			}
			if instance.Def.Mounted != nil {
				instance.Def.Mounted()
			}
			return nil
		}

		if instance.Def.BeforeUpdate != nil {
			instance.Def.BeforeUpdate()
		}
		oldSubTree := instance.SubTree
		newSubTree := renderFn(RenderContext{instance: instance})
		instance.SubTree = newSubTree
		r.patch(oldSubTree, newSubTree, instance.container, instance.anchor)
		if instance.Def.Updated != nil {
			instance.Def.Updated()
		}
		return nil
	}, r.scheduleJob)
}

// patchComponent re-resolves props/attrs for an updated component vnode. It
// never patches the subtree directly — that happens when the render effect
// itself reruns, triggered by the Props map's own notifications when the
// loop below updates it after hasPropsChanged reports a difference
// (spec.md §4.5 step 10).
func (r *Renderer) patchComponent(old, next *VNode) {
	instance := old.Instance
	next.Instance = instance
	next.El = old.El

	newProps, newAttrs := resolveProps(instance.Def.Props, next.Props)
	instance.Attrs = newAttrs
	instance.Slots = slotsOf(next.Children)

	if hasPropsChanged(instance.Props, newProps) {
		for key, value := range newProps {
			instance.Props.Set(key, value)
		}
		for _, key := range instance.Props.Keys() {
			if _, stillPresent := newProps[key]; !stillPresent {
				instance.Props.Delete(key)
			}
		}
	}
}

// patchComponentNode is the KindComponent/KindFunctional arm of patch's
// dispatch switch.
func (r *Renderer) patchComponentNode(old, next *VNode, container, anchor any) {
	if old == nil {
		r.mountComponent(next, container, anchor)
		return
	}
	if next.Kind == KindFunctional {
		result := next.Func(next.Props)
		r.patch(old.Rendered, result, container, anchor)
		next.El = result.El
		next.Rendered = result
		return
	}
	r.patchComponent(old, next)
}

// hasPropsChanged reports whether newProps differs from the current
// reactive Props map, either in key set size or in any shared value
// (spec.md §4.5 step 10).
func hasPropsChanged(current *reactive.Map, newProps map[string]any) bool {
	if current.Len() != len(newProps) {
		return true
	}
	for key, newValue := range newProps {
		oldValue, ok := current.Peek(key)
		if !ok || !propsEqual(oldValue, newValue) {
			return true
		}
	}
	return false
}

// resolveProps splits raw vnode props into declared props (defaulted per
// decl.Default, invoking function defaults) and attrs. A key lands in props
// if it's named in decls OR starts with "on" (an event handler goes with
// props, not attrs, so emit's instance.Props.Peek lookup finds it); anything
// else goes to attrs (spec.md §4.5 step 3).
func resolveProps(decls PropDecls, raw Props) (props map[string]any, attrs map[string]any) {
	props = make(map[string]any, len(decls))
	attrs = make(map[string]any)

	for name, value := range raw {
		_, declared := decls[name]
		if declared || strings.HasPrefix(name, "on") {
			props[name] = value
		} else {
			attrs[name] = value
		}
	}
	for name, decl := range decls {
		if value, present := props[name]; present && value != nil {
			continue
		}
		if factory, ok := decl.Default.(func() any); ok {
			props[name] = factory()
		} else {
			props[name] = decl.Default
		}
	}
	return props, attrs
}

// slotsOf extracts a component vnode's slot map from its Children payload.
func slotsOf(c Children) Slots {
	if s, ok := c.(Slots); ok {
		return s
	}
	return nil
}

// emitEvent invokes the handler registered under "on"+EventName in props,
// reading props at call time so a handler passed on a later patch is always
// seen, not just the one captured at mount (spec.md §4.5 step 4: emit maps
// event "foo" to prop "onFoo"). A no-op if no such handler was passed.
func emitEvent(props *reactive.Map, event string, args ...any) {
	handlerName := "on" + capitalize(event)
	handler, ok := props.Peek(handlerName)
	if !ok {
		return
	}
	if fn, ok := handler.(func(...any)); ok {
		fn(args...)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
