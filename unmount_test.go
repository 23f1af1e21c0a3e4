package renderkit

import (
	"testing"

	"github.com/renderkit-go/renderkit/reactive"
	"github.com/renderkit-go/renderkit/testhost"
)

func TestUnmountElementRemovesHostNodeAndRecursesIntoChildren(t *testing.T) {
	adapter := &testhost.Adapter{}
	r := CreateRenderer(adapter)
	root := testhost.NewRoot("root")

	r.Render(H("div", nil, []*VNode{H("span", nil, "hi")}), root)
	if len(root.Children()) != 1 {
		t.Fatalf("expected one mounted child, got %d", len(root.Children()))
	}

	r.Render(nil, root)
	if len(root.Children()) != 0 {
		t.Fatalf("expected the tree to be fully unmounted, got %d children", len(root.Children()))
	}
}

func TestUnmountComponentDisposesOwnerAndStopsRerenders(t *testing.T) {
	count := reactive.NewSignal(0)
	renders := 0
	def := &ComponentDef{
		Setup: func(props reactive.ReadOnlyMap, ctx SetupContext) any {
			return func(RenderContext) *VNode {
				renders++
				_ = count.Get()
				return Text("x")
			}
		},
		Unmounted: func() {},
	}

	adapter := &testhost.Adapter{}
	r := CreateRenderer(adapter)
	root := testhost.NewRoot("root")
	r.Render(Component(def, nil, nil), root)
	if renders != 1 {
		t.Fatalf("expected 1 render, got %d", renders)
	}

	r.Render(nil, root)

	count.Set(1)
	if renders != 1 {
		t.Fatalf("expected no rerender after unmount, got %d renders", renders)
	}
}

func TestUnmountRunsBeforeUnmountThenUnmounted(t *testing.T) {
	var order []string
	def := &ComponentDef{
		BeforeUnmount: func() { order = append(order, "beforeUnmount") },
		Unmounted:     func() { order = append(order, "unmounted") },
		Render:        func(RenderContext) *VNode { return Text("x") },
	}

	adapter := &testhost.Adapter{}
	r := CreateRenderer(adapter)
	root := testhost.NewRoot("root")
	r.Render(Component(def, nil, nil), root)
	r.Render(nil, root)

	if !equalStrings(order, []string{"beforeUnmount", "unmounted"}) {
		t.Fatalf("got %v", order)
	}
}

func TestUnmountFragmentRecursesWithoutTouchingItsOwnHostNode(t *testing.T) {
	adapter := &testhost.Adapter{}
	r := CreateRenderer(adapter)
	root := testhost.NewRoot("root")

	r.Render(Fragment(H("span", nil, "a"), H("span", nil, "b")), root)
	if len(root.Children()) != 2 {
		t.Fatalf("expected 2 spans mounted, got %d", len(root.Children()))
	}

	r.Render(nil, root)
	if len(root.Children()) != 0 {
		t.Fatalf("expected both spans unmounted, got %d", len(root.Children()))
	}
}
