package renderkit

import (
	"testing"

	"github.com/renderkit-go/renderkit/reactive"
	"github.com/renderkit-go/renderkit/testhost"
)

func TestComponentMountRunsLifecycleInOrder(t *testing.T) {
	var order []string
	def := &ComponentDef{
		BeforeCreate: func() { order = append(order, "beforeCreate") },
		Created:      func() { order = append(order, "created") },
		BeforeMount:  func() { order = append(order, "beforeMount") },
		Mounted:      func() { order = append(order, "mounted") },
		Render: func(RenderContext) *VNode {
			order = append(order, "render")
			return Text("hi")
		},
	}

	adapter := &testhost.Adapter{}
	r := CreateRenderer(adapter)
	root := testhost.NewRoot("root")
	r.Render(Component(def, nil, nil), root)

	want := []string{"beforeCreate", "created", "beforeMount", "render", "mounted"}
	if !equalStrings(order, want) {
		t.Fatalf("got %v, want %v", order, want)
	}
}

func TestComponentRerendersOnSignalWrite(t *testing.T) {
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
	}

	adapter := &testhost.Adapter{}
	r := CreateRenderer(adapter)
	root := testhost.NewRoot("root")
	r.Render(Component(def, nil, nil), root)
	if renders != 1 {
		t.Fatalf("expected 1 render after mount, got %d", renders)
	}

	count.Set(1)
	if renders != 2 {
		t.Fatalf("expected a rerender after the dependency changed, got %d renders", renders)
	}

	count.Set(1)
	if renders != 2 {
		t.Fatalf("expected no rerender for an unchanged value, got %d renders", renders)
	}
}

func TestOnMountedFiresAfterSubtreeInserted(t *testing.T) {
	var sawHostNode bool
	var root *testhost.Node
	def := &ComponentDef{
		Setup: func(props reactive.ReadOnlyMap, ctx SetupContext) any {
			OnMounted(func() { sawHostNode = len(root.Children()) == 1 })
			return nil
		},
		Render: func(RenderContext) *VNode { return Text("hi") },
	}

	adapter := &testhost.Adapter{}
	r := CreateRenderer(adapter)
	root = testhost.NewRoot("root")
	r.Render(Component(def, nil, nil), root)

	if !sawHostNode {
		t.Fatal("expected OnMounted callback to have run after the subtree was inserted")
	}
}

func TestOnMountedOutsideSetupIsDiagnosedNoOp(t *testing.T) {
	called := false
	OnMounted(func() { called = true })
	if called {
		t.Fatal("OnMounted called outside setup must be a no-op")
	}
}

func TestPatchComponentUpdatesPropsWithoutUnmounting(t *testing.T) {
	var seen []string
	def := &ComponentDef{
		Props: PropDecls{"label": {}},
		Render: func(rc RenderContext) *VNode {
			v, _ := rc.Get("label")
			seen = append(seen, v.(string))
			return Text(v.(string))
		},
	}

	adapter := &testhost.Adapter{}
	r := CreateRenderer(adapter)
	root := testhost.NewRoot("root")

	r.Render(Component(def, Props{"label": "one"}, nil), root)
	mounted := root.Children()[0]
	r.Render(Component(def, Props{"label": "two"}, nil), root)

	if !equalStrings(seen, []string{"one", "two"}) {
		t.Fatalf("got %v", seen)
	}
	if root.Children()[0] != mounted {
		t.Fatal("expected the mounted host node to be patched in place, not unmounted and recreated")
	}
}

func TestEmitReadsHandlerFromLatestProps(t *testing.T) {
	var instanceEmit func(event string, args ...any)
	def := &ComponentDef{
		Setup: func(props reactive.ReadOnlyMap, ctx SetupContext) any {
			instanceEmit = ctx.Emit
			return func(RenderContext) *VNode { return Text("x") }
		},
	}

	adapter := &testhost.Adapter{}
	r := CreateRenderer(adapter)
	root := testhost.NewRoot("root")

	firstCalled, secondCalled := false, false
	r.Render(Component(def, Props{"onClick": func(...any) { firstCalled = true }}, nil), root)
	r.Render(Component(def, Props{"onClick": func(...any) { secondCalled = true }}, nil), root)

	instanceEmit("click")
	if firstCalled {
		t.Fatal("emit invoked the handler captured at mount instead of the updated one")
	}
	if !secondCalled {
		t.Fatal("emit did not invoke the handler passed on the latest patch")
	}
}

func TestUndeclaredOnPrefixedHandlerRoutesToProps(t *testing.T) {
	var gotAttrs map[string]any
	def := &ComponentDef{
		Setup: func(props reactive.ReadOnlyMap, ctx SetupContext) any {
			gotAttrs = ctx.Attrs()
			_, hasHandler := props.Get("onSave")
			if !hasHandler {
				t.Fatal("expected undeclared onSave prop to be resolved into props, not attrs")
			}
			return func(RenderContext) *VNode { return Text("x") }
		},
	}

	adapter := &testhost.Adapter{}
	r := CreateRenderer(adapter)
	root := testhost.NewRoot("root")
	r.Render(Component(def, Props{"onSave": func(...any) {}, "title": "t"}, nil), root)

	if _, ok := gotAttrs["onSave"]; ok {
		t.Fatal("onSave handler leaked into attrs")
	}
	if _, ok := gotAttrs["title"]; !ok {
		t.Fatal("expected undeclared non-handler prop to land in attrs")
	}
}
