package devserver

import (
	"fmt"

	"github.com/renderkit-go/renderkit"
	"github.com/renderkit-go/renderkit/internal/snapshot"
)

// RecordingAdapter wraps a renderkit.HostAdapter, appending every mutating
// call to an in-memory buffer (Mutations) and, if attached to a Server,
// broadcasting it live to connected devtools clients.
type RecordingAdapter struct {
	Inner     renderkit.HostAdapter
	Server    *Server
	Mutations []snapshot.Mutation
}

func (a *RecordingAdapter) record(op, detail string) {
	m := snapshot.Mutation{Op: op, Detail: detail}
	a.Mutations = append(a.Mutations, m)
	if a.Server != nil {
		a.Server.BroadcastMutation(m)
	}
}

// Trace packages the mutations recorded so far into a snapshot.Trace.
func (a *RecordingAdapter) Trace() snapshot.Trace {
	return snapshot.Trace{Mutations: a.Mutations}
}

func (a *RecordingAdapter) CreateElement(tag string) any {
	a.record("create_element", tag)
	return a.Inner.CreateElement(tag)
}

func (a *RecordingAdapter) CreateTextNode(text string) any {
	a.record("create_text_node", text)
	return a.Inner.CreateTextNode(text)
}

func (a *RecordingAdapter) CreateCommentNode(text string) any {
	a.record("create_comment_node", text)
	return a.Inner.CreateCommentNode(text)
}

func (a *RecordingAdapter) Insert(node, parent, anchor any) {
	a.record("insert", fmt.Sprintf("%v -> %v before %v", node, parent, anchor))
	a.Inner.Insert(node, parent, anchor)
}

func (a *RecordingAdapter) Remove(node any) {
	a.record("remove", fmt.Sprintf("%v", node))
	a.Inner.Remove(node)
}

func (a *RecordingAdapter) SetElementText(el any, text string) {
	a.record("set_element_text", text)
	a.Inner.SetElementText(el, text)
}

func (a *RecordingAdapter) SetText(node any, text string) {
	a.record("set_text", text)
	a.Inner.SetText(node, text)
}

func (a *RecordingAdapter) PatchProps(el any, name string, prev, next any) {
	a.record("patch_props", fmt.Sprintf("%s: %v -> %v", name, prev, next))
	a.Inner.PatchProps(el, name, prev, next)
}

func (a *RecordingAdapter) Parent(node any) any {
	return a.Inner.Parent(node)
}

func (a *RecordingAdapter) NextSibling(node any) any {
	return a.Inner.NextSibling(node)
}
