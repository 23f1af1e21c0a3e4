package telemetry

import "github.com/renderkit-go/renderkit"

// InstrumentedAdapter wraps a renderkit.HostAdapter, recording a
// host_mutations_total increment for every mutating call it forwards. Reads
// (Parent, NextSibling) are not instrumented since they don't mutate state.
type InstrumentedAdapter struct {
	Inner   renderkit.HostAdapter
	Metrics *Metrics
}

// Wrap returns an InstrumentedAdapter delegating to inner and reporting
// through m. m may be nil, in which case recording is a no-op.
func Wrap(inner renderkit.HostAdapter, m *Metrics) *InstrumentedAdapter {
	return &InstrumentedAdapter{Inner: inner, Metrics: m}
}

func (a *InstrumentedAdapter) CreateElement(tag string) any {
	a.Metrics.RecordHostMutation("create_element")
	return a.Inner.CreateElement(tag)
}

func (a *InstrumentedAdapter) CreateTextNode(text string) any {
	a.Metrics.RecordHostMutation("create_text_node")
	return a.Inner.CreateTextNode(text)
}

func (a *InstrumentedAdapter) CreateCommentNode(text string) any {
	a.Metrics.RecordHostMutation("create_comment_node")
	return a.Inner.CreateCommentNode(text)
}

func (a *InstrumentedAdapter) Insert(node, parent, anchor any) {
	a.Metrics.RecordHostMutation("insert")
	a.Inner.Insert(node, parent, anchor)
}

func (a *InstrumentedAdapter) Remove(node any) {
	a.Metrics.RecordHostMutation("remove")
	a.Inner.Remove(node)
}

func (a *InstrumentedAdapter) SetElementText(el any, text string) {
	a.Metrics.RecordHostMutation("set_element_text")
	a.Inner.SetElementText(el, text)
}

func (a *InstrumentedAdapter) SetText(node any, text string) {
	a.Metrics.RecordHostMutation("set_text")
	a.Inner.SetText(node, text)
}

func (a *InstrumentedAdapter) PatchProps(el any, name string, prev, next any) {
	a.Metrics.RecordHostMutation("patch_props")
	a.Inner.PatchProps(el, name, prev, next)
}

func (a *InstrumentedAdapter) Parent(node any) any {
	return a.Inner.Parent(node)
}

func (a *InstrumentedAdapter) NextSibling(node any) any {
	return a.Inner.NextSibling(node)
}
