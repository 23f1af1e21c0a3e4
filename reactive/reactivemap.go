package reactive

// Map is a shallow-reactive string-keyed map: each key tracks its own
// subscriber set, so reading instance.Props["title"] only resubscribes
// effects that actually read "title". This backs the component runtime's
// props and state (spec.md §4.5 step 4: "shallow-reactive props"); attrs
// stay a plain map.
type Map struct {
	values map[string]any
	subs   map[string]*signalBase
}

// NewMap creates an empty reactive Map, optionally seeded with initial
// key/value pairs.
func NewMap(initial map[string]any) *Map {
	m := &Map{values: make(map[string]any, len(initial)), subs: make(map[string]*signalBase)}
	for k, v := range initial {
		m.values[k] = v
	}
	return m
}

func (m *Map) sub(key string) *signalBase {
	s, ok := m.subs[key]
	if !ok {
		s = &signalBase{id: nextID()}
		m.subs[key] = s
	}
	return s
}

// Get reads a key, tracking the current listener against that key only.
func (m *Map) Get(key string) (any, bool) {
	m.sub(key).track()
	v, ok := m.values[key]
	return v, ok
}

// Peek reads a key without tracking a dependency.
func (m *Map) Peek(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set stores a value under key, notifying subscribers of that key if the
// value actually changed (by deep equality).
func (m *Map) Set(key string, value any) {
	old, existed := m.values[key]
	m.values[key] = value
	if !existed || !defaultEquals(old, value) {
		m.sub(key).notify()
	}
}

// Delete removes key, notifying subscribers if it was present.
func (m *Map) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	m.sub(key).notify()
}

// Keys returns the map's current key set. Does not track a dependency;
// callers that need to react to key-set changes should track each key they
// care about individually.
func (m *Map) Keys() []string {
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.values) }

// ReadOnlyMap wraps a Map, exposing reads but refusing writes. Used for the
// props object handed to a component's setup function: setup must not
// mutate its own props.
type ReadOnlyMap struct {
	inner *Map
}

// ReadOnly wraps m as a read-only view.
func ReadOnly(m *Map) ReadOnlyMap { return ReadOnlyMap{inner: m} }

func (r ReadOnlyMap) Get(key string) (any, bool) { return r.inner.Get(key) }
func (r ReadOnlyMap) Peek(key string) (any, bool) { return r.inner.Peek(key) }
func (r ReadOnlyMap) Keys() []string              { return r.inner.Keys() }
