package reactive

import "testing"

func TestMapGetSetNotifiesOnlyAffectedKey(t *testing.T) {
	m := NewMap(map[string]any{"title": "hi", "count": 1})
	titleRuns, countRuns := 0, 0

	CreateEffect(func() Cleanup {
		m.Get("title")
		titleRuns++
		return nil
	}, nil)
	CreateEffect(func() Cleanup {
		m.Get("count")
		countRuns++
		return nil
	}, nil)

	m.Set("title", "bye")
	if titleRuns != 2 {
		t.Fatalf("expected title effect to rerun, got %d", titleRuns)
	}
	if countRuns != 1 {
		t.Fatalf("count effect should be unaffected by title write, got %d", countRuns)
	}
}

func TestMapDelete(t *testing.T) {
	m := NewMap(map[string]any{"a": 1})
	if _, ok := m.Peek("a"); !ok {
		t.Fatal("expected key a to be present")
	}
	m.Delete("a")
	if _, ok := m.Peek("a"); ok {
		t.Fatal("expected key a to be removed")
	}
}

func TestReadOnlyMapExposesReadsOnly(t *testing.T) {
	m := NewMap(map[string]any{"x": 1})
	ro := ReadOnly(m)
	v, ok := ro.Get("x")
	if !ok || v.(int) != 1 {
		t.Fatalf("expected read-only view to read through, got %v", v)
	}
}
