package reactive

import "testing"

func TestSignalGetSet(t *testing.T) {
	count := NewSignal(0)
	if count.Get() != 0 {
		t.Fatalf("expected 0, got %d", count.Get())
	}
	count.Set(5)
	if count.Get() != 5 {
		t.Fatalf("expected 5, got %d", count.Get())
	}
	count.Update(func(n int) int { return n * 2 })
	if count.Get() != 10 {
		t.Fatalf("expected 10, got %d", count.Get())
	}
}

func TestSignalSetSameValueDoesNotNotify(t *testing.T) {
	count := NewSignal(5)
	runs := 0
	CreateEffect(func() Cleanup {
		count.Get()
		runs++
		return nil
	}, nil)
	if runs != 1 {
		t.Fatalf("expected 1 run after creation, got %d", runs)
	}
	count.Set(5)
	if runs != 1 {
		t.Fatalf("expected no rerun on unchanged value, got %d runs", runs)
	}
	count.Set(6)
	if runs != 2 {
		t.Fatalf("expected rerun on changed value, got %d runs", runs)
	}
}

func TestSignalPeekDoesNotTrack(t *testing.T) {
	count := NewSignal(42)
	runs := 0
	CreateEffect(func() Cleanup {
		count.Peek()
		runs++
		return nil
	}, nil)
	count.Set(100)
	if runs != 1 {
		t.Fatalf("Peek should not create a dependency, got %d runs", runs)
	}
}

func TestShallowSignalAlwaysNotifies(t *testing.T) {
	type point struct{ X, Y int }
	p := ShallowSignal(point{1, 2})
	runs := 0
	CreateEffect(func() Cleanup {
		p.Get()
		runs++
		return nil
	}, nil)
	p.Set(point{1, 2}) // same value, shallow signal still notifies
	if runs != 2 {
		t.Fatalf("expected shallow signal to notify on identical value, got %d runs", runs)
	}
}
