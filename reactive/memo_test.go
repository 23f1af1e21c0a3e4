package reactive

import "testing"

func TestComputedRecomputesOnlyWhenStale(t *testing.T) {
	a := NewSignal(2)
	computes := 0
	doubled := NewComputed(func() int {
		computes++
		return a.Get() * 2
	})

	if doubled.Get() != 4 || computes != 1 {
		t.Fatalf("expected first Get to compute once, got value=%d computes=%d", doubled.Get(), computes)
	}
	if doubled.Get() != 4 || computes != 1 {
		t.Fatalf("expected cached read to skip recompute, computes=%d", computes)
	}

	a.Set(5)
	if computes != 1 {
		t.Fatalf("computed should recompute lazily, not on write, computes=%d", computes)
	}
	if doubled.Get() != 10 || computes != 2 {
		t.Fatalf("expected recompute after dependency changed, got value=%d computes=%d", doubled.Get(), computes)
	}
}

func TestComputedAsEffectDependency(t *testing.T) {
	a := NewSignal(1)
	doubled := NewComputed(func() int { return a.Get() * 2 })
	runs := 0

	CreateEffect(func() Cleanup {
		doubled.Get()
		runs++
		return nil
	}, nil)

	a.Set(2)
	if runs != 2 {
		t.Fatalf("expected effect to rerun when its computed's source changed, got %d", runs)
	}
}
