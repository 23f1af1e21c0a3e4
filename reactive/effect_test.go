package reactive

import "testing"

func TestEffectReRunsOnDependencyChange(t *testing.T) {
	a := NewSignal(1)
	b := NewSignal(10)
	results := []int{}

	CreateEffect(func() Cleanup {
		results = append(results, a.Get()+b.Get())
		return nil
	}, nil)

	a.Set(2)
	b.Set(20)

	if len(results) != 3 {
		t.Fatalf("expected 3 runs, got %d: %v", len(results), results)
	}
	if results[0] != 11 || results[1] != 12 || results[2] != 22 {
		t.Fatalf("unexpected results: %v", results)
	}
}

func TestEffectCleanupRunsBeforeRerunAndOnDispose(t *testing.T) {
	a := NewSignal(0)
	cleanups := 0

	e := CreateEffect(func() Cleanup {
		a.Get()
		return func() { cleanups++ }
	}, nil)

	a.Set(1)
	if cleanups != 1 {
		t.Fatalf("expected 1 cleanup before rerun, got %d", cleanups)
	}

	e.Dispose()
	if cleanups != 2 {
		t.Fatalf("expected cleanup on dispose, got %d", cleanups)
	}

	a.Set(2)
	if cleanups != 2 {
		t.Fatalf("disposed effect should not rerun or cleanup again, got %d", cleanups)
	}
}

func TestEffectSchedulerCoalescesMultipleWrites(t *testing.T) {
	a := NewSignal(1)
	b := NewSignal(2)
	var pendingRun func()
	runs := 0

	scheduler := func(run func()) { pendingRun = run }

	CreateEffect(func() Cleanup {
		a.Get()
		b.Get()
		runs++
		return nil
	}, scheduler)

	if runs != 1 {
		t.Fatalf("expected immediate first run, got %d", runs)
	}

	Batch(func() {
		a.Set(10)
		b.Set(20)
	})
	if runs != 1 {
		t.Fatalf("scheduler should have intercepted the rerun, got %d runs", runs)
	}
	if pendingRun == nil {
		t.Fatal("expected scheduler to capture a pending run")
	}
	pendingRun()
	if runs != 2 {
		t.Fatalf("expected exactly one coalesced rerun, got %d", runs)
	}
}

func TestOwnerDisposeTearsDownEffects(t *testing.T) {
	owner := NewOwner(nil)
	a := NewSignal(0)
	runs := 0

	WithOwner(owner, func() {
		CreateEffect(func() Cleanup {
			a.Get()
			runs++
			return nil
		}, nil)
	})

	owner.Dispose()
	a.Set(1)
	if runs != 1 {
		t.Fatalf("effect should not rerun after its owner is disposed, got %d runs", runs)
	}
}
