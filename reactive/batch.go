package reactive

var (
	batchDepth     int
	pendingUpdates []Listener
)

// Batch groups multiple signal writes into a single notification phase:
// every write inside fn is collected, and affected listeners are notified
// once — deduplicated by ID — after fn returns. Batches nest; only the
// outermost one flushes.
func Batch(fn func()) {
	batchDepth++
	defer func() {
		batchDepth--
		if batchDepth == 0 {
			flushPending()
		}
	}()
	fn()
}

func flushPending() {
	if len(pendingUpdates) == 0 {
		return
	}
	updates := pendingUpdates
	pendingUpdates = nil

	seen := make(map[uint64]bool, len(updates))
	for _, l := range updates {
		id := l.ID()
		if seen[id] {
			continue
		}
		seen[id] = true
		l.MarkDirty()
	}
}
