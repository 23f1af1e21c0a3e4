package reactive

// idCounter is the source of unique IDs for signals, computeds, and
// effects. Monotonically increasing, never reused.
var idCounter uint64

func nextID() uint64 {
	idCounter++
	return idCounter
}
