package loadunit

// Context is the per-request metadata that must survive exactly MemLatency
// cycles while the word-memory access is in flight, so that it retires in
// the same cycle the wide word returns.
type Context struct {
	// Offset is the in-word byte offset of the request.
	Offset uint64

	// Size is the requested transfer size.
	Size TransferSize

	// WordAddress is the word address issued to the memory. Carried for
	// the cache seam and statistics; the selector only needs Offset.
	WordAddress uint64

	// ReadEnable records whether a real request was admitted this slot.
	// Unadmitted slots still age through the queue and produce an output;
	// consumers ignore those cycles.
	ReadEnable bool
}

// ContextQueue is a fixed-depth circular shift register of request contexts.
// The depth must equal the word memory's end-to-end latency exactly; the
// queue has no way to verify this at run time.
//
// Every cycle unconditionally pushes one entry and pops one entry. There is
// no flush or cancel: stale contexts simply age out.
type ContextQueue struct {
	entries []Context
	head    int
}

// NewContextQueue creates a queue of the given depth. Depth must be at
// least 1 (a word memory always takes at least one cycle).
func NewContextQueue(depth uint64) *ContextQueue {
	if depth < 1 {
		depth = 1
	}
	return &ContextQueue{
		entries: make([]Context, depth),
	}
}

// Depth returns the number of pipeline stages in the queue.
func (q *ContextQueue) Depth() int {
	return len(q.entries)
}

// Advance pushes the newest context and returns the context that has aged
// exactly Depth cycles, i.e. the one admitted when the now-returning memory
// access was issued.
func (q *ContextQueue) Advance(newest Context) Context {
	oldest := q.entries[q.head]
	q.entries[q.head] = newest
	q.head = (q.head + 1) % len(q.entries)
	return oldest
}

// Reset clears all in-flight contexts to the empty state.
func (q *ContextQueue) Reset() {
	for i := range q.entries {
		q.entries[i] = Context{}
	}
	q.head = 0
}
