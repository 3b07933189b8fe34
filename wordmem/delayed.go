package wordmem

// Delayed wraps a Memory with the configured input and output buffer
// stages, giving a fixed end-to-end latency of 1 + extraIn + extraOut
// cycles. The word presented on a Tick is the one addressed exactly that
// many Ticks earlier.
//
// There is no backpressure: one access is accepted every cycle whether or
// not the read enable is asserted, matching the front-end's unconditional
// one-per-cycle admission.
type Delayed struct {
	mem *Memory

	pending []pendingAccess
	head    int
}

type pendingAccess struct {
	wordAddr   uint64
	readEnable bool
}

// NewDelayed creates a delayed view of mem with the given extra buffer
// stage counts on the address and data paths.
func NewDelayed(mem *Memory, extraInputStages, extraOutputStages uint64) *Delayed {
	latency := 1 + extraInputStages + extraOutputStages
	return &Delayed{
		mem:     mem,
		pending: make([]pendingAccess, latency),
	}
}

// Latency returns the end-to-end access latency in cycles.
func (d *Delayed) Latency() uint64 {
	return uint64(len(d.pending))
}

// Memory returns the backing word memory.
func (d *Delayed) Memory() *Memory {
	return d.mem
}

// Tick accepts this cycle's word address and read enable, and returns the
// wide word for the access issued Latency cycles earlier. Returns nil on
// cycles whose matching access had the read enable deasserted (an idle
// bus).
func (d *Delayed) Tick(wordAddr uint64, readEnable bool) []byte {
	arriving := d.pending[d.head]
	d.pending[d.head] = pendingAccess{wordAddr: wordAddr, readEnable: readEnable}
	d.head = (d.head + 1) % len(d.pending)

	if !arriving.readEnable {
		return nil
	}
	return d.mem.ReadWord(arriving.wordAddr)
}

// Reset drops all in-flight accesses.
func (d *Delayed) Reset() {
	for i := range d.pending {
		d.pending[i] = pendingAccess{}
	}
	d.head = 0
}
