package loadunit

// CycleInput is the request-side signal bundle sampled at one clock edge.
type CycleInput struct {
	// ByteAddress is the W-bit byte address of the request. Bits above the
	// configured address width are ignored.
	ByteAddress uint64

	// Size is the requested transfer size.
	Size TransferSize

	// ReadEnable indicates a real request is being admitted this cycle.
	ReadEnable bool

	// Reset is the synchronous reset. It forces the output register (when
	// enabled) to zero on the next cycle; it does not drain the pipeline.
	Reset bool
}

// CycleOutput is the signal bundle driven during one clock cycle.
type CycleOutput struct {
	// WordAddress is the word-indexed address sent to the memory
	// collaborator, driven the same cycle the request is admitted.
	WordAddress uint64

	// MemReadEnable is the read enable passed through to the memory.
	MemReadEnable bool

	// Result is the right-justified, zero-extended load result for the
	// request admitted MemLatency (+1 with the output register) cycles
	// earlier. There is no valid bit: on cycles where no request was
	// admitted that far back, Result is meaningless and the consumer must
	// know to ignore it.
	Result uint32

	// CacheHit and CacheData are the cache seam's probe for the retiring
	// request. With the default stub, CacheHit is always false and
	// CacheData is the fixed placeholder.
	CacheHit  bool
	CacheData uint32
}

// Statistics holds load-unit performance counters.
type Statistics struct {
	// Cycles is the total number of cycles ticked.
	Cycles uint64

	// ReadsAdmitted is the number of cycles a request was admitted.
	ReadsAdmitted uint64

	// ReadsRetired is the number of admitted requests whose result has
	// been produced.
	ReadsRetired uint64

	// CacheLookups and CacheHits count cache-seam probes for retiring
	// requests.
	CacheLookups uint64
	CacheHits    uint64
}

// LoadUnitOption is a functional option for configuring the LoadUnit.
type LoadUnitOption func(*LoadUnit)

// WithCache replaces the always-miss cache stub with another WordCache
// implementation.
func WithCache(cache WordCache) LoadUnitOption {
	return func(u *LoadUnit) {
		u.cache = cache
	}
}

// LoadUnit is the byte-granular load front-end. It accepts one request per
// cycle (initiation interval 1, no backpressure, no cancellation), drives
// the word memory the same cycle, and produces the extracted result in the
// cycle the wide word returns.
type LoadUnit struct {
	config *Config

	// Derived geometry, fixed at construction.
	offsetBits uint
	addrMask   uint64

	queue *ContextQueue
	cache WordCache

	// Output register state (only used when config.OutputRegister).
	resultReg uint32
	hitReg    bool
	dataReg   uint32

	stats Statistics
}

// NewLoadUnit creates a LoadUnit for the given configuration.
func NewLoadUnit(config *Config, opts ...LoadUnitOption) (*LoadUnit, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	u := &LoadUnit{
		config:     config.Clone(),
		offsetBits: config.OffsetBits(),
		addrMask:   addressMask(config.ByteAddressBits),
		queue:      NewContextQueue(config.MemLatency()),
		cache:      newMissCache(config.CachePlaceholder),
		dataReg:    config.CachePlaceholder,
	}

	for _, opt := range opts {
		opt(u)
	}

	return u, nil
}

// addressMask returns a mask of the low bits wide.
func addressMask(bits uint) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return (1 << bits) - 1
}

// Config returns the unit's configuration.
func (u *LoadUnit) Config() *Config {
	return u.config.Clone()
}

// Stats returns the unit's performance counters.
func (u *LoadUnit) Stats() Statistics {
	return u.stats
}

// Translate returns the admission-side outputs for the given input: the
// word address driven to the memory and the pass-through read enable. Pure
// and combinational; Tick performs the same translation internally.
func (u *LoadUnit) Translate(in CycleInput) (wordAddr uint64, memRead bool) {
	wordAddr, _ = SplitAddress(in.ByteAddress&u.addrMask, u.offsetBits)
	return wordAddr, in.ReadEnable
}

// Tick advances the pipeline by one clock cycle.
//
// in carries this cycle's request-side signals. wideWord is the word
// returned by the memory collaborator this cycle, i.e. for the word address
// issued exactly MemLatency cycles earlier; nil means the memory bus is
// idle, in which case the retiring slot extracts from an all-zero word.
func (u *LoadUnit) Tick(in CycleInput, wideWord []byte) CycleOutput {
	u.stats.Cycles++

	// Stage 1: address translation and admission.
	wordAddr, offset := SplitAddress(in.ByteAddress&u.addrMask, u.offsetBits)
	if in.ReadEnable {
		u.stats.ReadsAdmitted++
	}

	// Stage 2: the context queue advances unconditionally, pairing the
	// retiring context with the wide word arriving this cycle.
	retiring := u.queue.Advance(Context{
		Offset:      offset,
		Size:        in.Size,
		WordAddress: wordAddr,
		ReadEnable:  in.ReadEnable,
	})

	// Stages 3 and 4: sub-word selection and resize.
	result := Resize(SelectWord(wideWord, retiring.Offset), retiring.Size)

	// Cache seam, observed at the same point as the selector output.
	probe := u.cache.Lookup(retiring.WordAddress, retiring.Offset, retiring.Size)
	if retiring.ReadEnable {
		u.stats.ReadsRetired++
		u.stats.CacheLookups++
		if probe.Hit {
			u.stats.CacheHits++
		}
		u.cache.Fill(retiring.WordAddress, wideWord)
	}

	out := CycleOutput{
		WordAddress:   wordAddr,
		MemReadEnable: in.ReadEnable,
	}

	// Stage 5: optional output register. Reset clears only the result
	// register; the cache probe keeps its registered value so the stub's
	// constants hold on every cycle.
	if u.config.OutputRegister {
		out.Result = u.resultReg
		out.CacheHit = u.hitReg
		out.CacheData = u.dataReg

		if in.Reset {
			u.resultReg = 0
		} else {
			u.resultReg = result
		}
		u.hitReg = probe.Hit
		u.dataReg = probe.Data
	} else {
		out.Result = result
		out.CacheHit = probe.Hit
		out.CacheData = probe.Data
	}

	return out
}

// Reset clears all pipeline state: in-flight contexts, the output register,
// the cache, and statistics. This is a full initialization, distinct from
// the per-cycle synchronous Reset input, which only clears the output
// register.
func (u *LoadUnit) Reset() {
	u.queue.Reset()
	u.cache.Reset()
	u.resultReg = 0
	u.hitReg = false
	u.dataReg = u.config.CachePlaceholder
	u.stats = Statistics{}
}
