// Package system composes the load front-end with a delayed word memory
// into a closed, tick-per-cycle loop. It wraps the lower-level packages to
// provide a simple interface for tools and tests.
package system

import (
	"github.com/sirupsen/logrus"

	"github.com/sarchlab/memfront/loadunit"
	"github.com/sarchlab/memfront/wordmem"
)

// Stats holds performance statistics for the system.
type Stats struct {
	// Cycles is the total number of cycles simulated.
	Cycles uint64
	// ReadsAdmitted is the number of requests admitted.
	ReadsAdmitted uint64
	// ReadsRetired is the number of requests whose result was produced.
	ReadsRetired uint64
	// CacheHits is the number of cache-seam hits (always zero with the
	// default stub).
	CacheHits uint64
}

// Option is a functional option for configuring the System.
type Option func(*System)

// WithLogger enables per-cycle tracing on the given logger at debug level.
func WithLogger(log *logrus.Logger) Option {
	return func(s *System) {
		s.log = log
	}
}

// WithCache installs a WordCache implementation in place of the always-miss
// stub.
func WithCache(cache loadunit.WordCache) Option {
	return func(s *System) {
		s.cacheOpts = append(s.cacheOpts, loadunit.WithCache(cache))
	}
}

// System is a closed-loop simulation of the load front-end and its word
// memory. Each Tick advances both by exactly one cycle, with the memory's
// returned word fed back into the front-end the cycle it arrives.
type System struct {
	unit    *loadunit.LoadUnit
	delayed *wordmem.Delayed
	backing *wordmem.Memory

	log       *logrus.Logger
	cacheOpts []loadunit.LoadUnitOption

	totalLatency uint64
}

// New creates a System from the given configuration. The word memory's
// geometry and latency are derived from the same config as the front-end,
// which keeps the context-queue depth and the memory latency consistent by
// construction.
func New(config *loadunit.Config, opts ...Option) (*System, error) {
	s := &System{}
	for _, opt := range opts {
		opt(s)
	}

	unit, err := loadunit.NewLoadUnit(config, s.cacheOpts...)
	if err != nil {
		return nil, err
	}

	backing := wordmem.NewMemory(config.NumWords(), config.WordBytes())

	s.unit = unit
	s.delayed = wordmem.NewDelayed(backing, config.ExtraInputStages, config.ExtraOutputStages)
	s.backing = backing
	s.totalLatency = config.TotalLatency()

	return s, nil
}

// Memory returns the backing word memory, for preloading images and
// inspecting state.
func (s *System) Memory() *wordmem.Memory {
	return s.backing
}

// TotalLatency returns the number of cycles from admission to an observable
// result.
func (s *System) TotalLatency() uint64 {
	return s.totalLatency
}

// Tick advances the system by one cycle and returns the front-end's
// outputs for that cycle.
func (s *System) Tick(in loadunit.CycleInput) loadunit.CycleOutput {
	wordAddr, memRead := s.unit.Translate(in)
	wide := s.delayed.Tick(wordAddr, memRead)
	out := s.unit.Tick(in, wide)

	if s.log != nil {
		s.log.WithFields(logrus.Fields{
			"cycle":     s.unit.Stats().Cycles,
			"byteAddr":  in.ByteAddress,
			"size":      in.Size.String(),
			"readEn":    in.ReadEnable,
			"wordAddr":  out.WordAddress,
			"result":    out.Result,
			"cacheHit":  out.CacheHit,
			"cacheData": out.CacheData,
		}).Debug("tick")
	}

	return out
}

// ReadSync admits a single read and ticks the system until its result is
// observable, returning that result. Intended for tools; it defeats the
// pipelining that Tick exposes.
func (s *System) ReadSync(byteAddr uint64, size loadunit.TransferSize) uint32 {
	out := s.Tick(loadunit.CycleInput{
		ByteAddress: byteAddr,
		Size:        size,
		ReadEnable:  true,
	})

	for i := uint64(0); i < s.totalLatency; i++ {
		out = s.Tick(loadunit.CycleInput{})
	}

	return out.Result
}

// Stats returns performance statistics for the system.
func (s *System) Stats() Stats {
	unitStats := s.unit.Stats()
	return Stats{
		Cycles:        unitStats.Cycles,
		ReadsAdmitted: unitStats.ReadsAdmitted,
		ReadsRetired:  unitStats.ReadsRetired,
		CacheHits:     unitStats.CacheHits,
	}
}

// Reset clears all front-end and memory-pipeline state. The backing
// memory's contents are preserved.
func (s *System) Reset() {
	s.unit.Reset()
	s.delayed.Reset()
}
