package loadunit

import (
	akitacache "github.com/sarchlab/akita/v4/mem/cache"
)

// CacheProbe is the per-cycle cache observation exposed alongside the main
// result.
type CacheProbe struct {
	// Hit indicates the retiring request's word was found in the cache.
	Hit bool

	// Data is the resized load result from the cached word on a hit, or
	// the fixed placeholder value from the stub.
	Data uint32
}

// WordCache is the seam for caching recently returned wide words. The
// pipeline probes it at the same point the final selector output is
// produced, and offers it every wide word that retires a real request.
//
// The default implementation is an always-miss stub: buffering the returned
// word is a known optimization opportunity, but it is deliberately deferred
// and no consumer acts on the probe today.
type WordCache interface {
	// Lookup probes the cache with the retiring request's word address,
	// offset, and size.
	Lookup(wordAddr, offset uint64, size TransferSize) CacheProbe

	// Fill offers the wide word that returned from memory this cycle.
	Fill(wordAddr uint64, wideWord []byte)

	// Reset invalidates all cached state.
	Reset()
}

// missCache is the always-miss stub: Hit is always false and Data is a
// fixed placeholder, for every input combination.
type missCache struct {
	placeholder uint32
}

func newMissCache(placeholder uint32) *missCache {
	return &missCache{placeholder: placeholder}
}

func (c *missCache) Lookup(wordAddr, offset uint64, size TransferSize) CacheProbe {
	return CacheProbe{Hit: false, Data: c.placeholder}
}

func (c *missCache) Fill(wordAddr uint64, wideWord []byte) {}

func (c *missCache) Reset() {}

// DirectMappedCache is an experimental WordCache filling the seam the stub
// reserves: a small direct-mapped cache of wide words keyed by word
// address, using the Akita cache directory for tag and replacement state.
// With NumLines == 1 it degenerates to the single-entry word buffer the
// original design sketched.
type DirectMappedCache struct {
	directory *akitacache.DirectoryImpl
	lines     [][]byte
	wordBytes int

	stats CacheStatistics
}

// CacheStatistics holds hit/miss counts for a WordCache implementation.
type CacheStatistics struct {
	Lookups uint64
	Hits    uint64
	Fills   uint64
}

// NewDirectMappedCache creates a direct-mapped word cache with numLines
// lines of wordBytes bytes each.
func NewDirectMappedCache(numLines, wordBytes int) *DirectMappedCache {
	lines := make([][]byte, numLines)
	for i := range lines {
		lines[i] = make([]byte, wordBytes)
	}

	return &DirectMappedCache{
		directory: akitacache.NewDirectory(
			numLines,
			1,
			wordBytes,
			akitacache.NewLRUVictimFinder(),
		),
		lines:     lines,
		wordBytes: wordBytes,
	}
}

// Stats returns hit/miss statistics.
func (c *DirectMappedCache) Stats() CacheStatistics {
	return c.stats
}

// Lookup probes the cache with the retiring request's word address. On a
// hit, Data is the same resized value the main pipeline would produce from
// the cached word.
func (c *DirectMappedCache) Lookup(wordAddr, offset uint64, size TransferSize) CacheProbe {
	c.stats.Lookups++

	blockAddr := wordAddr * uint64(c.wordBytes)
	block := c.directory.Lookup(0, blockAddr)
	if block == nil || !block.IsValid {
		return CacheProbe{}
	}

	c.stats.Hits++
	c.directory.Visit(block)

	line := c.lines[block.SetID+block.WayID]
	return CacheProbe{
		Hit:  true,
		Data: Resize(SelectWord(line, offset), size),
	}
}

// Fill stores the returned wide word, evicting the line it maps to.
func (c *DirectMappedCache) Fill(wordAddr uint64, wideWord []byte) {
	c.stats.Fills++

	blockAddr := wordAddr * uint64(c.wordBytes)
	victim := c.directory.FindVictim(blockAddr)
	if victim == nil {
		return
	}

	line := c.lines[victim.SetID+victim.WayID]
	copy(line, wideWord)
	for i := len(wideWord); i < len(line); i++ {
		line[i] = 0
	}

	victim.Tag = blockAddr
	victim.IsValid = true
	victim.IsDirty = false
	c.directory.Visit(victim)
}

// Reset invalidates all lines and clears statistics.
func (c *DirectMappedCache) Reset() {
	c.directory.Reset()
	c.stats = CacheStatistics{}
}
