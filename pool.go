package memkit

import (
	"sync"
	"weak"
)

// Pool recycles Arena instances across allocation scopes. Idle arenas are
// held through weak pointers, so the GC may claim them whenever memory
// pressure demands; per-key peak usage is tracked so fresh arenas start
// with one reusable block sized from past usage of the same key.
//
// The Pool itself is safe for concurrent use, but every arena it hands out
// is exclusively owned by the holder of its PoolItem.
type Pool struct {
	pool  []weak.Pointer[PoolItem]
	sizes map[uint64]*poolItemSize
	mu    sync.Mutex
}

// poolItemSize tracks required memory across recent releases for one key.
type poolItemSize struct {
	count      int
	totalBytes int
}

// PoolItem wraps an Arena checked out of a Pool.
type PoolItem struct {
	Arena *Arena
	Key   uint64
}

// NewPool returns an empty Pool.
func NewPool() *Pool {
	return &Pool{sizes: make(map[uint64]*poolItemSize)}
}

// Acquire returns a reset arena from the pool, or a fresh one seeded for
// the given use-case key. The key groups allocation scopes with similar
// memory needs.
func (p *Pool) Acquire(key uint64) *PoolItem {
	p.mu.Lock()
	defer p.mu.Unlock()

	for len(p.pool) > 0 {
		last := len(p.pool) - 1
		wp := p.pool[last]
		p.pool = p.pool[:last]
		if v := wp.Value(); v != nil {
			v.Key = key
			return v
		}
		// GC collected this one, try the next
	}

	a := &Arena{}
	if size := p.peakFor(key); size > 0 {
		// Seed one reclaimed block sized from past usage so first-fit
		// reuse starts warm.
		a.Reclaim(a.Alloc(size))
	}
	return &PoolItem{Arena: a, Key: key}
}

// Release resets the item's arena and returns it to the pool, recording
// the arena's peak usage for future sizing of this key.
func (p *Pool) Release(item *PoolItem) {
	peak := item.Arena.Peak()
	item.Arena.Reset()

	p.mu.Lock()
	defer p.mu.Unlock()

	if s, ok := p.sizes[item.Key]; ok {
		if s.count == 50 {
			s.count = 1
			s.totalBytes /= 50
		}
		s.count++
		s.totalBytes += peak
	} else {
		p.sizes[item.Key] = &poolItemSize{count: 1, totalBytes: peak}
	}

	item.Key = 0
	p.pool = append(p.pool, weak.Make(item))
}

// peakFor returns the average peak usage recorded for key, or 0 when the
// key has never been released.
func (p *Pool) peakFor(key uint64) int {
	if s, ok := p.sizes[key]; ok {
		return s.totalBytes / s.count
	}
	return 0
}
