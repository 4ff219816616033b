package buffer

import (
	"sync"

	"github.com/kodflow/meshbus/internal/domain/shared"
)

// Pool is a fixed-capacity, interrupt-safe allocator of Buffer[T] blocks.
// It never grows past its initial capacity and never blocks: Alloc returns
// nil when exhausted rather than waiting for a release.
//
// A short-held mutex guards the free list. This is the Go stand-in for the
// original's "disable scheduler or fine-grained spin on a single-core
// target" critical section: safe to call from a transport adapter's
// receive goroutine, which plays the role of interrupt context.
type Pool[T any] struct {
	mu       sync.Mutex
	free     []*Buffer[T]
	capacity int
}

// NewPool preallocates capacity blocks and returns the pool owning them.
func NewPool[T any](capacity int) *Pool[T] {
	if capacity <= 0 {
		capacity = shared.DefaultPoolCapacity
	}
	p := &Pool[T]{capacity: capacity}
	p.free = make([]*Buffer[T], capacity)
	for i := range p.free {
		p.free[i] = &Buffer[T]{}
	}
	return p
}

// Alloc returns a zeroed buffer with refcount preset to 1, or nil if the
// pool is exhausted. O(1), never blocks.
func (p *Pool[T]) Alloc() *Buffer[T] {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := len(p.free)
	if n == 0 {
		// Pool exhausted; caller must treat nil as "skip this sample".
		return nil
	}

	buf := p.free[n-1]
	p.free = p.free[:n-1]

	var zero T
	buf.Data = zero
	buf.pool = p
	buf.refcount.Store(1)
	return buf
}

// reclaim returns buf to the free list. Called only by Buffer.Release when
// its refcount reaches zero.
func (p *Pool[T]) reclaim(buf *Buffer[T]) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.free = append(p.free, buf)
}

// Capacity returns the pool's fixed block count.
func (p *Pool[T]) Capacity() int {
	return p.capacity
}

// FreeCount returns the number of currently free blocks. Intended for
// tests, the introspection RPC, and the TUI dashboard.
func (p *Pool[T]) FreeCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.free)
}

// InUse returns the number of blocks currently allocated and not yet
// released.
func (p *Pool[T]) InUse() int {
	return p.capacity - p.FreeCount()
}
