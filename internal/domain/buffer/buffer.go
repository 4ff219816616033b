// Package buffer provides zero-copy, reference-counted message buffers and
// their owning fixed-capacity pools.
//
// A Buffer is preceded (conceptually) by a small header carrying its
// refcount and a back-pointer to the pool it was allocated from; in this
// Go realization the header fields are plain struct fields rather than a
// separate prefix record, since Go has no pointer arithmetic into structs.
//
// The registry and subscriber queues operate on buffers through the Handle
// interface rather than the generic Buffer[T] directly: a topic is a
// runtime rendezvous point between publishers and subscribers that may be
// compiled against the same T in different translation units, so the
// delivery path only needs Payload/Retain/Release, never T itself.
package buffer

import (
	"sync/atomic"
	"unsafe"

	"github.com/kodflow/meshbus/internal/domain/shared"
)

// Handle is the type-erased view of a Buffer used by queues, topics, and
// the registry's broadcast algorithm.
type Handle interface {
	// Payload returns the raw byte view of the message body, excluding the
	// local-only refcount/pool header.
	Payload() []byte
	// Retain increments the refcount. Called for every successful enqueue
	// or forward during broadcast.
	Retain()
	// Release decrements the refcount and, when it reaches zero, returns
	// the buffer to its owning pool's free list.
	Release() error
	// Refcount returns the current reference count.
	Refcount() int32
}

// Buffer is a fixed-size region sized for one message of type T, carrying
// its own refcount and a back-pointer to its owning pool.
//
// refcount == 0 iff the buffer is free in its pool. A buffer in flight has
// refcount == number of queues currently holding a pointer to it, plus one
// while the publisher still holds its initial reference.
type Buffer[T any] struct {
	refcount atomic.Int32
	pool     *Pool[T]

	// Data is the message payload. It is addressed directly rather than
	// through a separate header struct so callers can take &buf.Data
	// without an extra indirection.
	Data T
}

// Retain increments the buffer's refcount.
func (b *Buffer[T]) Retain() {
	b.refcount.Add(1)
}

// Payload returns the raw byte view of the message body. This is exactly
// what the bus adapter encodes onto the wire and decodes back into a
// RemotePublisher's buffer: everything after the header, never a
// hard-coded offset.
func (b *Buffer[T]) Payload() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&b.Data)), unsafe.Sizeof(b.Data))
}

// Release decrements the buffer's refcount and, when it reaches zero,
// returns the buffer to its owning pool's free list. Refcount and
// pool-origin are read from the buffer itself, not from the caller.
func (b *Buffer[T]) Release() error {
	for {
		cur := b.refcount.Load()
		if cur <= 0 {
			return shared.ErrDoubleRelease
		}
		if b.refcount.CompareAndSwap(cur, cur-1) {
			if cur == 1 {
				b.pool.reclaim(b)
			}
			return nil
		}
	}
}

// Refcount returns the buffer's current reference count. Intended for
// tests and introspection, not for the delivery path.
func (b *Buffer[T]) Refcount() int32 {
	return b.refcount.Load()
}

// compile-time interface check
var _ Handle = (*Buffer[int])(nil)
