// Package queue provides the bounded, lossy FIFO each subscriber drains
// its messages from.
package queue

import (
	"sync"

	"github.com/kodflow/meshbus/internal/domain/buffer"
)

// Queue is a bounded FIFO of buffer handles with a statically chosen
// depth. Enqueue is non-blocking: on overflow it fails and the caller must
// not have incremented the buffer's refcount (lossy back-pressure).
//
// Queue is type-erased (buffer.Handle, not Buffer[T]) because a topic is a
// runtime name-based rendezvous point: the registry and broadcast
// algorithm walk subscriber lists without knowing any publisher's concrete
// message type, only its payload size.
//
// A short-held mutex guards the ring; enqueue is called from publisher
// context (possibly a transport adapter's receive goroutine), dequeue from
// the subscriber's own goroutine.
type Queue struct {
	mu       sync.Mutex
	items    []buffer.Handle
	depth    int
	dropped  uint64
	enqueued uint64
}

// New creates a queue with the given bounded depth.
func New(depth int) *Queue {
	if depth <= 0 {
		depth = 1
	}
	return &Queue{
		items: make([]buffer.Handle, 0, depth),
		depth: depth,
	}
}

// TryEnqueue appends buf to the tail of the queue. Returns false without
// blocking if the queue is already at depth; the caller must not retain a
// reference on behalf of this queue in that case.
func (q *Queue) TryEnqueue(buf buffer.Handle) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) >= q.depth {
		q.dropped++
		return false
	}
	q.items = append(q.items, buf)
	q.enqueued++
	return true
}

// Get returns the oldest buffer handle, or nil if the queue is empty.
// Non-blocking. The caller must eventually Release it.
func (q *Queue) Get() buffer.Handle {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return nil
	}
	buf := q.items[0]
	q.items = q.items[1:]
	return buf
}

// DrainAll removes and returns every buffered message in FIFO order,
// emptying the queue. Used by Node.Spin's callback-dispatch path.
func (q *Queue) DrainAll() []buffer.Handle {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return nil
	}
	drained := q.items
	q.items = make([]buffer.Handle, 0, q.depth)
	return drained
}

// Len returns the number of messages currently buffered.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Depth returns the queue's fixed capacity.
func (q *Queue) Depth() int {
	return q.depth
}

// Dropped returns the number of enqueue attempts that failed due to
// saturation, for introspection and the TUI dashboard.
func (q *Queue) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}
