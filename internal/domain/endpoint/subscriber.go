package endpoint

import (
	"unsafe"

	"github.com/kodflow/meshbus/internal/domain/buffer"
	"github.com/kodflow/meshbus/internal/domain/middleware"
	"github.com/kodflow/meshbus/internal/domain/queue"
	"github.com/kodflow/meshbus/internal/domain/topic"
)

// LocalSubscriber receives messages of type T published on a single named
// topic through a bounded, lossy FIFO. Subscribe succeeds even when no
// publisher exists yet for the topic; the subscriber simply sits idle
// until one is advertised.
type LocalSubscriber[T any] struct {
	name     string
	queue    *queue.Queue
	owner    topic.NodeSignaler
	callback func(*buffer.Buffer[T])
}

// NewLocalSubscriber creates a subscriber for name bound to registry r,
// with a queue holding up to depth in-flight messages.
func NewLocalSubscriber[T any](r *middleware.Registry, name string, depth int) *LocalSubscriber[T] {
	s := &LocalSubscriber[T]{
		name:  name,
		queue: queue.New(depth),
	}
	_, _ = r.Subscribe(s, name, s.PayloadSize())
	return s
}

// PayloadSize returns sizeof(T), satisfying topic.Subscriber.
func (s *LocalSubscriber[T]) PayloadSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// SetOwner attaches the node this subscriber wakes when a message lands.
func (s *LocalSubscriber[T]) SetOwner(n topic.NodeSignaler) {
	s.owner = n
}

// OnMessage binds cb as this subscriber's delivery callback. Once bound,
// Node.Spin's post-wakeup drain invokes cb once per queued buffer instead
// of leaving them for Get; cb takes ownership of the buffer and must
// Release it.
func (s *LocalSubscriber[T]) OnMessage(cb func(*buffer.Buffer[T])) {
	s.callback = cb
}

// DrainAndCallback drains every pending message and invokes the bound
// callback on each, satisfying the node package's drainer interface. With
// no callback bound it is a no-op: messages stay queued for Get/DrainAll.
func (s *LocalSubscriber[T]) DrainAndCallback() {
	if s.callback == nil {
		return
	}
	for _, buf := range s.DrainAll() {
		s.callback(buf)
	}
}

// ReleaseQueued drains every buffered message and releases it without
// invoking any callback, returning in-flight buffers to their pool. Used
// by Node.Close to tear down a subscriber's queue.
func (s *LocalSubscriber[T]) ReleaseQueued() {
	for _, h := range s.queue.DrainAll() {
		_ = h.Release()
	}
}

// TryDeliver enqueues buf without blocking. On success it retains buf and
// signals the owning node; on failure (queue at depth) it leaves buf
// untouched and the caller's reference uncharged.
func (s *LocalSubscriber[T]) TryDeliver(buf buffer.Handle) bool {
	buf.Retain()
	if !s.queue.TryEnqueue(buf) {
		_ = buf.Release()
		return false
	}
	if s.owner != nil {
		s.owner.Signal()
	}
	return true
}

// Get dequeues the oldest pending message, or returns ok=false if none is
// buffered. The caller must call Release on the returned buffer once done.
func (s *LocalSubscriber[T]) Get() (*buffer.Buffer[T], bool) {
	h := s.queue.Get()
	if h == nil {
		return nil, false
	}
	typed, ok := h.(*buffer.Buffer[T])
	if !ok {
		return nil, false
	}
	return typed, true
}

// DrainAll dequeues every pending message in FIFO order, typed, dropping
// any handle that does not match T (which should never happen for a
// correctly bound topic).
func (s *LocalSubscriber[T]) DrainAll() []*buffer.Buffer[T] {
	handles := s.queue.DrainAll()
	if len(handles) == 0 {
		return nil
	}
	out := make([]*buffer.Buffer[T], 0, len(handles))
	for _, h := range handles {
		if typed, ok := h.(*buffer.Buffer[T]); ok {
			out = append(out, typed)
		}
	}
	return out
}

// Len returns the number of messages currently buffered.
func (s *LocalSubscriber[T]) Len() int {
	return s.queue.Len()
}

// Dropped returns the number of deliveries lost to a saturated queue.
func (s *LocalSubscriber[T]) Dropped() uint64 {
	return s.queue.Dropped()
}

// Name returns the topic name this subscriber was constructed for.
func (s *LocalSubscriber[T]) Name() string {
	return s.name
}

var _ topic.Subscriber = (*LocalSubscriber[int])(nil)
