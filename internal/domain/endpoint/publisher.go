// Package endpoint provides the concrete publisher and subscriber handles
// application code allocates buffers from and receives messages through.
package endpoint

import (
	"unsafe"

	"github.com/kodflow/meshbus/internal/domain/buffer"
	"github.com/kodflow/meshbus/internal/domain/middleware"
	"github.com/kodflow/meshbus/internal/domain/topic"
)

// LocalPublisher allocates buffers of type T from a fixed-capacity pool and
// broadcasts them on a single named topic. Advertise runs once, at
// construction time, and creates the topic if it does not yet exist; it
// is not retried later.
type LocalPublisher[T any] struct {
	name string
	pool *buffer.Pool[T]

	registry *middleware.Registry
	topic    *topic.Topic
}

// NewLocalPublisher creates a publisher for name bound to registry r, with
// a pool of poolCapacity buffers of type T. Advertise runs immediately; if
// an existing topic disagrees on payload size the publisher is returned
// already bound to nothing and every Broadcast call is a no-op.
func NewLocalPublisher[T any](r *middleware.Registry, name string, poolCapacity int) *LocalPublisher[T] {
	p := &LocalPublisher[T]{
		name: name,
		pool: buffer.NewPool[T](poolCapacity),
	}
	ok, _ := r.Advertise(p, name, p.PayloadSize())
	if ok {
		p.registry = r
	}
	return p
}

// PayloadSize returns sizeof(T), satisfying topic.Publisher.
func (p *LocalPublisher[T]) PayloadSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// BindTopic records the topic and registry this publisher was accepted
// into, satisfying middleware.TopicBinder. Called by Registry.Advertise.
func (p *LocalPublisher[T]) BindTopic(t *topic.Topic, r *middleware.Registry) {
	p.topic = t
	p.registry = r
}

// Alloc reserves a buffer from the publisher's pool, or returns nil if the
// pool is exhausted. The caller owns the returned buffer's single
// reference until it calls Broadcast or Release.
func (p *LocalPublisher[T]) Alloc() *buffer.Buffer[T] {
	return p.pool.Alloc()
}

// Broadcast delivers buf to every subscriber and remote bridge currently
// bound to the publisher's topic, then drops the caller's own reference.
// Returns the number of successful deliveries. If the publisher never
// bound to a topic (size mismatch at construction), buf is released
// unread and Broadcast returns 0.
func (p *LocalPublisher[T]) Broadcast(buf *buffer.Buffer[T]) int {
	if p.registry == nil || p.topic == nil {
		_ = buf.Release()
		return 0
	}
	return p.registry.BroadcastOn(p.topic, buf)
}

// Name returns the topic name this publisher was constructed for.
func (p *LocalPublisher[T]) Name() string {
	return p.name
}

var _ topic.Publisher = (*LocalPublisher[int])(nil)
var _ middleware.TopicBinder = (*LocalPublisher[int])(nil)
