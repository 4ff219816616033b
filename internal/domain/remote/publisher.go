// Package remote provides the bridge endpoints that extend a topic across
// a CAN-class transport: RemotePublisher decodes inbound frames back into
// local broadcasts, RemoteSubscriber forwards locally broadcast messages
// onto the transport.
package remote

import (
	"unsafe"

	"github.com/kodflow/meshbus/internal/domain/buffer"
	"github.com/kodflow/meshbus/internal/domain/bus"
	"github.com/kodflow/meshbus/internal/domain/middleware"
	"github.com/kodflow/meshbus/internal/domain/topic"
)

// Publisher is the inbound bridge for a topic: "someone on the bus
// publishes T; re-publish it locally." It owns a buffer pool sized for
// the burst the transport can deliver before the highest-priority local
// subscriber drains (the integrator's responsibility, per the pool
// capacity it is constructed with).
type Publisher[T any] struct {
	name    string
	key     bus.RoutingKey
	pool    *buffer.Pool[T]
	mailbox chan buffer.Handle

	registry *middleware.Registry
	topic    *topic.Topic
}

// NewPublisher registers the transport-id-indexed callback with src and
// advertises as the sole remote publisher for name. Returns an error if
// the topic already has a remote publisher (shared.ErrDuplicateRemotePublisher),
// the topic table is full, or the frame source rejects registration;
// returns a non-nil Publisher with no bound topic if an existing topic
// disagrees on payload size, matching local advertise's silent rejection
// contract (deliveries are simply zero). A dedicated goroutine
// drains the mailbox onFrame hands decoded frames to, so the registry
// mutex is never taken from the transport adapter's receive path.
func NewPublisher[T any](r *middleware.Registry, src bus.FrameSource, name string, key bus.RoutingKey, poolCapacity int) (*Publisher[T], error) {
	pool := buffer.NewPool[T](poolCapacity)
	p := &Publisher[T]{
		name:    name,
		key:     key,
		pool:    pool,
		mailbox: make(chan buffer.Handle, pool.Capacity()),
	}
	if _, err := r.AdvertiseRemote(p, name, p.PayloadSize()); err != nil {
		return nil, err
	}
	if err := src.RegisterRX(key, p.onFrame); err != nil {
		return nil, err
	}
	go p.deliver()
	return p, nil
}

// PayloadSize returns sizeof(T), satisfying topic.RemotePublisher.
func (p *Publisher[T]) PayloadSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// BindTopic records the topic and registry this bridge was accepted into,
// satisfying middleware.TopicBinder.
func (p *Publisher[T]) BindTopic(t *topic.Topic, r *middleware.Registry) {
	p.topic = t
	p.registry = r
}

// onFrame runs in the adapter's receive goroutine, the Go analogue of the
// transport's interrupt callback: it must not block. It allocates a
// buffer from its own pool, copies the decoded payload in, and hands it
// off to the mailbox deliver drains, rather than broadcasting inline. A
// null alloc or a full mailbox (the pool is already exhausted by frames
// still awaiting delivery) drops the frame.
func (p *Publisher[T]) onFrame(payload []byte) {
	buf := p.pool.Alloc()
	if buf == nil {
		return
	}
	copy(buf.Payload(), payload)

	select {
	case p.mailbox <- buf:
	default:
		_ = buf.Release()
	}
}

// deliver drains the mailbox and broadcasts each frame locally, the same
// way a LocalPublisher does, off the transport adapter's call stack. It
// runs for the lifetime of the bridge; remote bridges have no unbind path
// and are scoped to the registry's own lifetime.
func (p *Publisher[T]) deliver() {
	for buf := range p.mailbox {
		if p.registry == nil || p.topic == nil {
			_ = buf.Release()
			continue
		}
		p.registry.BroadcastOn(p.topic, buf)
	}
}

// Name returns the topic name this bridge was constructed for.
func (p *Publisher[T]) Name() string {
	return p.name
}

var _ topic.RemotePublisher = (*Publisher[int])(nil)
var _ middleware.TopicBinder = (*Publisher[int])(nil)
