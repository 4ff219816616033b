package remote

import (
	"context"
	"unsafe"

	"github.com/kodflow/meshbus/internal/domain/buffer"
	"github.com/kodflow/meshbus/internal/domain/bus"
	"github.com/kodflow/meshbus/internal/domain/middleware"
	"github.com/kodflow/meshbus/internal/domain/topic"
)

// Subscriber is the outbound bridge for a topic: "forward locally
// published T onto the bus." It links into a publisher's topic as a
// remote subscriber and, on each broadcast, submits the buffer's payload
// to the transport under a fixed traffic class.
type Subscriber[T any] struct {
	name  string
	key   bus.RoutingKey
	class bus.TrafficClass
	sink  bus.FrameSink
}

// NewSubscriber registers rs as an outbound bridge for name, forwarding
// under traffic class class using sink. FIFO ordering across the bus is
// per (source, topic), governed entirely by the order Forward is called
// in (broadcast's own subscriber-walk order).
func NewSubscriber[T any](r *middleware.Registry, sink bus.FrameSink, name string, key bus.RoutingKey, class bus.TrafficClass) (*Subscriber[T], error) {
	rs := &Subscriber[T]{
		name:  name,
		key:   key,
		class: class,
		sink:  sink,
	}
	if _, err := r.SubscribeRemote(rs, name, rs.PayloadSize()); err != nil {
		return nil, err
	}
	return rs, nil
}

// PayloadSize returns sizeof(T), satisfying topic.RemoteSubscriber.
func (rs *Subscriber[T]) PayloadSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Forward submits buf's payload to the transport. The caller (broadcast)
// has already retained buf on rs's behalf; Forward releases that
// reference itself once the transport confirms submission, or leaves it
// to the caller to release on failure. A rejected or timed-out send drops
// this frame; local subscribers already saw the message.
func (rs *Subscriber[T]) Forward(buf buffer.Handle) bool {
	err := rs.sink.Send(context.Background(), bus.Frame{
		Key:     rs.key,
		Class:   rs.class,
		Payload: buf.Payload(),
	})
	if err != nil {
		return false
	}
	_ = buf.Release()
	return true
}

// Name returns the topic name this bridge was constructed for.
func (rs *Subscriber[T]) Name() string {
	return rs.name
}

var _ topic.RemoteSubscriber = (*Subscriber[int])(nil)
