// Package bus defines the ports a CAN-class transport adapter must satisfy
// to carry topics across process boundaries: registering a callback for
// incoming frames of a given routing key, and submitting outbound frames
// with a traffic class.
package bus

import "context"

// TrafficClass selects how the transport schedules a frame relative to
// others in flight.
type TrafficClass int

const (
	// BestEffort frames may be delayed or coalesced by the transport.
	BestEffort TrafficClass = iota
	// SoftRealTime frames get priority scheduling but missing a deadline
	// is not fatal.
	SoftRealTime
	// HardRealTime frames get the highest scheduling priority.
	HardRealTime
)

// String returns the traffic class's short name.
func (c TrafficClass) String() string {
	switch c {
	case BestEffort:
		return "best-effort"
	case SoftRealTime:
		return "SRT"
	case HardRealTime:
		return "HRT"
	default:
		return "unknown"
	}
}

// RoutingKey packs a source node id and a topic id into the 16-bit
// identifier carried by every frame, per the compound form mandated for
// this transport: (source_node_id << 8) | topic_id. The demos this
// transport descends from sometimes used the topic id alone; that
// shorthand is not carried forward.
type RoutingKey uint16

// NewRoutingKey composes a RoutingKey from a source node id and a topic id.
func NewRoutingKey(sourceNodeID, topicID uint8) RoutingKey {
	return RoutingKey(uint16(sourceNodeID)<<8 | uint16(topicID))
}

// SourceNodeID extracts the high byte.
func (k RoutingKey) SourceNodeID() uint8 {
	return uint8(k >> 8)
}

// TopicID extracts the low byte.
func (k RoutingKey) TopicID() uint8 {
	return uint8(k)
}

// Frame is one on-wire message: a routing key, a traffic class, and the
// raw payload bytes (everything after the local-only refcount/pool
// header, never a hard-coded offset into the message type).
type Frame struct {
	Key     RoutingKey
	Class   TrafficClass
	Payload []byte
}

// FrameSink is the outbound half of the transport port: submit a frame for
// transmission. Send must not block past ctx; a busy or rejected
// transport returns an error and the caller drops the frame rather than
// retrying (see the bridge's failure policy).
type FrameSink interface {
	Send(ctx context.Context, f Frame) error
}

// FrameHandler receives a decoded incoming frame's payload. It must not
// block; RemotePublisher implementations call it from the adapter's
// receive goroutine (the Go analogue of a transport interrupt callback)
// and defer any slow work.
type FrameHandler func(payload []byte)

// FrameSource is the inbound half of the transport port: register a
// callback invoked for every frame carrying the given routing key.
type FrameSource interface {
	RegisterRX(key RoutingKey, handler FrameHandler) error
}
