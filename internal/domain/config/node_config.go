// Package config provides domain value objects for daemon and transport configuration.
package config

// defaultPoolCapacity and defaultQueueDepth mirror the small, fixed
// capacities the middleware uses when a node's config omits them: order
// 4 buffers per publisher, order 5 messages per subscriber queue.
const (
	defaultPoolCapacity int = 4
	defaultQueueDepth   int = 5
	// defaultPayloadSize is the raw frame size used when an endpoint's
	// config omits PayloadSize. It matches the largest raw frame type the
	// bootstrap wiring knows how to instantiate.
	defaultPayloadSize int = 64
)

// EndpointConfig configures one publisher or subscriber a node advertises
// or subscribes on startup.
type EndpointConfig struct {
	// Topic is the name this endpoint binds to.
	Topic string
	// Role is "publisher" or "subscriber".
	Role string
	// PoolCapacity overrides the default buffer pool size for a publisher.
	// Ignored for subscribers.
	PoolCapacity int
	// QueueDepth overrides the default subscriber queue depth. Ignored for
	// publishers.
	QueueDepth int
	// PayloadSize selects the raw frame width the bootstrap wiring
	// instantiates for this endpoint: one of 8, 16, 32, or 64 bytes.
	// Config-driven endpoints carry raw bytes rather than a named Go
	// struct, since the concrete payload type isn't known until the
	// config file is read.
	PayloadSize int
}

// NodeConfig configures one goroutine-local Node and the endpoints it
// owns at startup.
type NodeConfig struct {
	// Name is the node's diagnostic name.
	Name string
	// Endpoints lists the publishers and subscribers this node advertises
	// or subscribes on startup.
	Endpoints []EndpointConfig
}

// ResolvedPoolCapacity returns e.PoolCapacity, or the default if unset.
func (e EndpointConfig) ResolvedPoolCapacity() int {
	if e.PoolCapacity <= 0 {
		return defaultPoolCapacity
	}
	return e.PoolCapacity
}

// ResolvedQueueDepth returns e.QueueDepth, or the default if unset.
func (e EndpointConfig) ResolvedQueueDepth() int {
	if e.QueueDepth <= 0 {
		return defaultQueueDepth
	}
	return e.QueueDepth
}

// ResolvedPayloadSize returns e.PayloadSize, or the default if unset.
func (e EndpointConfig) ResolvedPayloadSize() int {
	if e.PayloadSize <= 0 {
		return defaultPayloadSize
	}
	return e.PayloadSize
}
