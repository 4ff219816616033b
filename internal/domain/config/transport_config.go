// Package config provides domain value objects for daemon and transport configuration.
package config

// Transport driver names understood by the bootstrap wiring.
const (
	// TransportLoopback wires an in-process FrameSink/FrameSource pair,
	// useful for demos and tests with no real bus attached.
	TransportLoopback string = "loopback"
	// TransportMQTT bridges frames over an MQTT broker, standing in for
	// the CAN-class transport this design was built against.
	TransportMQTT string = "mqtt"
)

// Traffic class names understood by BridgeConfig.Class.
const (
	ClassBestEffort string = "best-effort"
	ClassSRT        string = "srt"
	ClassHRT        string = "hrt"
)

// MQTTConfig configures the MQTT-backed transport adapter.
type MQTTConfig struct {
	// Broker is the broker URL, e.g. "tcp://localhost:1883".
	Broker string
	// ClientID identifies this process to the broker.
	ClientID string
	// Username authenticates to the broker, if required.
	Username string
	// Password authenticates to the broker, if required.
	Password string
	// QoS is the MQTT quality-of-service level used for publish and
	// subscribe (0, 1, or 2).
	QoS byte
}

// BridgeConfig configures one remote publisher or remote subscriber
// bridging a local topic across the transport.
type BridgeConfig struct {
	// Topic is the local topic name this bridge attaches to.
	Topic string
	// Role is "remote-publisher" (inbound) or "remote-subscriber" (outbound).
	Role string
	// SourceNodeID is the 8-bit node id half of the routing key.
	SourceNodeID uint8
	// TopicID is the 8-bit topic id half of the routing key.
	TopicID uint8
	// Class selects the traffic class for outbound frames. Ignored for
	// remote publishers.
	Class string
	// PoolCapacity overrides the inbound bridge's decode pool size.
	// Ignored for remote subscribers.
	PoolCapacity int
	// PayloadSize selects the raw frame width: one of 8, 16, 32, or 64
	// bytes. See EndpointConfig.PayloadSize.
	PayloadSize int
}

// ResolvedPayloadSize returns b.PayloadSize, or the default if unset.
func (b BridgeConfig) ResolvedPayloadSize() int {
	if b.PayloadSize <= 0 {
		return defaultPayloadSize
	}
	return b.PayloadSize
}

// TransportConfig configures the bus adapter a process uses to bridge
// topics across the CAN-class transport.
type TransportConfig struct {
	// Driver selects the adapter: "loopback" or "mqtt".
	Driver string
	// MQTT configures the MQTT adapter. Ignored when Driver is not "mqtt".
	MQTT MQTTConfig
	// Bridges lists the remote publishers and subscribers to attach at
	// startup.
	Bridges []BridgeConfig
}
