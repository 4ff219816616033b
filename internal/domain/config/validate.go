// Package config provides domain value objects for daemon and transport configuration.
package config

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	// ErrNoNodes indicates no nodes are configured.
	ErrNoNodes error = errors.New("no nodes configured")
	// ErrEmptyNodeName indicates a node has no name.
	ErrEmptyNodeName error = errors.New("node name is required")
	// ErrDuplicateNodeName indicates duplicate node names.
	ErrDuplicateNodeName error = errors.New("duplicate node name")
	// ErrEmptyEndpointTopic indicates an endpoint has no topic name.
	ErrEmptyEndpointTopic error = errors.New("endpoint topic is required")
	// ErrInvalidEndpointRole indicates an endpoint role other than publisher/subscriber.
	ErrInvalidEndpointRole error = errors.New("endpoint role must be publisher or subscriber")
	// ErrInvalidTransportDriver indicates an unrecognized transport driver.
	ErrInvalidTransportDriver error = errors.New("transport driver must be loopback or mqtt")
	// ErrMQTTBrokerRequired indicates an MQTT transport missing a broker URL.
	ErrMQTTBrokerRequired error = errors.New("mqtt transport requires a broker url")
	// ErrInvalidBridgeRole indicates a bridge role other than remote-publisher/remote-subscriber.
	ErrInvalidBridgeRole error = errors.New("bridge role must be remote-publisher or remote-subscriber")
	// ErrInvalidPayloadSize indicates a payload size the bootstrap wiring
	// has no raw frame type for.
	ErrInvalidPayloadSize error = errors.New("payload size must be 0, 8, 16, 32, or 64")
)

// isValidPayloadSize reports whether n is a size the bootstrap wiring can
// instantiate a raw frame type for. Zero means "use the default".
func isValidPayloadSize(n int) bool {
	switch n {
	case 0, 8, 16, 32, 64:
		return true
	default:
		return false
	}
}

// Validate validates the configuration.
//
// Params:
//   - cfg: configuration to validate
//
// Returns:
//   - error: validation error if any
func Validate(cfg *Config) error {
	// Check if at least one node is configured.
	if len(cfg.Nodes) == 0 {
		return ErrNoNodes
	}

	seen := make(map[string]bool, len(cfg.Nodes))
	for i := range cfg.Nodes {
		node := &cfg.Nodes[i]

		if err := validateNode(node); err != nil {
			return fmt.Errorf("node %q: %w", node.Name, err)
		}

		if seen[node.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateNodeName, node.Name)
		}
		seen[node.Name] = true
	}

	if cfg.Transport.Driver != "" {
		if err := validateTransport(&cfg.Transport); err != nil {
			return fmt.Errorf("transport: %w", err)
		}
	}

	return nil
}

// validateNode validates a single node configuration.
func validateNode(n *NodeConfig) error {
	if n.Name == "" {
		return ErrEmptyNodeName
	}

	for i := range n.Endpoints {
		ep := &n.Endpoints[i]
		if ep.Topic == "" {
			return ErrEmptyEndpointTopic
		}
		if ep.Role != "publisher" && ep.Role != "subscriber" {
			return fmt.Errorf("%w: %s", ErrInvalidEndpointRole, ep.Role)
		}
		if !isValidPayloadSize(ep.PayloadSize) {
			return fmt.Errorf("%w: %d", ErrInvalidPayloadSize, ep.PayloadSize)
		}
	}

	return nil
}

// validateTransport validates the transport configuration.
func validateTransport(t *TransportConfig) error {
	switch t.Driver {
	case TransportLoopback:
		// no further requirements
	case TransportMQTT:
		if t.MQTT.Broker == "" {
			return ErrMQTTBrokerRequired
		}
	default:
		return fmt.Errorf("%w: %s", ErrInvalidTransportDriver, t.Driver)
	}

	for i := range t.Bridges {
		b := &t.Bridges[i]
		if b.Role != "remote-publisher" && b.Role != "remote-subscriber" {
			return fmt.Errorf("%w: %s", ErrInvalidBridgeRole, b.Role)
		}
		if !isValidPayloadSize(b.PayloadSize) {
			return fmt.Errorf("%w: %d", ErrInvalidPayloadSize, b.PayloadSize)
		}
	}

	return nil
}
