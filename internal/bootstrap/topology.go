package bootstrap

import (
	"fmt"

	"github.com/kodflow/meshbus/internal/domain/bus"
	"github.com/kodflow/meshbus/internal/domain/config"
	"github.com/kodflow/meshbus/internal/domain/middleware"
	"github.com/kodflow/meshbus/internal/domain/node"
	"github.com/kodflow/meshbus/internal/domain/rawframe"
	"github.com/kodflow/meshbus/internal/domain/remote"
)

// Topology holds every node and bridge BuildTopology constructed from a
// Config, so Run can tear them down on shutdown.
type Topology struct {
	Nodes []*node.Node
}

// Close unbinds every node's endpoints from the registry. Remote bridges
// have no unbind path: they are scoped to the registry's own lifetime, the
// same way the transport connection they ride on is.
func (t *Topology) Close() {
	for _, n := range t.Nodes {
		n.Close()
	}
}

// BuildTopology creates one node.Node per cfg.Nodes entry, advertising or
// subscribing every configured endpoint against r, then attaches
// cfg.Transport's bridges onto sink and src.
func BuildTopology(cfg *config.Config, r *middleware.Registry, sink bus.FrameSink, src bus.FrameSource) (*Topology, error) {
	topo := &Topology{}

	for i := range cfg.Nodes {
		nc := &cfg.Nodes[i]
		n := node.New(nc.Name)
		topo.Nodes = append(topo.Nodes, n)

		for j := range nc.Endpoints {
			ep := &nc.Endpoints[j]
			if err := bindEndpoint(n, r, ep); err != nil {
				return nil, fmt.Errorf("node %q endpoint %q: %w", nc.Name, ep.Topic, err)
			}
		}
	}

	for i := range cfg.Transport.Bridges {
		b := &cfg.Transport.Bridges[i]
		if err := bindBridge(r, sink, src, b); err != nil {
			return nil, fmt.Errorf("bridge %q: %w", b.Topic, err)
		}
	}

	return topo, nil
}

// bindEndpoint advertises or subscribes ep against n, picking the raw
// frame width that matches ep's configured payload size. The endpoint
// type parameter is resolved at bootstrap time from config, not at
// compile time from a named struct, since a YAML-defined topic carries no
// Go type of its own.
func bindEndpoint(n *node.Node, r *middleware.Registry, ep *config.EndpointConfig) error {
	size := ep.ResolvedPayloadSize()

	switch ep.Role {
	case "publisher":
		switch size {
		case 8:
			node.Advertise[rawframe.Raw8](n, r, ep.Topic, ep.ResolvedPoolCapacity())
		case 16:
			node.Advertise[rawframe.Raw16](n, r, ep.Topic, ep.ResolvedPoolCapacity())
		case 32:
			node.Advertise[rawframe.Raw32](n, r, ep.Topic, ep.ResolvedPoolCapacity())
		case 64:
			node.Advertise[rawframe.Raw64](n, r, ep.Topic, ep.ResolvedPoolCapacity())
		default:
			return fmt.Errorf("unsupported payload size %d", size)
		}
	case "subscriber":
		switch size {
		case 8:
			node.Subscribe[rawframe.Raw8](n, r, ep.Topic, ep.ResolvedQueueDepth())
		case 16:
			node.Subscribe[rawframe.Raw16](n, r, ep.Topic, ep.ResolvedQueueDepth())
		case 32:
			node.Subscribe[rawframe.Raw32](n, r, ep.Topic, ep.ResolvedQueueDepth())
		case 64:
			node.Subscribe[rawframe.Raw64](n, r, ep.Topic, ep.ResolvedQueueDepth())
		default:
			return fmt.Errorf("unsupported payload size %d", size)
		}
	default:
		return fmt.Errorf("unknown endpoint role %q", ep.Role)
	}
	return nil
}

// bindBridge attaches a remote publisher or remote subscriber for b,
// picking the raw frame width from b's configured payload size.
func bindBridge(r *middleware.Registry, sink bus.FrameSink, src bus.FrameSource, b *config.BridgeConfig) error {
	key := bus.NewRoutingKey(b.SourceNodeID, b.TopicID)
	size := b.ResolvedPayloadSize()

	switch b.Role {
	case "remote-publisher":
		return newRemotePublisher(r, src, b.Topic, key, size, b.PoolCapacity)
	case "remote-subscriber":
		return newRemoteSubscriber(r, sink, b.Topic, key, size, trafficClass(b.Class))
	default:
		return fmt.Errorf("unknown bridge role %q", b.Role)
	}
}

func newRemotePublisher(r *middleware.Registry, src bus.FrameSource, name string, key bus.RoutingKey, size, poolCapacity int) error {
	if poolCapacity <= 0 {
		poolCapacity = 4
	}
	var err error
	switch size {
	case 8:
		_, err = remote.NewPublisher[rawframe.Raw8](r, src, name, key, poolCapacity)
	case 16:
		_, err = remote.NewPublisher[rawframe.Raw16](r, src, name, key, poolCapacity)
	case 32:
		_, err = remote.NewPublisher[rawframe.Raw32](r, src, name, key, poolCapacity)
	case 64:
		_, err = remote.NewPublisher[rawframe.Raw64](r, src, name, key, poolCapacity)
	default:
		return fmt.Errorf("unsupported payload size %d", size)
	}
	return err
}

func newRemoteSubscriber(r *middleware.Registry, sink bus.FrameSink, name string, key bus.RoutingKey, size int, class bus.TrafficClass) error {
	var err error
	switch size {
	case 8:
		_, err = remote.NewSubscriber[rawframe.Raw8](r, sink, name, key, class)
	case 16:
		_, err = remote.NewSubscriber[rawframe.Raw16](r, sink, name, key, class)
	case 32:
		_, err = remote.NewSubscriber[rawframe.Raw32](r, sink, name, key, class)
	case 64:
		_, err = remote.NewSubscriber[rawframe.Raw64](r, sink, name, key, class)
	default:
		return fmt.Errorf("unsupported payload size %d", size)
	}
	return err
}

func trafficClass(name string) bus.TrafficClass {
	switch name {
	case config.ClassSRT:
		return bus.SoftRealTime
	case config.ClassHRT:
		return bus.HardRealTime
	default:
		return bus.BestEffort
	}
}
