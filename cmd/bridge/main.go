// Command bridge demonstrates a topic crossing a transport boundary: a
// local publisher on one registry is mirrored, through a loopback bus
// adapter, into a second independent registry's local subscribers. This
// is the single-process analogue of two boards exchanging the led4 topic
// over CAN in the original firmware's PublisherThread2/SubscriberThread2
// pair.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kodflow/meshbus/internal/domain/bus"
	"github.com/kodflow/meshbus/internal/domain/endpoint"
	"github.com/kodflow/meshbus/internal/domain/middleware"
	"github.com/kodflow/meshbus/internal/domain/node"
	"github.com/kodflow/meshbus/internal/domain/remote"
	loopbackbus "github.com/kodflow/meshbus/internal/infrastructure/transport/bus/loopback"
)

// ledFrame mirrors the packed LEDData{pin, set} struct carried over led4.
type ledFrame struct {
	Pin uint8
	Set uint8
}

const (
	routingKey  = 4
	sourceNode  = 1
	pollDepth   = 5
	bridgeEvery = 10 * time.Millisecond
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	adapter := loopbackbus.New()

	upstream := middleware.New()
	downstream := middleware.New()

	key := bus.NewRoutingKey(sourceNode, routingKey)

	if _, err := remote.NewSubscriber[ledFrame](upstream, adapter, "led4", key, bus.SoftRealTime); err != nil {
		fmt.Fprintf(os.Stderr, "wiring outbound bridge: %v\n", err)
		os.Exit(1)
	}
	if _, err := remote.NewPublisher[ledFrame](downstream, adapter, "led4", key, pollDepth); err != nil {
		fmt.Fprintf(os.Stderr, "wiring inbound bridge: %v\n", err)
		os.Exit(1)
	}

	pubNode := node.New("pub2")
	defer pubNode.Close()
	pub := node.Advertise[ledFrame](pubNode, upstream, "led4", pollDepth)

	subNode := node.New("sub2")
	defer subNode.Close()
	sub := node.Subscribe[ledFrame](subNode, downstream, "led4", pollDepth)

	go runProducer(ctx, pub)
	runConsumer(ctx, subNode, sub)
}

// runProducer toggles led4 at a fixed rate, sending each frame across the
// upstream registry to be bridged onto the loopback transport.
func runProducer(ctx context.Context, pub *endpoint.LocalPublisher[ledFrame]) {
	ticker := time.NewTicker(bridgeEvery)
	defer ticker.Stop()

	set := uint8(1)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			buf := pub.Alloc()
			if buf == nil {
				continue
			}
			buf.Data = ledFrame{Pin: 4, Set: set}
			pub.Broadcast(buf)
			set = 1 - set
		}
	}
}

// runConsumer spins on the downstream node, printing every led4 frame the
// inbound bridge rebroadcast locally.
func runConsumer(ctx context.Context, n *node.Node, sub *endpoint.LocalSubscriber[ledFrame]) {
	for {
		if err := n.Spin(ctx); err != nil {
			return
		}
		for _, buf := range sub.DrainAll() {
			fmt.Printf("led4 pin=%d set=%d\n", buf.Data.Pin, buf.Data.Set)
			_ = buf.Release()
		}
	}
}
