// Command ledpub is a two-thread pub/sub demo reproducing the classic
// "blink two LEDs over two topics" exercise: one goroutine publishes
// alternating on/off frames on led2 and led3, another subscribes to both
// and prints what it receives. It shares the process-wide default
// registry, the same way two independent RTOS threads would share one
// Middleware instance.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kodflow/meshbus/internal/domain/endpoint"
	"github.com/kodflow/meshbus/internal/domain/middleware"
	"github.com/kodflow/meshbus/internal/domain/node"
)

// ledFrame mirrors the packed LEDData{pin, set} struct: one GPIO pin
// number and the on/off state to drive it to.
type ledFrame struct {
	Pin uint8
	Set uint8
}

const (
	pollDepth    = 5
	publishEvery = 500 * time.Millisecond
)

func main() {
	interval := flag.Duration("interval", publishEvery, "toggle interval")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	registry := middleware.Default()

	go runSubscriber(ctx, registry)
	runPublisher(ctx, registry, *interval)
}

// runPublisher advertises led2 and led3 and toggles both every interval,
// matching PublisherThread1 of the original firmware.
func runPublisher(ctx context.Context, registry *middleware.Registry, interval time.Duration) {
	n := node.New("pub1")
	defer n.Close()

	pub2 := node.Advertise[ledFrame](n, registry, "led2", pollDepth)
	pub3 := node.Advertise[ledFrame](n, registry, "led3", pollDepth)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	set := uint8(1)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			broadcast(pub2, ledFrame{Pin: 2, Set: set})
			broadcast(pub3, ledFrame{Pin: 3, Set: 1 - set})
			set = 1 - set
		}
	}
}

// broadcast allocates a buffer, fills it, and publishes it, skipping the
// round when the pool is momentarily exhausted.
func broadcast(pub *endpoint.LocalPublisher[ledFrame], data ledFrame) {
	buf := pub.Alloc()
	if buf == nil {
		return
	}
	buf.Data = data
	pub.Broadcast(buf)
}

func runSubscriber(ctx context.Context, registry *middleware.Registry) {
	n := node.New("sub1")
	defer n.Close()

	sub2 := node.Subscribe[ledFrame](n, registry, "led2", pollDepth)
	sub3 := node.Subscribe[ledFrame](n, registry, "led3", pollDepth)

	for {
		if err := n.Spin(ctx); err != nil {
			return
		}
		for _, buf := range sub2.DrainAll() {
			fmt.Printf("led2 pin=%d set=%d\n", buf.Data.Pin, buf.Data.Set)
			_ = buf.Release()
		}
		for _, buf := range sub3.DrainAll() {
			fmt.Printf("led3 pin=%d set=%d\n", buf.Data.Pin, buf.Data.Set)
			_ = buf.Release()
		}
	}
}
