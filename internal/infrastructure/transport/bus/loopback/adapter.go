// Package loopback provides an in-process bus.FrameSink/bus.FrameSource
// pair with no real transport behind it, for demos and tests that want
// the remote bridge code exercised without a broker or a CAN bus.
package loopback

import (
	"context"
	"sync"

	"github.com/kodflow/meshbus/internal/domain/bus"
)

// Adapter delivers every Send synchronously to whatever handler is
// registered for the frame's routing key. Frames with no registered
// handler are silently dropped, matching a transport with no peer
// listening on that id.
type Adapter struct {
	mu       sync.Mutex
	handlers map[bus.RoutingKey]bus.FrameHandler
}

// New creates an empty loopback adapter.
func New() *Adapter {
	return &Adapter{handlers: make(map[bus.RoutingKey]bus.FrameHandler)}
}

// RegisterRX records handler for key, replacing any previous registration.
func (a *Adapter) RegisterRX(key bus.RoutingKey, handler bus.FrameHandler) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.handlers[key] = handler
	return nil
}

// Send copies f.Payload and invokes the handler registered for f.Key, if
// any, synchronously on the caller's goroutine.
func (a *Adapter) Send(ctx context.Context, f bus.Frame) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a.mu.Lock()
	handler := a.handlers[f.Key]
	a.mu.Unlock()

	if handler == nil {
		return nil
	}

	payload := make([]byte, len(f.Payload))
	copy(payload, f.Payload)
	handler(payload)
	return nil
}

var (
	_ bus.FrameSink   = (*Adapter)(nil)
	_ bus.FrameSource = (*Adapter)(nil)
)
