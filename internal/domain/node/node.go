// Package node groups the publisher and subscriber endpoints owned by a
// single goroutine and provides the wake signal that lets the goroutine
// block until one of them has work, instead of polling.
package node

import (
	"context"
	"sync"

	"github.com/kodflow/meshbus/internal/domain/endpoint"
	"github.com/kodflow/meshbus/internal/domain/middleware"
	"github.com/kodflow/meshbus/internal/domain/shared"
	"github.com/kodflow/meshbus/internal/domain/topic"
)

// drainer is satisfied by any subscriber this node owns that may have a
// bound callback. Spin calls it on every wakeup; a subscriber with no
// callback bound treats it as a no-op and leaves its queue for Get.
type drainer interface {
	DrainAndCallback()
}

// Node is the goroutine-local analogue of an RTOS thread context: it owns
// a set of endpoints and a single wake channel any of them can signal.
// Spin blocks until woken, the node is closed, or the context is
// canceled. On a wakeup it invokes DrainAndCallback on every owned
// subscriber with a bound callback; subscribers with none are left queued
// for the caller's own Get/DrainAll.
type Node struct {
	name string

	mu       sync.Mutex
	closers  []func()
	drainers []drainer

	wake      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// New creates a node with a single-slot wake channel: redundant signals
// while a wakeup is already pending are coalesced, matching the
// at-least-once, not once-per-message, wake contract a spinning consumer
// needs.
func New(name string) *Node {
	return &Node{
		name: name,
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Signal wakes a blocked Spin call, satisfying topic.NodeSignaler.
func (n *Node) Signal() {
	select {
	case n.wake <- struct{}{}:
	default:
	}
}

// Spin blocks until Signal is called, the node is closed, or ctx is done.
// Returns nil on a wakeup (after running every owned subscriber's drain
// routine), shared.ErrClosed once Close has run, or ctx.Err() on
// cancellation.
func (n *Node) Spin(ctx context.Context) error {
	select {
	case <-n.wake:
		n.drainCallbacks()
		return nil
	case <-n.done:
		return shared.ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (n *Node) drainCallbacks() {
	n.mu.Lock()
	drainers := n.drainers
	n.mu.Unlock()

	for _, d := range drainers {
		d.DrainAndCallback()
	}
}

// Name returns the node's diagnostic name.
func (n *Node) Name() string {
	return n.name
}

func (n *Node) track(closer func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closers = append(n.closers, closer)
}

func (n *Node) trackDrainer(d drainer) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.drainers = append(n.drainers, d)
}

// Close unbinds every endpoint this node owns from the registry, releases
// every buffer still queued on its subscribers, and wakes any goroutine
// blocked in Spin with shared.ErrClosed. Idempotent.
func (n *Node) Close() {
	n.mu.Lock()
	closers := n.closers
	n.closers = nil
	n.mu.Unlock()

	for _, c := range closers {
		c()
	}

	n.closeOnce.Do(func() { close(n.done) })
}

var _ topic.NodeSignaler = (*Node)(nil)

// Advertise creates a publisher for name owned by this node.
func Advertise[T any](n *Node, r *middleware.Registry, name string, poolCapacity int) *endpoint.LocalPublisher[T] {
	pub := endpoint.NewLocalPublisher[T](r, name, poolCapacity)
	n.track(func() { r.Unadvertise(pub, name) })
	return pub
}

// Subscribe creates a subscriber for name owned by this node, wiring its
// wake signal back to n. The subscriber's queue is drained and released,
// and its own DrainAndCallback wired into every Spin wakeup, until Close
// unbinds it.
func Subscribe[T any](n *Node, r *middleware.Registry, name string, depth int) *endpoint.LocalSubscriber[T] {
	sub := endpoint.NewLocalSubscriber[T](r, name, depth)
	sub.SetOwner(n)
	n.trackDrainer(sub)
	n.track(func() {
		r.Unsubscribe(sub, name)
		sub.ReleaseQueued()
	})
	return sub
}
