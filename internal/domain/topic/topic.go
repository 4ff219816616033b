// Package topic defines the per-name record the registry routes messages
// through: its fixed payload size and the publishers/subscribers,
// local and remote, currently bound to it.
package topic

import "github.com/kodflow/meshbus/internal/domain/buffer"

// NodeSignaler lets a subscriber wake its owning node without the topic
// package depending on the node package.
type NodeSignaler interface {
	Signal()
}

// Publisher is the topic-facing contract shared by local and remote
// publisher endpoints.
type Publisher interface {
	PayloadSize() int
}

// Subscriber is the topic-facing contract for a local subscriber endpoint.
type Subscriber interface {
	PayloadSize() int
	// SetOwner attaches the node whose signal wakes on delivery.
	SetOwner(n NodeSignaler)
	// TryDeliver attempts to enqueue buf without blocking. On success it
	// retains buf and signals its owning node; on failure it leaves buf
	// untouched (lossy back-pressure, no refcount taken).
	TryDeliver(buf buffer.Handle) bool
}

// RemotePublisher is the topic-facing contract for the at-most-one inbound
// bridge of a topic.
type RemotePublisher interface {
	PayloadSize() int
}

// RemoteSubscriber is the topic-facing contract for an outbound bridge
// attached to a topic.
type RemoteSubscriber interface {
	PayloadSize() int
	// Forward submits buf to the transport. Returns false if the
	// transport rejected it; the caller must then drop its retained
	// reference.
	Forward(buf buffer.Handle) bool
}

// Topic is a named channel with a fixed payload size that routes messages
// from 0..N publishers to 0..M subscribers, local and remote. Topic
// records are created lazily on first reference and never destroyed.
type Topic struct {
	Name        string
	PayloadSize int

	Publishers        []Publisher
	Subscribers       []Subscriber
	RemotePublisher   RemotePublisher
	RemoteSubscribers []RemoteSubscriber
}

// New creates an empty topic record for the given name and payload size.
func New(name string, payloadSize int) *Topic {
	return &Topic{Name: name, PayloadSize: payloadSize}
}

// RemovePublisher unlinks pub from the topic's publisher list, if present.
func (t *Topic) RemovePublisher(pub Publisher) {
	for i, p := range t.Publishers {
		if p == pub {
			t.Publishers = append(t.Publishers[:i], t.Publishers[i+1:]...)
			return
		}
	}
}

// RemoveSubscriber unlinks sub from the topic's subscriber list, if present.
func (t *Topic) RemoveSubscriber(sub Subscriber) {
	for i, s := range t.Subscribers {
		if s == sub {
			t.Subscribers = append(t.Subscribers[:i], t.Subscribers[i+1:]...)
			return
		}
	}
}
