// Package middleware provides the process-wide topic registry: the single
// source of truth mapping topic name to Topic record, with deferred
// binding between publishers and subscribers that may appear in any order.
package middleware

import (
	"sync"

	"github.com/kodflow/meshbus/internal/domain/buffer"
	"github.com/kodflow/meshbus/internal/domain/event"
	"github.com/kodflow/meshbus/internal/domain/shared"
	"github.com/kodflow/meshbus/internal/domain/topic"
)

// TopicBinder is implemented by local publisher endpoints that need their
// bound Topic and a registry handle after Advertise succeeds, so a later
// Broadcast call can reach Registry.BroadcastOn without the endpoint
// package depending on middleware at construction time. Exported so the
// method is visible across package boundaries; an unexported method name
// here would scope to this package and never be satisfiable by a type
// declared in endpoint.
type TopicBinder interface {
	BindTopic(t *topic.Topic, r *Registry)
}

// Registry is the Middleware singleton: a process-wide topic table guarded
// by one mutex that also protects every topic's endpoint lists. It is
// initialized once, before any Node is created, and never destroyed.
type Registry struct {
	mu      sync.Mutex
	topics  map[string]*topic.Topic
	maxSize int
	events  event.Publisher
}

// Option configures a Registry at construction.
type Option func(*Registry)

// WithEventPublisher attaches an event.Publisher the registry notifies of
// topic and buffer lifecycle activity.
func WithEventPublisher(p event.Publisher) Option {
	return func(r *Registry) {
		r.events = p
	}
}

// WithMaxTopics overrides the default topic table capacity.
func WithMaxTopics(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.maxSize = n
		}
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		topics:  make(map[string]*topic.Topic),
		maxSize: shared.MaxTopicTableSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns a package-level convenience registry, created on first
// use. Applications that want an explicit, typed handle instead of hidden
// global state should use New and thread it through Node construction.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = New()
	})
	return defaultReg
}

func (r *Registry) publish(e event.Event) {
	if r.events != nil {
		r.events.Publish(e)
	}
}

// lookupOrCreate returns the topic record for name, creating it with
// payloadSize if absent. Caller must hold r.mu.
func (r *Registry) lookupOrCreate(name string, payloadSize int) (*topic.Topic, error) {
	if t, ok := r.topics[name]; ok {
		return t, nil
	}
	if len(r.topics) >= r.maxSize {
		return nil, shared.ErrTopicTableFull
	}
	t := topic.New(name, payloadSize)
	r.topics[name] = t
	r.publish(event.NewEvent(event.TypeTopicCreated, "topic created").WithTopicName(name))
	return t, nil
}

// Advertise links pub into the named topic, creating it on first
// reference. Returns false when an existing topic disagrees on payload
// size; the endpoint remains unbound and the topic is unchanged.
func (r *Registry) Advertise(pub topic.Publisher, name string, payloadSize int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, err := r.lookupOrCreate(name, payloadSize)
	if err != nil {
		return false, err
	}
	if t.PayloadSize != payloadSize {
		r.publish(event.NewEvent(event.TypeTopicSizeMismatch, "publisher size mismatch").WithTopicName(name))
		return false, nil
	}
	t.Publishers = append(t.Publishers, pub)
	if binder, ok := pub.(TopicBinder); ok {
		binder.BindTopic(t, r)
	}
	r.publish(event.NewEvent(event.TypePublisherBound, "publisher bound").WithTopicName(name))
	return true, nil
}

// Subscribe links sub into the named topic, creating it on first
// reference. Subscribing to a topic with no publisher yet still succeeds
// ("QUEUED"): the subscriber is linked and simply receives nothing until a
// publisher appears.
func (r *Registry) Subscribe(sub topic.Subscriber, name string, payloadSize int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, err := r.lookupOrCreate(name, payloadSize)
	if err != nil {
		return false, err
	}
	if t.PayloadSize != payloadSize {
		r.publish(event.NewEvent(event.TypeTopicSizeMismatch, "subscriber size mismatch").WithTopicName(name))
		return false, nil
	}
	t.Subscribers = append(t.Subscribers, sub)
	r.publish(event.NewEvent(event.TypeSubscriberBound, "subscriber bound").WithTopicName(name))
	return true, nil
}

// Unadvertise unlinks pub from its topic, used by node teardown.
func (r *Registry) Unadvertise(pub topic.Publisher, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.topics[name]; ok {
		t.RemovePublisher(pub)
	}
}

// Unsubscribe unlinks sub from its topic, used by node teardown.
func (r *Registry) Unsubscribe(sub topic.Subscriber, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.topics[name]; ok {
		t.RemoveSubscriber(sub)
	}
}

// AdvertiseRemote registers rp as the at-most-one remote publisher (inbound
// bridge) for the named topic. A second call for the same topic returns
// false (duplicate remote publisher).
func (r *Registry) AdvertiseRemote(rp topic.RemotePublisher, name string, payloadSize int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, err := r.lookupOrCreate(name, payloadSize)
	if err != nil {
		return false, err
	}
	if t.PayloadSize != payloadSize {
		return false, nil
	}
	if t.RemotePublisher != nil {
		return false, shared.ErrDuplicateRemotePublisher
	}
	t.RemotePublisher = rp
	if binder, ok := rp.(TopicBinder); ok {
		binder.BindTopic(t, r)
	}
	return true, nil
}

// SubscribeRemote registers rs as an outbound bridge forwarding the named
// topic onto the transport.
func (r *Registry) SubscribeRemote(rs topic.RemoteSubscriber, name string, payloadSize int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, err := r.lookupOrCreate(name, payloadSize)
	if err != nil {
		return false, err
	}
	if t.PayloadSize != payloadSize {
		return false, nil
	}
	t.RemoteSubscribers = append(t.RemoteSubscribers, rs)
	return true, nil
}

// FindLocalPublisher returns the first local publisher bound to name, or
// false if the topic has none yet.
func (r *Registry) FindLocalPublisher(name string) (topic.Publisher, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.topics[name]
	if !ok || len(t.Publishers) == 0 {
		return nil, false
	}
	return t.Publishers[0], true
}

// BroadcastOn runs the delivery algorithm for buf on topic t: every local
// subscriber that accepts the buffer gets a retained reference and its
// node signaled; every remote subscriber is retained and handed to its
// forwarder, with the retain undone on synchronous forward failure.
// Finally the caller's own initial reference is released. Returns the
// number of successful deliveries (local and remote).
func (r *Registry) BroadcastOn(t *topic.Topic, buf buffer.Handle) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	subscribers := t.Subscribers
	remoteSubscribers := t.RemoteSubscribers

	deliveries := 0
	for _, s := range subscribers {
		if s.TryDeliver(buf) {
			deliveries++
		} else {
			r.publish(event.NewEvent(event.TypeSubscriberDropped, "subscriber queue full").WithTopicName(t.Name))
		}
	}
	for _, rs := range remoteSubscribers {
		buf.Retain()
		if rs.Forward(buf) {
			deliveries++
			r.publish(event.NewEvent(event.TypeBridgeForwarded, "forwarded to bridge").WithTopicName(t.Name))
		} else {
			_ = buf.Release()
			r.publish(event.NewEvent(event.TypeBridgeDropped, "bridge forward rejected").WithTopicName(t.Name))
		}
	}

	_ = buf.Release()
	return deliveries
}

// TopicNames returns a snapshot of every registered topic name, for the
// TUI dashboard and the control-plane snapshot RPC.
func (r *Registry) TopicNames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.topics))
	for name := range r.topics {
		names = append(names, name)
	}
	return names
}

// Topic returns the topic record for name, if it exists.
func (r *Registry) Topic(name string) (*topic.Topic, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.topics[name]
	return t, ok
}

// TopicSnapshot is a point-in-time, lock-free-to-read copy of one topic's
// endpoint counts, for introspection (the control-plane Snapshot RPC, the
// TUI dashboard).
type TopicSnapshot struct {
	Name              string
	PayloadSize       int
	Publishers        int
	Subscribers       int
	HasRemotePublisher bool
	RemoteSubscribers int
}

// Snapshot returns a copy of every topic's current endpoint counts.
func (r *Registry) Snapshot() []TopicSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]TopicSnapshot, 0, len(r.topics))
	for name, t := range r.topics {
		out = append(out, TopicSnapshot{
			Name:               name,
			PayloadSize:        t.PayloadSize,
			Publishers:         len(t.Publishers),
			Subscribers:        len(t.Subscribers),
			HasRemotePublisher: t.RemotePublisher != nil,
			RemoteSubscribers:  len(t.RemoteSubscribers),
		})
	}
	return out
}
