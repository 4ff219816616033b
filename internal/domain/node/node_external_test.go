package node_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodflow/meshbus/internal/domain/buffer"
	"github.com/kodflow/meshbus/internal/domain/middleware"
	"github.com/kodflow/meshbus/internal/domain/node"
	"github.com/kodflow/meshbus/internal/domain/shared"
)

type tickFrame struct {
	N uint32
}

func TestNode_SpinBlocksUntilSignal(t *testing.T) {
	t.Parallel()

	n := node.New("worker")
	done := make(chan error, 1)
	go func() {
		done <- n.Spin(context.Background())
	}()

	select {
	case <-done:
		t.Fatal("Spin returned before Signal was called")
	case <-time.After(20 * time.Millisecond):
	}

	n.Signal()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Spin did not wake after Signal")
	}
}

func TestNode_SpinReturnsContextErrorOnCancel(t *testing.T) {
	t.Parallel()

	n := node.New("worker")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := n.Spin(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNode_SubscribeWakesOnDelivery(t *testing.T) {
	t.Parallel()

	r := middleware.New()
	consumer := node.New("consumer")
	sub := node.Subscribe[tickFrame](consumer, r, "ticks", 4)

	producer := node.New("producer")
	pub := node.Advertise[tickFrame](producer, r, "ticks", 4)

	done := make(chan error, 1)
	go func() {
		done <- consumer.Spin(context.Background())
	}()

	buf := pub.Alloc()
	require.NotNil(t, buf)
	buf.Data = tickFrame{N: 42}
	pub.Broadcast(buf)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("subscriber node never woke")
	}

	got, ok := sub.Get()
	require.True(t, ok)
	assert.Equal(t, uint32(42), got.Data.N)
	require.NoError(t, got.Release())
}

func TestNode_CloseUnbindsOwnedEndpoints(t *testing.T) {
	t.Parallel()

	r := middleware.New()
	consumer := node.New("consumer")
	_ = node.Subscribe[tickFrame](consumer, r, "ticks", 4)

	tp, ok := r.Topic("ticks")
	require.True(t, ok)
	assert.Len(t, tp.Subscribers, 1)

	consumer.Close()
	assert.Len(t, tp.Subscribers, 0)
}

func TestNode_CloseReleasesBuffersQueuedOnOwnedSubscribers(t *testing.T) {
	t.Parallel()

	r := middleware.New()
	producer := node.New("producer")
	pub := node.Advertise[tickFrame](producer, r, "ticks", 2)

	consumer := node.New("consumer")
	sub := node.Subscribe[tickFrame](consumer, r, "ticks", 4)

	for range 2 {
		buf := pub.Alloc()
		require.NotNil(t, buf)
		pub.Broadcast(buf)
	}
	require.Equal(t, 2, sub.Len())

	consumer.Close()

	buf := pub.Alloc()
	assert.NotNil(t, buf, "Close must release buffers still queued on owned subscribers back to the pool")
}

func TestNode_SpinInvokesBoundCallbackOnWakeup(t *testing.T) {
	t.Parallel()

	r := middleware.New()
	consumer := node.New("consumer")
	sub := node.Subscribe[tickFrame](consumer, r, "ticks", 4)

	var got []uint32
	sub.OnMessage(func(buf *buffer.Buffer[tickFrame]) {
		got = append(got, buf.Data.N)
		_ = buf.Release()
	})

	producer := node.New("producer")
	pub := node.Advertise[tickFrame](producer, r, "ticks", 4)

	buf := pub.Alloc()
	require.NotNil(t, buf)
	buf.Data = tickFrame{N: 7}
	pub.Broadcast(buf)

	require.NoError(t, consumer.Spin(t.Context()))
	assert.Equal(t, []uint32{7}, got)
	assert.Equal(t, 0, sub.Len(), "a bound callback must drain the queue instead of leaving it for Get")
}

func TestNode_CloseWakesBlockedSpinWithErrClosed(t *testing.T) {
	t.Parallel()

	n := node.New("worker")
	done := make(chan error, 1)
	go func() {
		done <- n.Spin(context.Background())
	}()

	select {
	case <-done:
		t.Fatal("Spin returned before Close was called")
	case <-time.After(20 * time.Millisecond):
	}

	n.Close()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, shared.ErrClosed)
	case <-time.After(time.Second):
		t.Fatal("Spin did not return after Close")
	}
}
