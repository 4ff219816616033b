package loopback_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodflow/meshbus/internal/domain/bus"
	"github.com/kodflow/meshbus/internal/infrastructure/transport/bus/loopback"
)

func TestAdapter_SendInvokesRegisteredHandler(t *testing.T) {
	t.Parallel()

	a := loopback.New()
	key := bus.NewRoutingKey(1, 2)

	received := make(chan []byte, 1)
	require.NoError(t, a.RegisterRX(key, func(payload []byte) {
		received <- payload
	}))

	require.NoError(t, a.Send(context.Background(), bus.Frame{Key: key, Payload: []byte{1, 2, 3}}))

	select {
	case payload := <-received:
		assert.Equal(t, []byte{1, 2, 3}, payload)
	default:
		t.Fatal("handler was not invoked")
	}
}

func TestAdapter_SendWithNoHandlerIsANoop(t *testing.T) {
	t.Parallel()

	a := loopback.New()
	err := a.Send(context.Background(), bus.Frame{Key: bus.NewRoutingKey(9, 9), Payload: []byte{1}})
	assert.NoError(t, err)
}

func TestAdapter_SendRespectsCanceledContext(t *testing.T) {
	t.Parallel()

	a := loopback.New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := a.Send(ctx, bus.Frame{Key: bus.NewRoutingKey(1, 1)})
	assert.ErrorIs(t, err, context.Canceled)
}
