package queue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodflow/meshbus/internal/domain/buffer"
	"github.com/kodflow/meshbus/internal/domain/queue"
)

func TestQueue_AtMostDepth(t *testing.T) {
	t.Parallel()

	pool := buffer.NewPool[int](10)
	q := queue.New(2)

	for range 2 {
		b := pool.Alloc()
		require.True(t, q.TryEnqueue(b))
	}

	overflow := pool.Alloc()
	require.NotNil(t, overflow)
	assert.False(t, q.TryEnqueue(overflow), "enqueue must fail without blocking once depth is reached")
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, uint64(1), q.Dropped())
}

func TestQueue_FIFOOrder(t *testing.T) {
	t.Parallel()

	pool := buffer.NewPool[int](5)
	q := queue.New(5)

	first := pool.Alloc()
	first.Data = 1
	second := pool.Alloc()
	second.Data = 2

	require.True(t, q.TryEnqueue(first))
	require.True(t, q.TryEnqueue(second))

	got1 := q.Get()
	got2 := q.Get()
	require.NotNil(t, got1)
	require.NotNil(t, got2)

	typed1, ok := got1.(*buffer.Buffer[int])
	require.True(t, ok)
	typed2, ok := got2.(*buffer.Buffer[int])
	require.True(t, ok)
	assert.Equal(t, 1, typed1.Data)
	assert.Equal(t, 2, typed2.Data)
	assert.Nil(t, q.Get())
}

func TestQueue_DrainAll(t *testing.T) {
	t.Parallel()

	pool := buffer.NewPool[int](3)
	q := queue.New(3)
	for i := range 3 {
		b := pool.Alloc()
		b.Data = i
		require.True(t, q.TryEnqueue(b))
	}

	drained := q.DrainAll()
	assert.Len(t, drained, 3)
	assert.Equal(t, 0, q.Len())
}

func TestNew_NonPositiveDepthClampedToOne(t *testing.T) {
	t.Parallel()

	q := queue.New(0)
	assert.Equal(t, 1, q.Depth())
}
