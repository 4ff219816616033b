package grpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/kodflow/meshbus/internal/domain/middleware"
)

func TestServer_SnapshotOnEmptyRegistry(t *testing.T) {
	t.Parallel()

	r := middleware.New()
	s := NewServer(r)

	snap, err := s.Snapshot(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)
	assert.Empty(t, snap.Fields)
}

func TestServer_SnapshotRejectsCanceledContext(t *testing.T) {
	t.Parallel()

	r := middleware.New()
	s := NewServer(r)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Snapshot(ctx, &emptypb.Empty{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestServer_AddressEmptyBeforeServe(t *testing.T) {
	t.Parallel()

	r := middleware.New()
	s := NewServer(r)
	assert.Empty(t, s.Address())
}
