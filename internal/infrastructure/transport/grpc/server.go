// Package grpc provides the control-plane gRPC server: standard health
// checking plus a single Snapshot RPC exposing the registry's current
// topic table for introspection tools.
package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/kodflow/meshbus/internal/domain/middleware"
)

// ErrServerAlreadyRunning indicates the server is already running.
var ErrServerAlreadyRunning error = errors.New("server already running")

// Server implements the control-plane gRPC service: a health endpoint and
// a read-only snapshot of the registry's topic table.
type Server struct {
	registry *middleware.Registry

	grpcServer   *grpc.Server
	healthServer *health.Server
	listener     net.Listener
	mu           sync.Mutex
	running      bool
}

// NewServer creates a gRPC server backed by registry.
func NewServer(registry *middleware.Registry) *Server {
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()

	s := &Server{
		registry:     registry,
		grpcServer:   grpcServer,
		healthServer: healthServer,
	}

	RegisterSnapshotServer(grpcServer, s)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(SnapshotServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	return s
}

// Serve starts the gRPC server on the specified address.
func (s *Server) Serve(address string) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return fmt.Errorf("serve: %w", ErrServerAlreadyRunning)
	}

	listener, err := net.Listen("tcp", address)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("listen: %w", err)
	}
	defer func() {
		if listener != nil {
			_ = listener.Close()
		}
	}()

	s.listener = listener
	s.running = true
	s.mu.Unlock()

	return s.grpcServer.Serve(listener)
}

// Stop gracefully stops the gRPC server.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	s.grpcServer.GracefulStop()
	s.running = false
	s.listener = nil
}

// Address returns the server's listening address, or empty if not running.
func (s *Server) Address() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Snapshot implements SnapshotServer: it converts the registry's current
// topic table into a structpb.Struct, the well-known type that lets an
// untyped introspection payload cross the gRPC boundary without a
// dedicated message type per topic shape.
func (s *Server) Snapshot(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	topics := s.registry.Snapshot()
	fields := make(map[string]any, len(topics))
	for _, t := range topics {
		fields[t.Name] = map[string]any{
			"payload_size":         float64(t.PayloadSize),
			"publishers":           float64(t.Publishers),
			"subscribers":          float64(t.Subscribers),
			"has_remote_publisher": t.HasRemotePublisher,
			"remote_subscribers":   float64(t.RemoteSubscribers),
		}
	}

	st, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("building snapshot struct: %w", err)
	}
	return st, nil
}

var _ SnapshotServer = (*Server)(nil)
