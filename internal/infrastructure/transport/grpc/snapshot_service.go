package grpc

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// SnapshotServiceName is the fully qualified gRPC service name, matching
// the naming convention protoc-gen-go-grpc would have produced had this
// service been described in a .proto file instead of hand-wired here.
const SnapshotServiceName = "meshbus.v1.Snapshot"

// SnapshotServer is implemented by Server to serve the introspection RPC.
type SnapshotServer interface {
	Snapshot(ctx context.Context, req *emptypb.Empty) (*structpb.Struct, error)
}

// RegisterSnapshotServer registers srv's Snapshot method on s using a
// hand-built ServiceDesc, the same shape protoc-gen-go-grpc emits for a
// one-method unary service.
func RegisterSnapshotServer(s *grpclib.Server, srv SnapshotServer) {
	s.RegisterService(&snapshotServiceDesc, srv)
}

func snapshotHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpclib.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SnapshotServer).Snapshot(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: SnapshotServiceName + "/Snapshot",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SnapshotServer).Snapshot(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

var snapshotServiceDesc = grpclib.ServiceDesc{
	ServiceName: SnapshotServiceName,
	HandlerType: (*SnapshotServer)(nil),
	Methods: []grpclib.MethodDesc{
		{
			MethodName: "Snapshot",
			Handler:    snapshotHandler,
		},
	},
	Streams:  []grpclib.StreamDesc{},
	Metadata: "internal/infrastructure/transport/grpc/snapshot_service.go",
}
