// Package remote implements the asset transport over gRPC.
//
// The service is declared by hand over protobuf well-known types, so no code
// generation step is needed:
//
//	service AssetService {
//	  // One BytesValue per requested checksum, in request order.
//	  rpc Fetch(google.protobuf.ListValue) returns (stream google.protobuf.BytesValue);
//	}
package remote

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	// ServiceName is the fully qualified name of the asset service.
	ServiceName = "snapsync.assets.v1.AssetService"

	// FetchMethod is the full method name of AssetService.Fetch.
	FetchMethod = "/" + ServiceName + "/Fetch"
)

// AssetServiceServer is the server API of the asset service.
type AssetServiceServer interface {
	Fetch(*structpb.ListValue, grpc.ServerStreamingServer[wrapperspb.BytesValue]) error
}

// UnimplementedAssetServiceServer can be embedded for forward compatibility.
type UnimplementedAssetServiceServer struct{}

// Fetch implements AssetServiceServer.
func (UnimplementedAssetServiceServer) Fetch(
	*structpb.ListValue, grpc.ServerStreamingServer[wrapperspb.BytesValue],
) error {
	return status.Error(codes.Unimplemented, "method Fetch not implemented")
}

// RegisterAssetServiceServer registers srv on s.
func RegisterAssetServiceServer(s grpc.ServiceRegistrar, srv AssetServiceServer) {
	s.RegisterService(&AssetServiceDesc, srv)
}

// AssetServiceClient is the client API of the asset service.
type AssetServiceClient interface {
	Fetch(
		ctx context.Context, in *structpb.ListValue, opts ...grpc.CallOption,
	) (grpc.ServerStreamingClient[wrapperspb.BytesValue], error)
}

type assetServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAssetServiceClient creates a client stub over cc.
func NewAssetServiceClient(cc grpc.ClientConnInterface) AssetServiceClient {
	return &assetServiceClient{cc: cc}
}

func (c *assetServiceClient) Fetch(
	ctx context.Context, in *structpb.ListValue, opts ...grpc.CallOption,
) (grpc.ServerStreamingClient[wrapperspb.BytesValue], error) {
	stream, err := c.cc.NewStream(ctx, &AssetServiceDesc.Streams[0], FetchMethod, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[structpb.ListValue, wrapperspb.BytesValue]{ClientStream: stream}
	if err := x.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

func _AssetService_Fetch_Handler(srv any, stream grpc.ServerStream) error {
	in := new(structpb.ListValue)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(AssetServiceServer).Fetch(
		in, &grpc.GenericServerStream[structpb.ListValue, wrapperspb.BytesValue]{ServerStream: stream},
	)
}

// AssetServiceDesc is the grpc.ServiceDesc of the asset service.
//
//nolint:gochecknoglobals // Service descriptors are package level by convention
var AssetServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AssetServiceServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Fetch",
			Handler:       _AssetService_Fetch_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "snapsync/assets/v1/assets.proto",
}
