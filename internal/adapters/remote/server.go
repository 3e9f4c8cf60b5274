package remote

import (
	"context"
	"errors"
	"net"

	"go.trai.ch/snapsync/internal/core/domain"
	"go.trai.ch/snapsync/internal/core/ports"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Server serves encoded objects from a BlobStore.
type Server struct {
	UnimplementedAssetServiceServer
	store      ports.BlobStore
	lifecycle  *Lifecycle
	grpcServer *grpc.Server
}

// NewServer creates a server over store. maxMessageBytes caps both directions; zero keeps
// the gRPC defaults.
func NewServer(store ports.BlobStore, lifecycle *Lifecycle, maxMessageBytes int) *Server {
	var opts []grpc.ServerOption
	if maxMessageBytes > 0 {
		opts = append(opts,
			grpc.MaxRecvMsgSize(maxMessageBytes),
			grpc.MaxSendMsgSize(maxMessageBytes),
		)
	}
	s := &Server{
		store:      store,
		lifecycle:  lifecycle,
		grpcServer: grpc.NewServer(opts...),
	}
	RegisterAssetServiceServer(s.grpcServer, s)
	return s
}

// Lifecycle returns the activity tracker of the server.
func (s *Server) Lifecycle() *Lifecycle {
	return s.lifecycle
}

// Serve accepts connections on lis until ctx is canceled or the lifecycle signals shutdown.
// An idle shutdown returns nil.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.grpcServer.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		s.grpcServer.GracefulStop()
		return ctx.Err()
	case <-s.lifecycle.Done():
		s.grpcServer.GracefulStop()
		return nil
	case err := <-errCh:
		return err
	}
}

// Fetch implements AssetServiceServer.
func (s *Server) Fetch(req *structpb.ListValue, stream grpc.ServerStreamingServer[wrapperspb.BytesValue]) error {
	s.lifecycle.Touch()
	defer s.lifecycle.Touch()

	values := req.GetValues()
	checksums := make([]domain.Checksum, len(values))
	for i, v := range values {
		c, err := domain.ParseChecksum(v.GetStringValue())
		if err != nil {
			return status.Errorf(codes.InvalidArgument, "checksum %d: %v", i, err)
		}
		checksums[i] = c
	}

	for _, c := range checksums {
		if err := stream.Context().Err(); err != nil {
			return status.FromContextError(err).Err()
		}
		data, err := s.store.Get(c)
		if err != nil {
			return toStatus(c, err)
		}
		if err := stream.Send(wrapperspb.Bytes(data)); err != nil {
			return err
		}
	}
	return nil
}

func toStatus(c domain.Checksum, err error) error {
	switch {
	case errors.Is(err, domain.ErrAssetNotFound):
		return status.Errorf(codes.NotFound, "%s: %v", c, err)
	case errors.Is(err, domain.ErrChecksumMismatch):
		return status.Errorf(codes.DataLoss, "%s: %v", c, err)
	default:
		return status.Errorf(codes.Internal, "%s: %v", c, err)
	}
}
