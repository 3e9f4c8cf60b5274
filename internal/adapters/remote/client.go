package remote

import (
	"context"
	"errors"
	"io"
	"time"

	"go.trai.ch/snapsync/internal/core/domain"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client fetches encoded objects from a remote asset server.
// It implements ports.RemoteSource.
type Client struct {
	conn    *grpc.ClientConn
	api     AssetServiceClient
	address string
	timeout time.Duration
}

// Dial creates a client for cfg.Address. The connection is established lazily on the first fetch.
func Dial(cfg domain.RemoteConfig, opts ...grpc.DialOption) (*Client, error) {
	if cfg.Address == "" {
		return nil, zerr.Wrap(domain.ErrRemoteDialFailed, "remote address is required")
	}

	dialOpts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	if cfg.MaxMessageBytes > 0 {
		dialOpts = append(dialOpts, grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(cfg.MaxMessageBytes),
			grpc.MaxCallSendMsgSize(cfg.MaxMessageBytes),
		))
	}
	dialOpts = append(dialOpts, opts...)

	conn, err := grpc.NewClient(cfg.Address, dialOpts...)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRemoteDialFailed.Error()), "address", cfg.Address)
	}
	return &Client{
		conn:    conn,
		api:     NewAssetServiceClient(conn),
		address: cfg.Address,
		timeout: cfg.Timeout,
	}, nil
}

// Fetch requests all checksums in a single call and returns their encoded bytes.
func (c *Client) Fetch(ctx context.Context, checksums []domain.Checksum) (map[domain.Checksum][]byte, error) {
	out := make(map[domain.Checksum][]byte, len(checksums))
	if len(checksums) == 0 {
		return out, nil
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req := &structpb.ListValue{Values: make([]*structpb.Value, len(checksums))}
	for i, cs := range checksums {
		req.Values[i] = structpb.NewStringValue(cs.String())
	}

	stream, err := c.api.Fetch(ctx, req)
	if err != nil {
		return nil, c.fetchError(ctx, err, len(checksums))
	}

	received := 0
	for {
		msg, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, c.fetchError(ctx, err, len(checksums))
		}
		if received >= len(checksums) {
			return nil, zerr.With(
				zerr.Wrap(domain.ErrRemoteFetchFailed, "server sent more objects than requested"),
				"requested", len(checksums),
			)
		}
		out[checksums[received]] = msg.GetValue()
		received++
	}

	if received < len(checksums) {
		err := zerr.Wrap(domain.ErrRemoteFetchFailed, "stream ended before all objects were sent")
		err = zerr.With(err, "requested", len(checksums))
		return nil, zerr.With(err, "received", received)
	}
	return out, nil
}

// Close releases the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) fetchError(ctx context.Context, err error, requested int) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return zerr.With(zerr.Wrap(ctxErr, domain.ErrRemoteFetchFailed.Error()), "address", c.address)
	}

	st, _ := status.FromError(err)
	var wrapped error
	switch st.Code() {
	case codes.NotFound:
		wrapped = zerr.Wrap(domain.ErrAssetNotFound, st.Message())
	case codes.InvalidArgument:
		wrapped = zerr.Wrap(domain.ErrInvalidChecksum, st.Message())
	case codes.DataLoss:
		wrapped = zerr.Wrap(domain.ErrChecksumMismatch, st.Message())
	default:
		wrapped = zerr.With(zerr.Wrap(err, domain.ErrRemoteFetchFailed.Error()), "code", st.Code().String())
	}
	wrapped = zerr.With(wrapped, "address", c.address)
	return zerr.With(wrapped, "requested", requested)
}
