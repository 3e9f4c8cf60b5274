package remote

import (
	"context"
	"errors"
	"net"
	"time"

	"go.trai.ch/snapsync/internal/core/domain"
	"go.trai.ch/snapsync/internal/core/ports"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
)

// Transport implements ports.Transport over gRPC.
type Transport struct {
	logger      ports.Logger
	dialOptions []grpc.DialOption
}

// NewTransport creates a transport. Extra dial options are applied to every Dial.
func NewTransport(logger ports.Logger, dialOptions ...grpc.DialOption) *Transport {
	return &Transport{logger: logger, dialOptions: dialOptions}
}

// Dial implements ports.Transport.
func (t *Transport) Dial(ctx context.Context, cfg domain.RemoteConfig) (ports.RemoteSource, error) {
	if err := ctx.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrRemoteDialFailed.Error())
	}
	client, err := Dial(cfg, t.dialOptions...)
	if err != nil {
		return nil, err
	}
	t.logger.Debug("remote asset source ready", "address", cfg.Address)
	return client, nil
}

// Serve implements ports.Transport. It listens on cfg.Listen over TCP.
func (t *Transport) Serve(ctx context.Context, cfg domain.ServeConfig, store ports.BlobStore) error {
	var lc net.ListenConfig
	lis, err := lc.Listen(ctx, "tcp", cfg.Listen)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrServeFailed.Error()), "address", cfg.Listen)
	}
	return t.ServeListener(ctx, lis, cfg, store)
}

// ServeListener serves store on lis until ctx is canceled or the server idles out.
// Both endings return nil.
func (t *Transport) ServeListener(
	ctx context.Context, lis net.Listener, cfg domain.ServeConfig, store ports.BlobStore,
) error {
	lifecycle := NewLifecycle(cfg.IdleTimeout)
	defer lifecycle.Shutdown()

	srv := NewServer(store, lifecycle, cfg.MaxMessageBytes)
	t.logger.Info("serving assets", "address", lis.Addr().String(), "idle_timeout", cfg.IdleTimeout.String())

	err := srv.Serve(ctx, lis)
	switch {
	case err == nil:
		t.logger.Info("asset server idle, shutting down",
			"uptime", lifecycle.Uptime().Round(time.Millisecond).String(),
			"last_activity", lifecycle.LastActivity().Format(time.RFC3339),
		)
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		t.logger.Info("asset server stopped", "uptime", lifecycle.Uptime().Round(time.Millisecond).String())
		return nil
	default:
		return zerr.With(zerr.Wrap(err, domain.ErrServeFailed.Error()), "address", lis.Addr().String())
	}
}
