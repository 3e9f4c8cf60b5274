// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/snapsync/internal/core/domain"
)

// AssetProvider resolves checksums to objects and fills the local cache.
//
//go:generate go run go.uber.org/mock/mockgen -source=assets.go -destination=mocks/mock_assets.go -package=mocks
type AssetProvider interface {
	// Resolve returns the object stored under c. It may fetch it if it is not cached.
	Resolve(ctx context.Context, c domain.Checksum) (domain.Object, error)

	// CacheContains reports whether c is already locally available. It never blocks on I/O
	// beyond a local lookup.
	CacheContains(c domain.Checksum) bool

	// SynchronizeAssets ensures every checksum in the set is locally available
	// when it returns without error. The set must not be mutated during the call.
	SynchronizeAssets(ctx context.Context, checksums domain.ChecksumSet) error
}

// AssetSource returns encoded objects for checksums, typically over the network.
type AssetSource interface {
	// Fetch returns the encoded bytes of each requested checksum.
	// Missing checksums are reported as domain.ErrAssetNotFound.
	Fetch(ctx context.Context, checksums []domain.Checksum) (map[domain.Checksum][]byte, error)
}

// RemoteSource is an AssetSource backed by a connection that must be closed.
type RemoteSource interface {
	AssetSource
	Close() error
}

// Transport connects clients and servers of the asset protocol.
type Transport interface {
	// Dial opens a RemoteSource for the configured address.
	Dial(ctx context.Context, cfg domain.RemoteConfig) (RemoteSource, error)

	// Serve exposes store until ctx is canceled or the server idles out.
	Serve(ctx context.Context, cfg domain.ServeConfig, store BlobStore) error
}

// AssetCache is the in-memory half of the local asset cache.
type AssetCache interface {
	Lookup(c domain.Checksum) (domain.Object, bool)
	Store(c domain.Checksum, obj domain.Object)
	Contains(c domain.Checksum) bool
	Len() int
}
