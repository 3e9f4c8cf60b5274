package ports

import (
	"context"

	"go.trai.ch/snapsync/internal/core/domain"
)

// SnapshotBuilder turns a directory into a checksum tree inside a BlobStore.
//
//go:generate go run go.uber.org/mock/mockgen -source=snapshot.go -destination=mocks/mock_snapshot.go -package=mocks
type SnapshotBuilder interface {
	// Build stores every object of the snapshot of dir and returns the solution checksum.
	Build(ctx context.Context, dir string, store BlobStore) (domain.Checksum, error)
}
