package ports

import "go.trai.ch/snapsync/internal/core/domain"

// BlobStore persists encoded objects keyed by their checksum.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BlobStore interface {
	// Get returns the stored bytes. It returns domain.ErrAssetNotFound when absent.
	Get(c domain.Checksum) ([]byte, error)

	// Put stores data under c. The data must hash to c.
	// Writing identical bytes twice is a no-op.
	Put(c domain.Checksum, data []byte) error

	// Has reports whether c is stored.
	Has(c domain.Checksum) bool
}

// BlobStoreOpener opens a BlobStore rooted at a directory.
type BlobStoreOpener interface {
	Open(dir string) (BlobStore, error)
}
