package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/snapsync/internal/core/ports"
)

// OpenerNodeID is the unique identifier for the blob store opener Graft node.
const OpenerNodeID graft.ID = "adapter.blob_store_opener"

func init() {
	graft.Register(graft.Node[ports.BlobStoreOpener]{
		ID:        OpenerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BlobStoreOpener, error) {
			return NewOpener(), nil
		},
	})
}
