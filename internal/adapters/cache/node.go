package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/snapsync/internal/core/ports"
)

// NodeID is the unique identifier for the process-wide memory cache Graft node.
const NodeID graft.ID = "adapter.asset_cache"

func init() {
	graft.Register(graft.Node[ports.AssetCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.AssetCache, error) {
			return NewMemory(), nil
		},
	})
}
