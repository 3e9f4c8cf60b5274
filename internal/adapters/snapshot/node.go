package snapshot

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/snapsync/internal/adapters/codec"
	"go.trai.ch/snapsync/internal/core/ports"
)

// NodeID is the unique identifier for the snapshot builder Graft node.
const NodeID graft.ID = "adapter.snapshot_builder"

func init() {
	graft.Register(graft.Node[ports.SnapshotBuilder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{codec.NodeID},
		Run: func(ctx context.Context) (ports.SnapshotBuilder, error) {
			c, err := graft.Dep[ports.Codec](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(c), nil
		},
	})
}
