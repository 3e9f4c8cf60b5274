package codec

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/snapsync/internal/core/ports"
)

// NodeID is the unique identifier for the object codec Graft node.
const NodeID graft.ID = "adapter.codec"

func init() {
	graft.Register(graft.Node[ports.Codec]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Codec, error) {
			return New(), nil
		},
	})
}
