package synchronizer

import (
	"context"

	"github.com/grindlemire/graft"
)

// GateNodeID is the unique identifier for the process-wide admission gate.
const GateNodeID graft.ID = "engine.gate"

func init() {
	graft.Register(graft.Node[*Gate]{
		ID:        GateNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Gate, error) {
			return NewGate(), nil
		},
	})
}
