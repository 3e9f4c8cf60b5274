package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/snapsync/internal/adapters/cache"     //nolint:depguard // Wired in app layer
	"go.trai.ch/snapsync/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/snapsync/internal/adapters/codec"     //nolint:depguard // Wired in app layer
	"go.trai.ch/snapsync/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/snapsync/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/snapsync/internal/adapters/remote"    //nolint:depguard // Wired in app layer
	"go.trai.ch/snapsync/internal/adapters/snapshot"  //nolint:depguard // Wired in app layer
	"go.trai.ch/snapsync/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/snapsync/internal/core/ports"
	"go.trai.ch/snapsync/internal/engine/synchronizer"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			cas.OpenerNodeID,
			remote.NodeID,
			cache.NodeID,
			codec.NodeID,
			snapshot.NodeID,
			telemetry.TracerNodeID,
			synchronizer.GateNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	opener, err := graft.Dep[ports.BlobStoreOpener](ctx)
	if err != nil {
		return nil, err
	}

	transport, err := graft.Dep[ports.Transport](ctx)
	if err != nil {
		return nil, err
	}

	memory, err := graft.Dep[ports.AssetCache](ctx)
	if err != nil {
		return nil, err
	}

	c, err := graft.Dep[ports.Codec](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[ports.SnapshotBuilder](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	gate, err := graft.Dep[*synchronizer.Gate](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, opener, transport, memory, c, builder, tracer, gate), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    a,
		Logger: log,
		Tracer: tracer,
	}, nil
}
