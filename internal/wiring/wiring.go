// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/snapsync/internal/adapters/cache"
	_ "go.trai.ch/snapsync/internal/adapters/cas"
	_ "go.trai.ch/snapsync/internal/adapters/codec"
	_ "go.trai.ch/snapsync/internal/adapters/config"
	_ "go.trai.ch/snapsync/internal/adapters/logger"
	_ "go.trai.ch/snapsync/internal/adapters/remote"
	_ "go.trai.ch/snapsync/internal/adapters/snapshot"
	_ "go.trai.ch/snapsync/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/snapsync/internal/app"
	_ "go.trai.ch/snapsync/internal/engine/synchronizer"
)
