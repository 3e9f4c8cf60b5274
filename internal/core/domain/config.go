package domain

import "time"

// Config holds the resolved configuration of snapsync.
type Config struct {
	Remote RemoteConfig
	Cache  CacheConfig
	Sync   SyncConfig
	Serve  ServeConfig
	Log    LogConfig
}

// RemoteConfig describes the remote asset source.
type RemoteConfig struct {
	// Address is the host:port of the asset server.
	Address string
	// Timeout bounds a single batch fetch. Zero disables the bound.
	Timeout time.Duration
	// MaxBatchSize is the number of checksums sent in one network call.
	MaxBatchSize int
	// MaxMessageBytes caps gRPC message sizes in both directions.
	MaxMessageBytes int
}

// CacheConfig describes the local persistent cache.
type CacheConfig struct {
	Dir string
}

// SyncConfig tunes the synchronizer.
type SyncConfig struct {
	// ProjectParallelism is the number of project nodes resolved concurrently.
	ProjectParallelism int
	// DocumentContents enables a fourth round that fetches the children of document nodes.
	DocumentContents bool
}

// ServeConfig describes the asset server.
type ServeConfig struct {
	Listen          string
	Store           string
	IdleTimeout     time.Duration
	MaxMessageBytes int
}

// LogConfig selects the log output format.
type LogConfig struct {
	JSON  bool
	Debug bool
}

const (
	// DefaultAddress is the default address of the asset server.
	DefaultAddress = "127.0.0.1:7420"
	// DefaultMaxBatchSize is the default number of checksums per network call.
	DefaultMaxBatchSize = 256
	// DefaultMaxMessageBytes is the default gRPC message cap (64 MiB).
	DefaultMaxMessageBytes = 64 << 20
	// DefaultTimeout is the default per batch fetch timeout.
	DefaultTimeout = 30 * time.Second
)

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Remote: RemoteConfig{
			Address:         DefaultAddress,
			Timeout:         DefaultTimeout,
			MaxBatchSize:    DefaultMaxBatchSize,
			MaxMessageBytes: DefaultMaxMessageBytes,
		},
		Cache: CacheConfig{
			Dir: DefaultCachePath(),
		},
		Sync: SyncConfig{
			ProjectParallelism: 1,
		},
		Serve: ServeConfig{
			Listen:          DefaultAddress,
			Store:           DefaultStorePath(),
			MaxMessageBytes: DefaultMaxMessageBytes,
		},
	}
}
