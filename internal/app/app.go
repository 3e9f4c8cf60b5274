// Package app implements the application layer for snapsync.
package app

import (
	"context"
	"errors"
	"os"
	"time"

	"go.trai.ch/snapsync/internal/adapters/assets"
	"go.trai.ch/snapsync/internal/core/domain"
	"go.trai.ch/snapsync/internal/core/ports"
	"go.trai.ch/snapsync/internal/engine/synchronizer"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	opener       ports.BlobStoreOpener
	transport    ports.Transport
	cache        ports.AssetCache
	codec        ports.Codec
	builder      ports.SnapshotBuilder
	tracer       ports.Tracer
	gate         *synchronizer.Gate
	workDir      string
}

// New creates a new App instance. The memory cache and the gate are shared by every
// synchronization the App runs.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	opener ports.BlobStoreOpener,
	transport ports.Transport,
	cache ports.AssetCache,
	codec ports.Codec,
	builder ports.SnapshotBuilder,
	tracer ports.Tracer,
	gate *synchronizer.Gate,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		opener:       opener,
		transport:    transport,
		cache:        cache,
		codec:        codec,
		builder:      builder,
		tracer:       tracer,
		gate:         gate,
	}
}

// WithWorkDir sets the directory config discovery starts from.
// The process working directory is used when unset.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// SyncOptions override configuration values for one synchronization.
// Zero values keep the configured value.
type SyncOptions struct {
	ConfigPath         string
	Address            string
	CacheDir           string
	Timeout            time.Duration
	MaxBatchSize       int
	ProjectParallelism int
	DocumentContents   *bool
}

// SyncSolution synchronizes the solution snapshot rooted at root.
func (a *App) SyncSolution(ctx context.Context, root string, opts SyncOptions) error {
	c, err := domain.ParseChecksum(root)
	if err != nil {
		return err
	}
	return a.synchronize(ctx, opts, "solution", 1, func(s *synchronizer.Synchronizer) error {
		return s.SynchronizeSolution(ctx, c)
	})
}

// SyncProjects synchronizes the given project nodes and their documents.
func (a *App) SyncProjects(ctx context.Context, projects []string, opts SyncOptions) error {
	set, err := parseChecksums(projects)
	if err != nil {
		return err
	}
	return a.synchronize(ctx, opts, "projects", set.Len(), func(s *synchronizer.Synchronizer) error {
		return s.SynchronizeProjects(ctx, set)
	})
}

// SyncAssets fetches the given checksums into the cache without descending into them.
func (a *App) SyncAssets(ctx context.Context, checksums []string, opts SyncOptions) error {
	set, err := parseChecksums(checksums)
	if err != nil {
		return err
	}
	return a.synchronize(ctx, opts, "assets", set.Len(), func(s *synchronizer.Synchronizer) error {
		return s.SynchronizeAssets(ctx, set)
	})
}

func (a *App) synchronize(
	ctx context.Context,
	opts SyncOptions,
	mode string,
	roots int,
	run func(*synchronizer.Synchronizer) error,
) error {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	applySyncOptions(cfg, opts)

	store, err := a.opener.Open(cfg.Cache.Dir)
	if err != nil {
		return zerr.Wrap(err, "failed to open local cache")
	}

	source, err := a.transport.Dial(ctx, cfg.Remote)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := source.Close(); cerr != nil {
			a.logger.Warn("failed to close remote connection", "error", cerr.Error())
		}
	}()

	provider := assets.NewProvider(source, a.cache, store, a.codec, assets.Options{
		MaxBatchSize: cfg.Remote.MaxBatchSize,
		FetchTimeout: cfg.Remote.Timeout,
	})
	sync := synchronizer.New(provider, a.gate, a.tracer, synchronizer.Options{
		ProjectParallelism: cfg.Sync.ProjectParallelism,
		DocumentContents:   cfg.Sync.DocumentContents,
	})

	a.logger.Debug("synchronizing", "mode", mode, "roots", roots, "remote", cfg.Remote.Address)
	start := time.Now()
	if err := run(sync); err != nil {
		return errors.Join(domain.ErrSyncFailed, err)
	}

	stats := provider.Stats()
	a.logger.Info("synchronized",
		"mode", mode,
		"batches", stats.Batches,
		"fetched", stats.Fetched,
		"cached", a.cache.Len(),
		"duration", time.Since(start).Round(time.Millisecond).String(),
	)
	return nil
}

// PublishOptions override configuration values for Publish.
type PublishOptions struct {
	ConfigPath string
	Store      string
}

// Publish stores the snapshot of dir in the serve store and returns its root checksum.
func (a *App) Publish(ctx context.Context, dir string, opts PublishOptions) (domain.Checksum, error) {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return domain.NullChecksum, err
	}
	if opts.Store != "" {
		cfg.Serve.Store = opts.Store
	}

	store, err := a.opener.Open(cfg.Serve.Store)
	if err != nil {
		return domain.NullChecksum, zerr.Wrap(err, "failed to open snapshot store")
	}

	root, err := a.builder.Build(ctx, dir, store)
	if err != nil {
		return domain.NullChecksum, err
	}

	a.logger.Info("published snapshot", "root", root.String(), "store", cfg.Serve.Store)
	return root, nil
}

// ServeOptions override configuration values for Serve.
type ServeOptions struct {
	ConfigPath  string
	Listen      string
	Store       string
	IdleTimeout *time.Duration
}

// Serve exposes the snapshot store until ctx is canceled or the server idles out.
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.Listen != "" {
		cfg.Serve.Listen = opts.Listen
	}
	if opts.Store != "" {
		cfg.Serve.Store = opts.Store
	}
	if opts.IdleTimeout != nil {
		cfg.Serve.IdleTimeout = *opts.IdleTimeout
	}

	store, err := a.opener.Open(cfg.Serve.Store)
	if err != nil {
		return zerr.Wrap(err, "failed to open snapshot store")
	}
	return a.transport.Serve(ctx, cfg.Serve, store)
}

func (a *App) loadConfig(path string) (*domain.Config, error) {
	var (
		cfg *domain.Config
		err error
	)
	if path != "" {
		cfg, err = a.configLoader.LoadFile(path)
	} else {
		dir := a.workDir
		if dir == "" {
			if dir, err = os.Getwd(); err != nil {
				return nil, zerr.Wrap(err, "failed to determine working directory")
			}
		}
		cfg, err = a.configLoader.Load(dir)
	}
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if cfg.Log.JSON {
		a.logger.SetJSON(true)
	}
	if cfg.Log.Debug {
		a.logger.SetDebug(true)
	}
	return cfg, nil
}

func applySyncOptions(cfg *domain.Config, opts SyncOptions) {
	if opts.Address != "" {
		cfg.Remote.Address = opts.Address
	}
	if opts.CacheDir != "" {
		cfg.Cache.Dir = opts.CacheDir
	}
	if opts.Timeout > 0 {
		cfg.Remote.Timeout = opts.Timeout
	}
	if opts.MaxBatchSize > 0 {
		cfg.Remote.MaxBatchSize = opts.MaxBatchSize
	}
	if opts.ProjectParallelism > 0 {
		cfg.Sync.ProjectParallelism = opts.ProjectParallelism
	}
	if opts.DocumentContents != nil {
		cfg.Sync.DocumentContents = *opts.DocumentContents
	}
}

func parseChecksums(args []string) (domain.ChecksumSet, error) {
	if len(args) == 0 {
		return nil, domain.ErrNoChecksumsSpecified
	}
	set := domain.NewChecksumSet()
	for _, arg := range args {
		c, err := domain.ParseChecksum(arg)
		if err != nil {
			return nil, err
		}
		set.Add(c)
	}
	return set, nil
}
