package app_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/snapsync/internal/adapters/cache"
	"go.trai.ch/snapsync/internal/adapters/cas"
	"go.trai.ch/snapsync/internal/adapters/codec"
	"go.trai.ch/snapsync/internal/adapters/snapshot"
	"go.trai.ch/snapsync/internal/adapters/telemetry"
	"go.trai.ch/snapsync/internal/app"
	"go.trai.ch/snapsync/internal/core/domain"
	"go.trai.ch/snapsync/internal/core/ports"
	"go.trai.ch/snapsync/internal/core/ports/mocks"
	"go.trai.ch/snapsync/internal/engine/synchronizer"
	"go.uber.org/mock/gomock"
)

const workDir = "/work"

// graph is an encoded checksum graph served by a fake remote.
type graph struct {
	objects map[domain.Checksum][]byte
}

func (g *graph) add(t *testing.T, obj domain.Object) domain.Checksum {
	t.Helper()
	c, data, err := codec.New().Checksum(obj)
	require.NoError(t, err)
	g.objects[c] = data
	return c
}

func (g *graph) fetch(_ context.Context, checksums []domain.Checksum) (map[domain.Checksum][]byte, error) {
	out := make(map[domain.Checksum][]byte, len(checksums))
	for _, c := range checksums {
		data, ok := g.objects[c]
		if !ok {
			return nil, fmt.Errorf("%s: %w", c.Short(), domain.ErrAssetNotFound)
		}
		out[c] = data
	}
	return out, nil
}

// solution is root -> info, project -> document -> text.
type solution struct {
	graph
	root, info, project, document, text domain.Checksum
}

func newSolution(t *testing.T) *solution {
	t.Helper()
	s := &solution{graph: graph{objects: make(map[domain.Checksum][]byte)}}
	s.text = s.add(t, &domain.Blob{Data: []byte("class Program {}")})
	s.document = s.add(t, &domain.ChildNode{Children: []domain.ChildRef{s.text}})
	s.project = s.add(t, &domain.ProjectNode{Documents: []domain.Checksum{s.document}})
	s.info = s.add(t, &domain.Blob{Data: []byte("Solution")})
	s.root = s.add(t, &domain.SolutionNode{
		Children: []domain.ChildRef{s.info},
		Projects: []domain.Checksum{s.project},
	})
	return s
}

type fixture struct {
	cfg       domain.Config
	loader    *mocks.MockConfigLoader
	log       *mocks.MockLogger
	transport *mocks.MockTransport
	source    *mocks.MockRemoteSource
	memory    *cache.Memory
	app       *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		cfg:       domain.DefaultConfig(),
		loader:    mocks.NewMockConfigLoader(ctrl),
		log:       mocks.NewMockLogger(ctrl),
		transport: mocks.NewMockTransport(ctrl),
		source:    mocks.NewMockRemoteSource(ctrl),
		memory:    cache.NewMemory(),
	}
	f.cfg.Cache.Dir = t.TempDir()
	f.cfg.Serve.Store = t.TempDir()

	f.loader.EXPECT().Load(workDir).DoAndReturn(func(string) (*domain.Config, error) {
		cfg := f.cfg
		return &cfg, nil
	}).AnyTimes()
	f.log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	f.log.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()

	f.app = newApp(f.loader, f.log, f.transport, f.memory)
	return f
}

func newApp(loader ports.ConfigLoader, log ports.Logger, transport ports.Transport, memory ports.AssetCache) *app.App {
	return app.New(
		loader,
		log,
		cas.NewOpener(),
		transport,
		memory,
		codec.New(),
		snapshot.NewBuilder(codec.New()),
		telemetry.NewNoOpTracer(),
		synchronizer.NewGate(),
	).WithWorkDir(workDir)
}

func (f *fixture) serve(g *graph) {
	f.transport.EXPECT().Dial(gomock.Any(), gomock.Any()).Return(f.source, nil)
	f.source.EXPECT().Fetch(gomock.Any(), gomock.Any()).DoAndReturn(g.fetch).AnyTimes()
	f.source.EXPECT().Close().Return(nil)
}

func TestApp_SyncSolution(t *testing.T) {
	f := newFixture(t)
	s := newSolution(t)
	f.serve(&s.graph)

	err := f.app.SyncSolution(t.Context(), s.root.String(), app.SyncOptions{})
	require.NoError(t, err)

	for _, c := range []domain.Checksum{s.root, s.info, s.project, s.document} {
		assert.True(t, f.memory.Contains(c), c.Short())
	}
	assert.False(t, f.memory.Contains(s.text), "document contents are not fetched by default")

	store, err := cas.NewStore(f.cfg.Cache.Dir)
	require.NoError(t, err)
	assert.True(t, store.Has(s.document))
}

func TestApp_SyncSolution_DocumentContents(t *testing.T) {
	f := newFixture(t)
	s := newSolution(t)
	f.serve(&s.graph)

	enabled := true
	err := f.app.SyncSolution(t.Context(), s.root.String(), app.SyncOptions{DocumentContents: &enabled})
	require.NoError(t, err)

	assert.True(t, f.memory.Contains(s.text))
}

func TestApp_SyncSolution_PersistentCache(t *testing.T) {
	f := newFixture(t)
	s := newSolution(t)
	f.serve(&s.graph)
	require.NoError(t, f.app.SyncSolution(t.Context(), s.root.String(), app.SyncOptions{}))

	// A fresh process shares only the on-disk cache.
	ctrl := gomock.NewController(t)
	source := mocks.NewMockRemoteSource(ctrl)
	transport := mocks.NewMockTransport(ctrl)
	transport.EXPECT().Dial(gomock.Any(), gomock.Any()).Return(source, nil)
	source.EXPECT().Fetch(gomock.Any(), gomock.Any()).Times(0)
	source.EXPECT().Close().Return(nil)

	memory := cache.NewMemory()
	err := newApp(f.loader, f.log, transport, memory).SyncSolution(t.Context(), s.root.String(), app.SyncOptions{})
	require.NoError(t, err)
	assert.True(t, memory.Contains(s.project))
}

func TestApp_SyncSolution_InvalidChecksum(t *testing.T) {
	f := newFixture(t)

	err := f.app.SyncSolution(t.Context(), "not-a-checksum", app.SyncOptions{})

	assert.ErrorIs(t, err, domain.ErrInvalidChecksum)
}

func TestApp_SyncSolution_NotFound(t *testing.T) {
	f := newFixture(t)
	s := newSolution(t)
	delete(s.objects, s.document)
	f.serve(&s.graph)

	err := f.app.SyncSolution(t.Context(), s.root.String(), app.SyncOptions{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSyncFailed)
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func TestApp_SyncSolution_DialFailure(t *testing.T) {
	f := newFixture(t)
	f.transport.EXPECT().Dial(gomock.Any(), gomock.Any()).Return(nil, domain.ErrRemoteDialFailed)

	err := f.app.SyncSolution(t.Context(), newSolution(t).root.String(), app.SyncOptions{})

	assert.ErrorIs(t, err, domain.ErrRemoteDialFailed)
}

func TestApp_SyncOptionsOverrideConfig(t *testing.T) {
	f := newFixture(t)
	s := newSolution(t)

	var dialed domain.RemoteConfig
	f.transport.EXPECT().Dial(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cfg domain.RemoteConfig) (ports.RemoteSource, error) {
			dialed = cfg
			return f.source, nil
		})
	f.source.EXPECT().Fetch(gomock.Any(), gomock.Len(1)).DoAndReturn(s.fetch).Times(2)
	f.source.EXPECT().Close().Return(nil)

	err := f.app.SyncAssets(t.Context(), []string{s.info.String(), s.text.String()}, app.SyncOptions{
		Address:      "assets.internal:9000",
		Timeout:      time.Second,
		MaxBatchSize: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, "assets.internal:9000", dialed.Address)
	assert.Equal(t, time.Second, dialed.Timeout)
	assert.Equal(t, 1, dialed.MaxBatchSize)
}

func TestApp_SyncProjects(t *testing.T) {
	f := newFixture(t)
	s := newSolution(t)
	f.serve(&s.graph)

	err := f.app.SyncProjects(t.Context(), []string{s.project.String()}, app.SyncOptions{})
	require.NoError(t, err)

	assert.True(t, f.memory.Contains(s.project))
	assert.True(t, f.memory.Contains(s.document))
	assert.False(t, f.memory.Contains(s.root))
}

func TestApp_NoChecksums(t *testing.T) {
	f := newFixture(t)

	assert.ErrorIs(t, f.app.SyncProjects(t.Context(), nil, app.SyncOptions{}), domain.ErrNoChecksumsSpecified)
	assert.ErrorIs(t, f.app.SyncAssets(t.Context(), nil, app.SyncOptions{}), domain.ErrNoChecksumsSpecified)
}

func TestApp_ConfigFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	errBroken := errors.New("broken yaml")
	loader.EXPECT().LoadFile("/etc/snapsync.yaml").Return(nil, errBroken)

	a := newApp(loader, mocks.NewMockLogger(ctrl), mocks.NewMockTransport(ctrl), cache.NewMemory())
	err := a.SyncSolution(t.Context(), newSolution(t).root.String(), app.SyncOptions{ConfigPath: "/etc/snapsync.yaml"})

	assert.ErrorIs(t, err, errBroken)
}

func TestApp_ConfigLogSettings(t *testing.T) {
	f := newFixture(t)
	f.cfg.Log = domain.LogConfig{JSON: true, Debug: true}
	f.log.EXPECT().SetJSON(true)
	f.log.EXPECT().SetDebug(true)

	f.serve(&newSolution(t).graph)
	require.NoError(t, f.app.SyncAssets(t.Context(), []string{domain.NullChecksum.String()}, app.SyncOptions{}))
}

func TestApp_Publish(t *testing.T) {
	f := newFixture(t)
	dir := t.TempDir()
	writeFile(t, dir, "App/Program.cs", "class Program {}")

	root, err := f.app.Publish(t.Context(), dir, app.PublishOptions{})
	require.NoError(t, err)

	store, err := cas.NewStore(f.cfg.Serve.Store)
	require.NoError(t, err)
	assert.True(t, store.Has(root))
}

func TestApp_Publish_StoreOverride(t *testing.T) {
	f := newFixture(t)
	dir := t.TempDir()
	writeFile(t, dir, "App/Program.cs", "class Program {}")
	storeDir := t.TempDir()

	root, err := f.app.Publish(t.Context(), dir, app.PublishOptions{Store: storeDir})
	require.NoError(t, err)

	store, err := cas.NewStore(storeDir)
	require.NoError(t, err)
	assert.True(t, store.Has(root))
}

func TestApp_Serve(t *testing.T) {
	f := newFixture(t)
	idle := 5 * time.Minute

	f.transport.EXPECT().Serve(gomock.Any(), domain.ServeConfig{
		Listen:          "0.0.0.0:9000",
		Store:           f.cfg.Serve.Store,
		IdleTimeout:     idle,
		MaxMessageBytes: domain.DefaultMaxMessageBytes,
	}, gomock.Any()).Return(nil)

	err := f.app.Serve(t.Context(), app.ServeOptions{Listen: "0.0.0.0:9000", IdleTimeout: &idle})
	require.NoError(t, err)
}
