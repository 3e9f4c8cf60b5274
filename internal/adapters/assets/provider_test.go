package assets_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/snapsync/internal/adapters/assets"
	"go.trai.ch/snapsync/internal/adapters/cache"
	"go.trai.ch/snapsync/internal/adapters/cas"
	"go.trai.ch/snapsync/internal/adapters/codec"
	"go.trai.ch/snapsync/internal/core/domain"
	"go.trai.ch/snapsync/internal/core/ports"
	"go.trai.ch/snapsync/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var _ ports.AssetProvider = (*assets.Provider)(nil)

// remote holds encoded blobs keyed by checksum.
type remote map[domain.Checksum][]byte

func newRemote(t *testing.T, n int) (remote, []domain.Checksum) {
	t.Helper()
	c := codec.New()
	r := make(remote, n)
	keys := make([]domain.Checksum, 0, n)
	for i := range n {
		checksum, data, err := c.Checksum(&domain.Blob{Data: fmt.Appendf(nil, "document %d", i)})
		require.NoError(t, err)
		r[checksum] = data
		keys = append(keys, checksum)
	}
	return r, keys
}

func (r remote) serve(_ context.Context, checksums []domain.Checksum) (map[domain.Checksum][]byte, error) {
	out := make(map[domain.Checksum][]byte, len(checksums))
	for _, c := range checksums {
		if data, ok := r[c]; ok {
			out[c] = data
		}
	}
	return out, nil
}

func newProvider(t *testing.T, source ports.AssetSource, batch int) (*assets.Provider, *cache.Memory, *cas.Store) {
	t.Helper()
	store, err := cas.NewStore(t.TempDir())
	require.NoError(t, err)
	memory := cache.NewMemory()
	return assets.NewProvider(source, memory, store, codec.New(), assets.Options{MaxBatchSize: batch}), memory, store
}

func TestProvider_SynchronizeAssets_Batches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, keys := newRemote(t, 5)
	source := mocks.NewMockAssetSource(ctrl)
	source.EXPECT().Fetch(gomock.Any(), gomock.Len(2)).DoAndReturn(r.serve).Times(2)
	source.EXPECT().Fetch(gomock.Any(), gomock.Len(1)).DoAndReturn(r.serve).Times(1)

	p, memory, store := newProvider(t, source, 2)
	require.NoError(t, p.SynchronizeAssets(context.Background(), domain.NewChecksumSet(keys...)))

	for _, c := range keys {
		assert.True(t, p.CacheContains(c))
		assert.True(t, memory.Contains(c))
		assert.True(t, store.Has(c))
	}
	assert.Equal(t, assets.Stats{Batches: 3, Fetched: 5}, p.Stats())
}

func TestProvider_SynchronizeAssets_SkipsResident(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, keys := newRemote(t, 3)
	source := mocks.NewMockAssetSource(ctrl)
	p, memory, store := newProvider(t, source, 10)

	memory.Store(keys[0], &domain.Blob{})
	require.NoError(t, store.Put(keys[1], r[keys[1]]))

	source.EXPECT().Fetch(gomock.Any(), []domain.Checksum{keys[2]}).DoAndReturn(r.serve)

	set := domain.NewChecksumSet(keys...)
	set.Add(domain.NullChecksum)
	require.NoError(t, p.SynchronizeAssets(context.Background(), set))
	assert.Equal(t, int64(1), p.Stats().Fetched)
}

func TestProvider_SynchronizeAssets_MissingPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, keys := newRemote(t, 1)
	source := mocks.NewMockAssetSource(ctrl)
	source.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(map[domain.Checksum][]byte{}, nil)

	p, _, _ := newProvider(t, source, 10)
	err := p.SynchronizeAssets(context.Background(), domain.NewChecksumSet(keys...))
	require.ErrorIs(t, err, domain.ErrAssetNotFound)
	assert.False(t, p.CacheContains(keys[0]))
}

func TestProvider_SynchronizeAssets_CorruptPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, keys := newRemote(t, 1)
	source := mocks.NewMockAssetSource(ctrl)
	source.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(map[domain.Checksum][]byte{
		keys[0]: []byte(`{"kind":"blob","data":"ZXZpbA=="}`),
	}, nil)

	p, _, _ := newProvider(t, source, 10)
	err := p.SynchronizeAssets(context.Background(), domain.NewChecksumSet(keys...))
	require.ErrorIs(t, err, domain.ErrChecksumMismatch)
}

func TestProvider_SynchronizeAssets_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, keys := newRemote(t, 1)
	transportErr := errors.New("connection reset")
	source := mocks.NewMockAssetSource(ctrl)
	source.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, transportErr)

	p, _, _ := newProvider(t, source, 10)
	err := p.SynchronizeAssets(context.Background(), domain.NewChecksumSet(keys...))
	require.ErrorIs(t, err, transportErr)
	assert.Equal(t, assets.Stats{}, p.Stats())
}

func TestProvider_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, keys := newRemote(t, 3)
	source := mocks.NewMockAssetSource(ctrl)
	p, memory, store := newProvider(t, source, 10)

	t.Run("memory hit", func(t *testing.T) {
		blob := &domain.Blob{Data: []byte("cached")}
		memory.Store(keys[0], blob)

		got, err := p.Resolve(context.Background(), keys[0])
		require.NoError(t, err)
		assert.Same(t, blob, got)
	})

	t.Run("store hit is promoted", func(t *testing.T) {
		require.NoError(t, store.Put(keys[1], r[keys[1]]))

		got, err := p.Resolve(context.Background(), keys[1])
		require.NoError(t, err)
		assert.Equal(t, domain.KindBlob, got.Kind())
		assert.True(t, memory.Contains(keys[1]))
	})

	t.Run("remote fetch", func(t *testing.T) {
		source.EXPECT().Fetch(gomock.Any(), []domain.Checksum{keys[2]}).DoAndReturn(r.serve)

		got, err := p.Resolve(context.Background(), keys[2])
		require.NoError(t, err)
		assert.Equal(t, domain.KindBlob, got.Kind())
		assert.True(t, store.Has(keys[2]))
	})

	t.Run("null", func(t *testing.T) {
		_, err := p.Resolve(context.Background(), domain.NullChecksum)
		require.ErrorIs(t, err, domain.ErrAssetNotFound)
	})

	t.Run("unknown", func(t *testing.T) {
		unknown := domain.ChecksumOf([]byte("unknown"))
		source.EXPECT().Fetch(gomock.Any(), []domain.Checksum{unknown}).DoAndReturn(r.serve)

		_, err := p.Resolve(context.Background(), unknown)
		require.ErrorIs(t, err, domain.ErrAssetNotFound)
	})
}

func TestProvider_Resolve_SharesConcurrentFetch(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		r, keys := newRemote(t, 1)
		release := make(chan struct{})
		source := mocks.NewMockAssetSource(ctrl)
		source.EXPECT().Fetch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, checksums []domain.Checksum) (map[domain.Checksum][]byte, error) {
				<-release
				return r.serve(ctx, checksums)
			}).Times(1)

		p := assets.NewProvider(source, cache.NewMemory(), nil, codec.New(), assets.Options{})

		var wg sync.WaitGroup
		results := make([]domain.Object, 8)
		for i := range results {
			wg.Go(func() {
				obj, err := p.Resolve(context.Background(), keys[0])
				assert.NoError(t, err)
				results[i] = obj
			})
		}

		synctest.Wait()
		close(release)
		wg.Wait()

		for _, obj := range results {
			assert.Same(t, results[0], obj)
		}
	})
}

// writePartial leaves the first half of data at the store path of c, as a crashed
// writer would.
func writePartial(t *testing.T, store *cas.Store, c domain.Checksum, data []byte) {
	t.Helper()
	id, err := cas.CIDFor(c)
	require.NoError(t, err)
	path := filepath.Join(store.Root(), id.String()[:2], id.String())
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, data[:len(data)/2], domain.FilePerm))
}

func TestProvider_SynchronizeAssets_RefetchesPartialBlob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, keys := newRemote(t, 1)
	source := mocks.NewMockAssetSource(ctrl)
	source.EXPECT().Fetch(gomock.Any(), []domain.Checksum{keys[0]}).DoAndReturn(r.serve).Times(1)

	p, _, store := newProvider(t, source, 10)
	writePartial(t, store, keys[0], r[keys[0]])

	assert.False(t, p.CacheContains(keys[0]))
	require.NoError(t, p.SynchronizeAssets(context.Background(), domain.NewChecksumSet(keys...)))

	got, err := p.Resolve(context.Background(), keys[0])
	require.NoError(t, err)
	assert.Equal(t, domain.KindBlob, got.Kind())

	data, err := store.Get(keys[0])
	require.NoError(t, err)
	assert.Equal(t, r[keys[0]], data)

	// A second provider over the repaired store needs no fetch.
	fresh := assets.NewProvider(source, cache.NewMemory(), store, codec.New(), assets.Options{})
	require.NoError(t, fresh.SynchronizeAssets(context.Background(), domain.NewChecksumSet(keys...)))
	_, err = fresh.Resolve(context.Background(), keys[0])
	require.NoError(t, err)
}

func TestProvider_Resolve_RefetchesPartialBlob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, keys := newRemote(t, 1)
	source := mocks.NewMockAssetSource(ctrl)
	source.EXPECT().Fetch(gomock.Any(), []domain.Checksum{keys[0]}).DoAndReturn(r.serve).Times(1)

	p, memory, store := newProvider(t, source, 10)
	writePartial(t, store, keys[0], r[keys[0]])

	got, err := p.Resolve(context.Background(), keys[0])
	require.NoError(t, err)
	assert.Equal(t, domain.KindBlob, got.Kind())
	assert.True(t, memory.Contains(keys[0]))
	assert.True(t, store.Has(keys[0]))
}

func TestProvider_Resolve_CallerCancellationIsNotShared(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		r, keys := newRemote(t, 1)
		release := make(chan struct{})
		source := mocks.NewMockAssetSource(ctrl)
		source.EXPECT().Fetch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, checksums []domain.Checksum) (map[domain.Checksum][]byte, error) {
				select {
				case <-release:
				case <-ctx.Done():
					return nil, ctx.Err()
				}
				return r.serve(ctx, checksums)
			}).Times(1)

		p := assets.NewProvider(source, cache.NewMemory(), nil, codec.New(), assets.Options{})

		firstCtx, cancelFirst := context.WithCancel(context.Background())
		firstErr := make(chan error, 1)
		go func() {
			_, err := p.Resolve(firstCtx, keys[0])
			firstErr <- err
		}()
		synctest.Wait()

		secondDone := make(chan domain.Object, 1)
		go func() {
			obj, err := p.Resolve(context.Background(), keys[0])
			assert.NoError(t, err)
			secondDone <- obj
		}()
		synctest.Wait()

		cancelFirst()
		require.ErrorIs(t, <-firstErr, context.Canceled)

		close(release)
		obj := <-secondDone
		require.NotNil(t, obj)
		assert.Equal(t, domain.KindBlob, obj.Kind())
	})
}

func TestProvider_Resolve_SharedFetchTimeout(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		_, keys := newRemote(t, 1)
		source := mocks.NewMockAssetSource(ctrl)
		source.EXPECT().Fetch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ []domain.Checksum) (map[domain.Checksum][]byte, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			})

		p := assets.NewProvider(source, cache.NewMemory(), nil, codec.New(), assets.Options{
			FetchTimeout: time.Second,
		})

		_, err := p.Resolve(context.Background(), keys[0])
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
