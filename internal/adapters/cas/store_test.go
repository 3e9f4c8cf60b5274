package cas_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/snapsync/internal/adapters/cas"
	"go.trai.ch/snapsync/internal/core/domain"
)

func TestStore_PutGet(t *testing.T) {
	t.Parallel()

	store, err := cas.NewStore(t.TempDir())
	require.NoError(t, err)

	data := []byte(`{"kind":"blob","data":"aGVsbG8="}`)
	c := domain.ChecksumOf(data)

	t.Run("put and get", func(t *testing.T) {
		require.NoError(t, store.Put(c, data))
		assert.True(t, store.Has(c))

		got, err := store.Get(c)
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})

	t.Run("put twice is a no-op", func(t *testing.T) {
		require.NoError(t, store.Put(c, data))
	})

	t.Run("get missing", func(t *testing.T) {
		missing := domain.ChecksumOf([]byte("missing"))
		assert.False(t, store.Has(missing))

		_, err := store.Get(missing)
		require.ErrorIs(t, err, domain.ErrAssetNotFound)
	})
}

func TestStore_PutRejectsMismatch(t *testing.T) {
	t.Parallel()

	store, err := cas.NewStore(t.TempDir())
	require.NoError(t, err)

	c := domain.ChecksumOf([]byte("expected"))
	err = store.Put(c, []byte("something else"))
	require.ErrorIs(t, err, domain.ErrChecksumMismatch)
	assert.False(t, store.Has(c))
}

func TestStore_LayoutUsesCIDPrefix(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store, err := cas.NewStore(root)
	require.NoError(t, err)

	data := []byte("layout")
	c := domain.ChecksumOf(data)
	require.NoError(t, store.Put(c, data))

	id, err := cas.CIDFor(c)
	require.NoError(t, err)
	name := id.String()

	info, err := os.Stat(filepath.Join(root, name[:2], name))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(domain.BlobFilePerm), info.Mode().Perm())
}

func TestStore_GetDetectsCorruption(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store, err := cas.NewStore(root)
	require.NoError(t, err)

	data := []byte("original")
	c := domain.ChecksumOf(data)
	require.NoError(t, store.Put(c, data))

	id, err := cas.CIDFor(c)
	require.NoError(t, err)
	path := filepath.Join(root, id.String()[:2], id.String())
	require.NoError(t, os.Chmod(path, domain.FilePerm))
	require.NoError(t, os.WriteFile(path, []byte("tampered"), domain.FilePerm))

	_, err = store.Get(c)
	require.ErrorIs(t, err, domain.ErrChecksumMismatch)

	// Put replaces the corrupt blob.
	require.NoError(t, store.Put(c, data))
	got, err := store.Get(c)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestStore_HasRejectsTruncatedBlob(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store, err := cas.NewStore(root)
	require.NoError(t, err)

	data := []byte(`{"kind":"blob","data":"dHJ1bmNhdGVk"}`)
	c := domain.ChecksumOf(data)
	id, err := cas.CIDFor(c)
	require.NoError(t, err)
	path := filepath.Join(root, id.String()[:2], id.String())
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, data[:len(data)/2], domain.FilePerm))

	assert.False(t, store.Has(c))
	_, err = os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, store.Put(c, data))
	assert.True(t, store.Has(c))
}

func TestStore_PutLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store, err := cas.NewStore(root)
	require.NoError(t, err)

	data := []byte("atomic")
	c := domain.ChecksumOf(data)
	require.NoError(t, store.Put(c, data))
	require.NoError(t, store.Put(c, data))

	id, err := cas.CIDFor(c)
	require.NoError(t, err)
	entries, err := os.ReadDir(filepath.Join(root, id.String()[:2]))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, id.String(), entries[0].Name())
}

func TestNewStore_EmptyRoot(t *testing.T) {
	t.Parallel()

	_, err := cas.NewStore("")
	require.ErrorIs(t, err, domain.ErrBlobStoreCreateFailed)
}

func TestOpener_Open(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "store")
	store, err := cas.NewOpener().Open(dir)
	require.NoError(t, err)
	require.NotNil(t, store)

	_, err = os.Stat(dir)
	require.NoError(t, err)
}
