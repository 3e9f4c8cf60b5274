// Package cas implements a content-addressable blob store on the local filesystem.
package cas

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"go.trai.ch/snapsync/internal/core/domain"
	"go.trai.ch/snapsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.BlobStore. Every blob is stored read-only under
// <root>/<cid[:2]>/<cid> where cid is the CIDv1 (raw, sha2-256) of the blob.
type Store struct {
	root string
}

// NewStore creates a Store rooted at root. The directory is created if needed.
func NewStore(root string) (*Store, error) {
	if root == "" {
		return nil, zerr.Wrap(domain.ErrBlobStoreCreateFailed, "root directory is required")
	}
	if err := os.MkdirAll(root, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBlobStoreCreateFailed.Error()), "root", root)
	}
	return &Store{root: root}, nil
}

// Root returns the directory the store writes to.
func (s *Store) Root() string {
	return s.root
}

// Get returns the blob stored under c.
func (s *Store) Get(c domain.Checksum) ([]byte, error) {
	path, err := s.pathFor(c)
	if err != nil {
		return nil, err
	}

	//nolint:gosec // Path is derived from the checksum inside the store root
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrAssetNotFound, "blob is not stored"), "checksum", c.String())
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBlobReadFailed.Error()), "checksum", c.String())
	}

	if err := verify(c, data); err != nil {
		return nil, err
	}
	return data, nil
}

// Put stores data under c. The blob is written to a temp file in its shard directory and
// renamed into place, so a partly written blob is never visible under its final name.
// A valid stored blob is left untouched; a corrupt one is replaced.
func (s *Store) Put(c domain.Checksum, data []byte) error {
	if err := verify(c, data); err != nil {
		return err
	}

	path, err := s.pathFor(c)
	if err != nil {
		return err
	}
	if s.valid(c, path) {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrBlobWriteFailed.Error())
	}

	tmpFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBlobWriteFailed.Error()), "checksum", c.String())
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, err := os.Stat(tmpName); err == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrBlobWriteFailed.Error()), "checksum", c.String())
	}
	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrBlobWriteFailed.Error()), "checksum", c.String())
	}
	if err := tmpFile.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBlobWriteFailed.Error()), "checksum", c.String())
	}
	if err := os.Chmod(tmpName, domain.BlobFilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBlobWriteFailed.Error()), "checksum", c.String())
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBlobWriteFailed.Error()), "checksum", c.String())
	}
	return nil
}

// Has reports whether a blob that hashes to c is stored. A stored blob that fails
// verification is removed and reported as missing.
func (s *Store) Has(c domain.Checksum) bool {
	path, err := s.pathFor(c)
	if err != nil {
		return false
	}
	if s.valid(c, path) {
		return true
	}
	_ = os.Remove(path)
	return false
}

func (s *Store) valid(c domain.Checksum, path string) bool {
	//nolint:gosec // Path is derived from the checksum inside the store root
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return verify(c, data) == nil
}

func (s *Store) pathFor(c domain.Checksum) (string, error) {
	id, err := CIDFor(c)
	if err != nil {
		return "", err
	}
	name := id.String()
	return filepath.Join(s.root, name[:2], name), nil
}

// CIDFor returns the CIDv1 (raw, sha2-256) naming the blob with checksum c.
func CIDFor(c domain.Checksum) (cid.Cid, error) {
	mh, err := multihash.Encode(c[:], multihash.SHA2_256)
	if err != nil {
		return cid.Undef, zerr.With(zerr.Wrap(err, "failed to encode multihash"), "checksum", c.String())
	}
	return cid.NewCidV1(cid.Raw, mh), nil
}

// verify checks that data hashes to c.
func verify(c domain.Checksum, data []byte) error {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return zerr.Wrap(err, "failed to hash blob")
	}
	want, err := CIDFor(c)
	if err != nil {
		return err
	}
	if !cid.NewCidV1(cid.Raw, sum).Equals(want) {
		return zerr.With(zerr.Wrap(domain.ErrChecksumMismatch, "blob does not match its checksum"), "checksum", c.String())
	}
	return nil
}

// Opener implements ports.BlobStoreOpener for filesystem stores.
type Opener struct{}

// NewOpener creates an Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open returns a Store rooted at dir.
func (o *Opener) Open(dir string) (ports.BlobStore, error) {
	store, err := NewStore(dir)
	if err != nil {
		return nil, err
	}
	return store, nil
}
