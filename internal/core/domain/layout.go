package domain

import "path/filepath"

const (
	// DirName is the name of the internal workspace directory.
	DirName = ".snapsync"

	// CacheDirName is the name of the local asset cache directory.
	CacheDirName = "cache"

	// StoreDirName is the name of the published snapshot store directory.
	StoreDirName = "store"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "snapsync.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// BlobFilePerm is the permission of stored blobs (r--r--r--).
	BlobFilePerm = 0o444
)

// DefaultCachePath returns the default path for the local asset cache.
// It joins .snapsync and cache.
func DefaultCachePath() string {
	return filepath.Join(DirName, CacheDirName)
}

// DefaultStorePath returns the default path for the published snapshot store.
// It joins .snapsync and store.
func DefaultStorePath() string {
	return filepath.Join(DirName, StoreDirName)
}
