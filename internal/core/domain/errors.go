package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidChecksum is returned when a checksum string cannot be parsed.
	ErrInvalidChecksum = zerr.New("invalid checksum")

	// ErrAssetNotFound is returned when a checksum has no corresponding object.
	ErrAssetNotFound = zerr.New("asset not found")

	// ErrChecksumMismatch is returned when bytes do not hash to the checksum they are stored under.
	ErrChecksumMismatch = zerr.New("checksum mismatch")

	// ErrUnexpectedChildRef signals a children entry that is neither a checksum nor a collection.
	// It indicates a node shape this program does not understand and is raised as a panic.
	ErrUnexpectedChildRef = zerr.New("unexpected child reference")

	// ErrUnexpectedObjectKind is returned when a checksum resolves to an object of the wrong kind.
	ErrUnexpectedObjectKind = zerr.New("unexpected object kind")

	// ErrUnknownObjectKind is returned when an encoded object carries an unknown kind.
	ErrUnknownObjectKind = zerr.New("unknown object kind")

	// ErrObjectDecodeFailed is returned when an encoded object cannot be decoded.
	ErrObjectDecodeFailed = zerr.New("failed to decode object")

	// ErrObjectEncodeFailed is returned when an object cannot be encoded.
	ErrObjectEncodeFailed = zerr.New("failed to encode object")

	// ErrBlobStoreCreateFailed is returned when the blob store directory cannot be created.
	ErrBlobStoreCreateFailed = zerr.New("failed to create blob store directory")

	// ErrBlobReadFailed is returned when a stored blob cannot be read.
	ErrBlobReadFailed = zerr.New("failed to read blob")

	// ErrBlobWriteFailed is returned when a blob cannot be written.
	ErrBlobWriteFailed = zerr.New("failed to write blob")

	// ErrRemoteDialFailed is returned when the remote asset source cannot be reached.
	ErrRemoteDialFailed = zerr.New("failed to connect to remote asset source")

	// ErrRemoteFetchFailed is returned when a batch fetch fails in transport.
	ErrRemoteFetchFailed = zerr.New("remote asset fetch failed")

	// ErrServeFailed is returned when the asset server cannot start.
	ErrServeFailed = zerr.New("failed to serve assets")

	// ErrSnapshotFailed is returned when a directory cannot be published as a snapshot.
	ErrSnapshotFailed = zerr.New("failed to build snapshot")

	// ErrSyncFailed is returned when a synchronization does not complete.
	ErrSyncFailed = zerr.New("synchronization failed")

	// ErrNoChecksumsSpecified is returned when a command needs at least one checksum.
	ErrNoChecksumsSpecified = zerr.New("no checksums specified")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a config value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")
)
