// Package assets implements ports.AssetProvider: a two tier local cache (memory and blob store)
// in front of a batched remote AssetSource.
package assets

import (
	"context"
	"errors"
	"slices"
	"sync/atomic"
	"time"

	"go.trai.ch/snapsync/internal/core/domain"
	"go.trai.ch/snapsync/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Options configures a Provider.
type Options struct {
	// MaxBatchSize caps the number of checksums sent in one AssetSource.Fetch call.
	MaxBatchSize int
	// FetchTimeout bounds the fetch Resolve shares between concurrent callers.
	FetchTimeout time.Duration
}

// Stats reports the remote traffic of a Provider.
type Stats struct {
	Batches int64
	Fetched int64
}

// Provider implements ports.AssetProvider.
type Provider struct {
	source   ports.AssetSource
	memory   ports.AssetCache
	store    ports.BlobStore
	codec    ports.Codec
	maxBatch int
	timeout  time.Duration

	group   singleflight.Group
	batches atomic.Int64
	fetched atomic.Int64
}

// NewProvider creates a Provider. store may be nil, in which case only the memory tier is used.
func NewProvider(
	source ports.AssetSource,
	memory ports.AssetCache,
	store ports.BlobStore,
	codec ports.Codec,
	opts Options,
) *Provider {
	maxBatch := opts.MaxBatchSize
	if maxBatch <= 0 {
		maxBatch = domain.DefaultMaxBatchSize
	}
	timeout := opts.FetchTimeout
	if timeout <= 0 {
		timeout = domain.DefaultTimeout
	}
	return &Provider{
		source:   source,
		memory:   memory,
		store:    store,
		codec:    codec,
		maxBatch: maxBatch,
		timeout:  timeout,
	}
}

// CacheContains reports whether c is available without a remote fetch.
func (p *Provider) CacheContains(c domain.Checksum) bool {
	if p.memory.Contains(c) {
		return true
	}
	return p.store != nil && p.store.Has(c)
}

// Resolve returns the object stored under c, fetching it when neither tier has it.
// Concurrent resolutions of the same checksum share one fetch. The shared fetch is detached
// from the cancellation of the caller that started it and bounded by FetchTimeout; each
// caller stops waiting when its own ctx is done.
func (p *Provider) Resolve(ctx context.Context, c domain.Checksum) (domain.Object, error) {
	if c.IsNull() {
		return nil, zerr.Wrap(domain.ErrAssetNotFound, "null checksum has no object")
	}
	if obj, ok := p.memory.Lookup(c); ok {
		return obj, nil
	}
	if p.store != nil && p.store.Has(c) {
		obj, err := p.load(c)
		if !errors.Is(err, domain.ErrChecksumMismatch) {
			return obj, err
		}
	}

	ch := p.group.DoChan(c.String(), func() (any, error) {
		if obj, ok := p.memory.Lookup(c); ok {
			return obj, nil
		}
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
		defer cancel()
		if err := p.fetch(fetchCtx, []domain.Checksum{c}); err != nil {
			return nil, err
		}
		obj, ok := p.memory.Lookup(c)
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrAssetNotFound, "asset missing after fetch"), "checksum", c.String())
		}
		return obj, nil
	})

	select {
	case <-ctx.Done():
		return nil, zerr.With(zerr.Wrap(ctx.Err(), "asset resolution canceled"), "checksum", c.String())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(domain.Object), nil
	}
}

// SynchronizeAssets fetches every member of checksums that is not cached, in batches of at
// most MaxBatchSize. It returns after every member is cached or on the first failure.
func (p *Provider) SynchronizeAssets(ctx context.Context, checksums domain.ChecksumSet) error {
	missing := make([]domain.Checksum, 0, checksums.Len())
	for _, c := range checksums.Sorted() {
		if c.IsNull() || p.CacheContains(c) {
			continue
		}
		missing = append(missing, c)
	}

	for batch := range slices.Chunk(missing, p.maxBatch) {
		if err := ctx.Err(); err != nil {
			return zerr.Wrap(err, "asset synchronization canceled")
		}
		if err := p.fetch(ctx, batch); err != nil {
			return err
		}
	}
	return nil
}

// Stats returns the number of remote batches issued and assets fetched so far.
func (p *Provider) Stats() Stats {
	return Stats{
		Batches: p.batches.Load(),
		Fetched: p.fetched.Load(),
	}
}

// fetch performs one remote call for batch and caches every returned asset.
func (p *Provider) fetch(ctx context.Context, batch []domain.Checksum) error {
	payloads, err := p.source.Fetch(ctx, batch)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to fetch assets"), "batch_size", len(batch))
	}
	p.batches.Add(1)

	for _, c := range batch {
		data, ok := payloads[c]
		if !ok {
			return zerr.With(zerr.Wrap(domain.ErrAssetNotFound, "remote did not return requested asset"), "checksum", c.String())
		}
		if domain.ChecksumOf(data) != c {
			return zerr.With(zerr.Wrap(domain.ErrChecksumMismatch, "remote returned corrupted asset"), "checksum", c.String())
		}

		obj, err := p.codec.Decode(data)
		if err != nil {
			return zerr.With(err, "checksum", c.String())
		}
		if p.store != nil {
			if err := p.store.Put(c, data); err != nil {
				return err
			}
		}
		p.memory.Store(c, obj)
		p.fetched.Add(1)
	}
	return nil
}

// load decodes c from the blob store and promotes it into memory.
func (p *Provider) load(c domain.Checksum) (domain.Object, error) {
	data, err := p.store.Get(c)
	if err != nil {
		return nil, err
	}
	obj, err := p.codec.Decode(data)
	if err != nil {
		return nil, zerr.With(err, "checksum", c.String())
	}
	p.memory.Store(c, obj)
	return obj, nil
}
