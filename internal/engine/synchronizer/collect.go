package synchronizer

import (
	"fmt"

	"go.trai.ch/snapsync/internal/core/domain"
	"go.trai.ch/zerr"
)

// collect flattens refs into set, descending into collections at any depth.
// Null and cache-resident checksums are skipped.
// A reference that is neither a checksum nor a collection panics with domain.ErrUnexpectedChildRef.
func (s *Synchronizer) collect(set domain.ChecksumSet, refs []domain.ChildRef) {
	for _, ref := range refs {
		switch ref := ref.(type) {
		case domain.Checksum:
			s.addIfNeeded(set, ref)
		case domain.ChecksumCollection:
			s.collect(set, ref)
		default:
			panic(zerr.With(
				zerr.Wrap(domain.ErrUnexpectedChildRef, "cannot flatten children"),
				"type", fmt.Sprintf("%T", ref),
			))
		}
	}
}

// collectChecksums adds every checksum in cs that still needs fetching.
func (s *Synchronizer) collectChecksums(set domain.ChecksumSet, cs []domain.Checksum) {
	for _, c := range cs {
		s.addIfNeeded(set, c)
	}
}

func (s *Synchronizer) addIfNeeded(set domain.ChecksumSet, c domain.Checksum) {
	if c.IsNull() || set.Contains(c) || s.provider.CacheContains(c) {
		return
	}
	set.Add(c)
}
