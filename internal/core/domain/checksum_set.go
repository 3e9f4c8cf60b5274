package domain

import (
	"iter"
	"maps"
	"slices"
)

// ChecksumSet is an unordered set of checksums. It is the unit of a batched fetch.
// The zero value is not usable; create sets with NewChecksumSet.
type ChecksumSet map[Checksum]struct{}

// NewChecksumSet creates a set holding the given checksums.
func NewChecksumSet(checksums ...Checksum) ChecksumSet {
	s := make(ChecksumSet, len(checksums))
	for _, c := range checksums {
		s[c] = struct{}{}
	}
	return s
}

// Add inserts c into the set.
func (s ChecksumSet) Add(c Checksum) {
	s[c] = struct{}{}
}

// Contains reports whether c is a member of the set.
func (s ChecksumSet) Contains(c Checksum) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of members.
func (s ChecksumSet) Len() int {
	return len(s)
}

// All returns an iterator over the members in unspecified order.
func (s ChecksumSet) All() iter.Seq[Checksum] {
	return maps.Keys(s)
}

// Sorted returns the members in ascending byte order.
func (s ChecksumSet) Sorted() []Checksum {
	return slices.SortedFunc(maps.Keys(s), Checksum.Compare)
}
