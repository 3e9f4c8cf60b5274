// Package cache provides the in-memory tier of the local asset cache.
package cache

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/snapsync/internal/core/domain"
)

// ShardCount is the number of independently locked shards.
const ShardCount = 16

// Memory implements ports.AssetCache with a sharded map of decoded objects.
// Entries are never evicted: content-addressed objects never go stale.
type Memory struct {
	shards [ShardCount]shard
}

type shard struct {
	mu      sync.RWMutex
	objects map[domain.Checksum]domain.Object
}

// NewMemory creates an empty Memory cache.
func NewMemory() *Memory {
	m := &Memory{}
	for i := range m.shards {
		m.shards[i].objects = make(map[domain.Checksum]domain.Object)
	}
	return m
}

// Lookup returns the object stored under c.
func (m *Memory) Lookup(c domain.Checksum) (domain.Object, bool) {
	s := m.shardFor(c)
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.objects[c]
	return obj, ok
}

// Store records obj under c. Storing the same checksum again keeps the first object.
func (m *Memory) Store(c domain.Checksum, obj domain.Object) {
	if c.IsNull() || obj == nil {
		return
	}

	s := m.shardFor(c)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.objects[c]; !ok {
		s.objects[c] = obj
	}
}

// Contains reports whether c is cached.
func (m *Memory) Contains(c domain.Checksum) bool {
	_, ok := m.Lookup(c)
	return ok
}

// Len returns the number of cached objects.
func (m *Memory) Len() int {
	n := 0
	for i := range m.shards {
		s := &m.shards[i]
		s.mu.RLock()
		n += len(s.objects)
		s.mu.RUnlock()
	}
	return n
}

func (m *Memory) shardFor(c domain.Checksum) *shard {
	return &m.shards[xxhash.Sum64(c[:])%ShardCount]
}
