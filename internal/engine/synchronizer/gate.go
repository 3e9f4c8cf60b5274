package synchronizer

import (
	"context"
	"sync"

	"go.trai.ch/zerr"
	"golang.org/x/sync/semaphore"
)

// Gate admits one bulk synchronization at a time. Waiters are served in FIFO order.
// It is not re-entrant: a holder must not acquire it again.
type Gate struct {
	sem *semaphore.Weighted
}

// NewGate creates an open gate.
func NewGate() *Gate {
	return &Gate{sem: semaphore.NewWeighted(1)}
}

// Acquire blocks until the gate is free or ctx is done.
// The returned release function is safe to call more than once.
func (g *Gate) Acquire(ctx context.Context) (release func(), err error) {
	if err := g.sem.Acquire(ctx, 1); err != nil {
		return nil, zerr.Wrap(err, "failed to acquire synchronization gate")
	}

	var once sync.Once
	return func() {
		once.Do(func() { g.sem.Release(1) })
	}, nil
}

// TryAcquire takes the gate without blocking. It reports false if the gate is held.
func (g *Gate) TryAcquire() (release func(), ok bool) {
	if !g.sem.TryAcquire(1) {
		return nil, false
	}

	var once sync.Once
	return func() {
		once.Do(func() { g.sem.Release(1) })
	}, true
}
