package remote

import (
	"sync"
	"time"
)

// Lifecycle tracks server activity and signals shutdown after an idle period.
// A non-positive idle timeout disables the automatic shutdown.
type Lifecycle struct {
	mu           sync.Mutex
	idle         *time.Timer
	started      time.Time
	lastActivity time.Time
	idleTimeout  time.Duration
	done         chan struct{}
	doneOnce     sync.Once
}

// NewLifecycle starts tracking activity with the given idle timeout.
func NewLifecycle(idleTimeout time.Duration) *Lifecycle {
	now := time.Now()
	l := &Lifecycle{
		started:      now,
		lastActivity: now,
		idleTimeout:  idleTimeout,
		done:         make(chan struct{}),
	}
	if idleTimeout > 0 {
		l.idle = time.AfterFunc(idleTimeout, l.stop)
	}
	return l
}

// Touch records activity and restarts the idle countdown.
func (l *Lifecycle) Touch() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastActivity = time.Now()
	if l.idle != nil {
		l.idle.Reset(l.idleTimeout)
	}
}

// IdleRemaining returns the time left before the idle shutdown.
// It returns 0 when the shutdown is disabled or already due.
func (l *Lifecycle) IdleRemaining() time.Duration {
	if l.idleTimeout <= 0 {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return max(l.idleTimeout-time.Since(l.lastActivity), 0)
}

// Uptime returns how long the server has been running.
func (l *Lifecycle) Uptime() time.Duration {
	return time.Since(l.started)
}

// LastActivity returns the time of the last served request.
func (l *Lifecycle) LastActivity() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastActivity
}

// Done is closed once the server should stop.
func (l *Lifecycle) Done() <-chan struct{} {
	return l.done
}

// Shutdown stops the idle countdown and closes Done. It is safe to call more than once.
func (l *Lifecycle) Shutdown() {
	if l.idle != nil {
		l.idle.Stop()
	}
	l.stop()
}

func (l *Lifecycle) stop() {
	l.doneOnce.Do(func() {
		close(l.done)
	})
}
