package remote_test

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/snapsync/internal/adapters/remote"
)

func TestLifecycle_IdleShutdown(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		lc := remote.NewLifecycle(100 * time.Millisecond)

		select {
		case <-lc.Done():
		case <-time.After(200 * time.Millisecond):
			t.Fatal("expected idle shutdown")
		}
	})
}

func TestLifecycle_TouchPostponesShutdown(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		lc := remote.NewLifecycle(100 * time.Millisecond)
		defer lc.Shutdown()

		time.Sleep(80 * time.Millisecond)
		lc.Touch()

		select {
		case <-lc.Done():
			t.Fatal("shutdown fired despite activity")
		case <-time.After(60 * time.Millisecond):
		}

		select {
		case <-lc.Done():
		case <-time.After(100 * time.Millisecond):
			t.Fatal("expected idle shutdown after activity stopped")
		}
	})
}

func TestLifecycle_ZeroTimeoutNeverIdles(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		lc := remote.NewLifecycle(0)

		select {
		case <-lc.Done():
			t.Fatal("shutdown fired with idle timeout disabled")
		case <-time.After(24 * time.Hour):
		}
		assert.Equal(t, time.Duration(0), lc.IdleRemaining())

		lc.Shutdown()
		<-lc.Done()
	})
}

func TestLifecycle_IdleRemaining(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		lc := remote.NewLifecycle(100 * time.Millisecond)
		defer lc.Shutdown()

		assert.Equal(t, 100*time.Millisecond, lc.IdleRemaining())

		time.Sleep(30 * time.Millisecond)
		assert.Equal(t, 70*time.Millisecond, lc.IdleRemaining())
		assert.Equal(t, 30*time.Millisecond, lc.Uptime())

		lc.Touch()
		assert.Equal(t, 100*time.Millisecond, lc.IdleRemaining())
		assert.Equal(t, time.Now(), lc.LastActivity())
	})
}

func TestLifecycle_ShutdownIsIdempotent(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		lc := remote.NewLifecycle(time.Hour)

		lc.Shutdown()
		lc.Shutdown()

		select {
		case <-lc.Done():
		default:
			t.Fatal("expected Done to be closed")
		}
	})
}
