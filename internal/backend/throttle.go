package backend

import (
	"context"
	"sync"
	"time"
)

// throttle spaces successive catalog reloads at least one settle interval
// apart, so an editor's burst of write events collapses into a single
// reload per interval.
type throttle struct {
	interval time.Duration

	mu   sync.Mutex
	next time.Time
}

func newThrottle(interval time.Duration) *throttle {
	if interval < 0 {
		interval = 0
	}
	return &throttle{interval: interval}
}

// wait reserves the next reload slot, sleeping out any remaining settle
// time. It returns false when the context is cancelled before the slot
// opens, so callers can bail out of an in-flight settle immediately.
func (t *throttle) wait(ctx context.Context) bool {
	if t == nil || t.interval <= 0 {
		return ctx.Err() == nil
	}
	for {
		t.mu.Lock()
		remaining := time.Until(t.next)
		if remaining <= 0 {
			t.next = time.Now().Add(t.interval)
			t.mu.Unlock()
			return true
		}
		t.mu.Unlock()

		timer := time.NewTimer(remaining)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}
	}
}
