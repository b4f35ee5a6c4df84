// Package notify models the transient advisory banner: a single-slot
// notice with an auto-dismiss timer. Showing a new notice cancels the
// pending dismissal of the previous one, so at most one timer is ever
// outstanding and the newest notice wins.
package notify

import (
	"sync"
	"time"
)

// Banner holds at most one advisory notice at a time.
type Banner struct {
	mu      sync.Mutex
	ttl     time.Duration
	message string
	timer   *time.Timer
}

// NewBanner creates a banner whose notices auto-dismiss after ttl.
func NewBanner(ttl time.Duration) *Banner {
	return &Banner{ttl: ttl}
}

// Show replaces the current notice and restarts the dismissal timer.
func (b *Banner) Show(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
	}
	b.message = message
	b.timer = time.AfterFunc(b.ttl, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.message = ""
		b.timer = nil
	})
}

// Current returns the active notice, or the empty string once dismissed.
func (b *Banner) Current() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.message
}

// Dismiss clears the notice immediately and cancels the pending timer.
func (b *Banner) Dismiss() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.message = ""
}
