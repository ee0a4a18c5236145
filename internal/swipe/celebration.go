package swipe

import (
	"sync"
	"time"

	"voluntaura/internal/models"
)

// DefaultCelebration is how long a match notification stays up.
const DefaultCelebration = 2500 * time.Millisecond

// Celebration holds the match notification currently shown. It dismisses
// itself after a fixed duration.
type Celebration struct {
	mu       sync.Mutex
	duration time.Duration
	current  *models.Opportunity
	timer    *time.Timer
	closed   bool
	onClose  func(models.Opportunity)
}

// NewCelebration returns a Celebration with the given auto-dismiss duration.
// onClose, if set, runs whenever a notification goes away.
func NewCelebration(d time.Duration, onClose func(models.Opportunity)) *Celebration {
	if d <= 0 {
		d = DefaultCelebration
	}
	return &Celebration{duration: d, onClose: onClose}
}

// Matched shows opp, replacing any notification still visible.
func (c *Celebration) Matched(opp models.Opportunity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	shown := opp
	c.current = &shown
	c.timer = time.AfterFunc(c.duration, func() { c.expire(&shown) })
}

// Current returns the visible notification, if any.
func (c *Celebration) Current() (models.Opportunity, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return models.Opportunity{}, false
	}
	return *c.current, true
}

// Dismiss closes the notification early.
func (c *Celebration) Dismiss() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	shown := c.current
	c.current = nil
	c.mu.Unlock()

	if shown != nil && c.onClose != nil {
		c.onClose(*shown)
	}
}

// Close cancels any pending timer. Later matches are ignored.
func (c *Celebration) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.current = nil
}

func (c *Celebration) expire(shown *models.Opportunity) {
	c.mu.Lock()
	if c.current != shown {
		c.mu.Unlock()
		return
	}
	c.current = nil
	c.timer = nil
	c.mu.Unlock()

	if c.onClose != nil {
		c.onClose(*shown)
	}
}
