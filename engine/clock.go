package engine

import (
	"sync"
	"time"
)

// Clock turns a TimeProvider into per-frame deltas
// Pause is not tracked here: the loop keeps consuming deltas while paused and
// discards them, so resuming never produces a catch-up jump
type Clock struct {
	mu sync.Mutex

	provider  TimeProvider
	startTime time.Time
	lastTick  time.Time
	maxDelta  time.Duration // 0 disables the cap
	ticks     uint64
}

// NewClock starts measuring from provider.Now()
func NewClock(provider TimeProvider, maxDelta time.Duration) *Clock {
	now := provider.Now()
	return &Clock{
		provider:  provider,
		startTime: now,
		lastTick:  now,
		maxDelta:  maxDelta,
	}
}

// Now returns the provider's current time
func (c *Clock) Now() time.Time {
	return c.provider.Now()
}

// Delta returns the time since the previous Delta call (or construction)
// Never negative; capped at maxDelta when set
func (c *Clock) Delta() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.provider.Now()
	d := now.Sub(c.lastTick)
	if d < 0 {
		// Provider went backwards (manual clock reset), keep lastTick monotonic
		d = 0
	} else {
		c.lastTick = now
	}
	if c.maxDelta > 0 && d > c.maxDelta {
		d = c.maxDelta
	}
	c.ticks++
	return d
}

// Elapsed returns time since construction or the last Reset
func (c *Clock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.provider.Now().Sub(c.startTime)
}

// Ticks returns the number of Delta calls
func (c *Clock) Ticks() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ticks
}

// Reset restarts measurement from the current time
func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.provider.Now()
	c.startTime = now
	c.lastTick = now
	c.ticks = 0
}
