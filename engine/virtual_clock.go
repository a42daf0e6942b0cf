package engine

import (
	"sync"
	"time"
)

// VirtualClock is game time
// It moves in whole ticks under the tick loop, so cooldowns, animation frames and
// wave delays replay identically whatever the wall clock does. Tests and headless
// tools may also Advance it by arbitrary durations
type VirtualClock struct {
	mu    sync.RWMutex
	epoch time.Time
	now   time.Time
	ticks uint64
}

// NewVirtualClock creates a clock standing at epoch, tick 0
func NewVirtualClock(epoch time.Time) *VirtualClock {
	return &VirtualClock{epoch: epoch, now: epoch}
}

// Now returns the current game instant
func (c *VirtualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Tick advances game time by one interval and returns the new tick number (from 1)
func (c *VirtualClock) Tick(interval time.Duration) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(interval)
	c.ticks++
	return c.ticks
}

// Ticks returns how many ticks have run
func (c *VirtualClock) Ticks() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ticks
}

// Advance moves game time by d without counting a tick
func (c *VirtualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Elapsed returns game time since the epoch
func (c *VirtualClock) Elapsed() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now.Sub(c.epoch)
}
