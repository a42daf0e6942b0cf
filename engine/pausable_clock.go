package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock derives pausable time from a base clock
// Paces the tick loop so deadlines do not pile up while paused
type PausableClock struct {
	mu sync.RWMutex

	base      Clock
	startTime time.Time

	isPaused        atomic.Bool
	pauseStartTime  time.Time     // Base time when current pause started
	totalPausedTime time.Duration // Cumulative pause duration
}

// NewPausableClock creates a running clock over base, nil base means wall time
func NewPausableClock(base Clock) *PausableClock {
	if base == nil {
		base = WallClock
	}
	return &PausableClock{
		base:      base,
		startTime: base.Now(),
	}
}

// Now returns base time minus all paused time, frozen while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		return pc.pauseStartTime.Add(-pc.totalPausedTime)
	}
	return pc.base.Now().Add(-pc.totalPausedTime)
}

// Pause stops time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.pauseStartTime = pc.base.Now()
	}
}

// Resume continues time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.totalPausedTime += pc.base.Now().Sub(pc.pauseStartTime)
		pc.pauseStartTime = time.Time{}
	}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time including any current pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() {
		total += pc.base.Now().Sub(pc.pauseStartTime)
	}
	return total
}

// Elapsed returns unpaused time since creation
func (pc *PausableClock) Elapsed() time.Duration {
	return pc.Now().Sub(pc.startTime)
}
