package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/starlane/status"
)

// TickFunc runs one simulation tick; tick counts from 1
type TickFunc func(tick uint64)

// TickLoop drives the simulation on a fixed tick
// Game time lives on a VirtualClock advanced by exactly one interval per tick, so
// everything scheduled against it is independent of wall-clock jitter. Wall time
// (through a PausableClock) only paces when the next tick is due
type TickLoop struct {
	game     *VirtualClock
	pacing   *PausableClock
	interval time.Duration
	update   TickFunc

	// mu serializes ticks between the loop goroutine and Step
	mu               sync.Mutex
	nextTickDeadline time.Time

	statTicks *atomic.Int64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewTickLoop creates a stopped loop; pacing may be nil for wall time, reg may be nil
// Panics on nil game clock, nil update or non-positive interval
func NewTickLoop(game *VirtualClock, pacing *PausableClock, interval time.Duration, update TickFunc, reg *status.Registry) *TickLoop {
	if game == nil {
		panic("engine: tick loop requires a game clock")
	}
	if update == nil {
		panic("engine: tick loop requires an update function")
	}
	if interval <= 0 {
		panic("engine: tick interval must be positive")
	}
	if pacing == nil {
		pacing = NewPausableClock(nil)
	}

	l := &TickLoop{
		game:     game,
		pacing:   pacing,
		interval: interval,
		update:   update,
		stopChan: make(chan struct{}),
	}
	if reg != nil {
		l.statTicks = reg.Counter("engine.ticks")
	}
	return l
}

// Step runs exactly one tick synchronously, used by headless runs and tests
func (l *TickLoop) Step() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.processTick()
}

// processTick advances game time by one interval and runs the update, mu held
func (l *TickLoop) processTick() uint64 {
	tick := l.game.Tick(l.interval)
	l.update(tick)
	if l.statTicks != nil {
		l.statTicks.Store(int64(tick))
	}
	return tick
}

// Start begins the background loop
func (l *TickLoop) Start() {
	if l.running.CompareAndSwap(false, true) {
		l.wg.Add(1)
		go l.loop()
	}
}

// Stop halts the loop and waits for the in-flight tick to finish
func (l *TickLoop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
		if l.running.Load() {
			l.wg.Wait()
			l.running.Store(false)
		}
	})
}

// Pause freezes pacing time; no ticks run until Resume
func (l *TickLoop) Pause() { l.pacing.Pause() }

// Resume continues ticking from where pacing time stopped
func (l *TickLoop) Resume() { l.pacing.Resume() }

// IsPaused returns current pause state
func (l *TickLoop) IsPaused() bool { return l.pacing.IsPaused() }

// TickCount returns ticks processed so far, read from the game clock
func (l *TickLoop) TickCount() uint64 { return l.game.Ticks() }

func (l *TickLoop) loop() {
	defer l.wg.Done()

	l.mu.Lock()
	l.nextTickDeadline = l.pacing.Now().Add(l.interval)
	l.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-l.stopChan:
			return
		default:
		}

		var sleepDuration time.Duration
		if l.pacing.IsPaused() {
			// Poll slower while paused
			sleepDuration = l.interval * 2
		} else {
			now := l.pacing.Now()

			l.mu.Lock()
			if !now.Before(l.nextTickDeadline) {
				l.processTick()
				l.nextTickDeadline = l.nextTickDeadline.Add(l.interval)

				// Drop backlog instead of bursting ticks after a stall
				if now.Sub(l.nextTickDeadline) > l.interval*2 {
					l.nextTickDeadline = now.Add(l.interval)
				}
			}
			sleepDuration = l.nextTickDeadline.Sub(l.pacing.Now())
			l.mu.Unlock()
		}

		if sleepDuration > 0 {
			timer.Reset(sleepDuration)
			select {
			case <-timer.C:
			case <-l.stopChan:
				return
			}
		}
	}
}
