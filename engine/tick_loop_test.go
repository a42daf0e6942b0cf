package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/lixenwraith/starlane/status"
)

func TestTickLoopStepAdvancesGameTime(t *testing.T) {
	game := NewVirtualClock(epoch)
	reg := status.NewRegistry()
	var seen []uint64
	loop := NewTickLoop(game, nil, 16*time.Millisecond, func(tick uint64) {
		seen = append(seen, tick)
	}, reg)

	for i := 0; i < 3; i++ {
		loop.Step()
	}

	if want := epoch.Add(48 * time.Millisecond); !game.Now().Equal(want) {
		t.Errorf("game time = %v, want %v", game.Now(), want)
	}
	if len(seen) != 3 || seen[0] != 1 || seen[2] != 3 {
		t.Errorf("ticks = %v, want [1 2 3]", seen)
	}
	if game.Ticks() != 3 || loop.TickCount() != 3 {
		t.Errorf("game ticks = %d, loop ticks = %d, want 3", game.Ticks(), loop.TickCount())
	}
	if reg.Counter("engine.ticks").Load() != 3 {
		t.Errorf("engine.ticks = %d, want 3", reg.Counter("engine.ticks").Load())
	}
}

func TestTickLoopDrivesScheduler(t *testing.T) {
	game := NewVirtualClock(epoch)
	sched := NewScheduler(game)
	fired := 0
	sched.ScheduleOperation("cooldown", 50*time.Millisecond, func() { fired++ })

	loop := NewTickLoop(game, nil, 10*time.Millisecond, func(uint64) {
		sched.ExecuteDueOperations()
	}, nil)

	for i := 0; i < 4; i++ {
		loop.Step()
	}
	if fired != 0 {
		t.Fatalf("fired after 40ms of game time")
	}
	loop.Step()
	if fired != 1 {
		t.Errorf("fired = %d after 50ms, want 1", fired)
	}
}

func TestTickLoopStartStop(t *testing.T) {
	var ticks atomic.Int32
	loop := NewTickLoop(NewVirtualClock(epoch), nil, time.Millisecond, func(uint64) {
		ticks.Add(1)
	}, nil)

	loop.Start()
	deadline := time.Now().Add(2 * time.Second)
	for ticks.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	loop.Stop()
	loop.Stop()

	if ticks.Load() < 3 {
		t.Fatalf("ticks = %d, want at least 3", ticks.Load())
	}
	after := ticks.Load()
	time.Sleep(10 * time.Millisecond)
	if ticks.Load() != after {
		t.Errorf("ticks continued after Stop: %d -> %d", after, ticks.Load())
	}
	if uint64(after) != loop.TickCount() {
		t.Errorf("TickCount = %d, want %d", loop.TickCount(), after)
	}
}

func TestTickLoopPausedDoesNotTick(t *testing.T) {
	pacing := NewPausableClock(nil)
	var ticks atomic.Int32
	loop := NewTickLoop(NewVirtualClock(epoch), pacing, time.Millisecond, func(uint64) {
		ticks.Add(1)
	}, nil)

	loop.Pause()
	loop.Start()
	time.Sleep(20 * time.Millisecond)
	if ticks.Load() != 0 {
		t.Errorf("ticked %d times while paused", ticks.Load())
	}
	loop.Resume()
	deadline := time.Now().Add(2 * time.Second)
	for ticks.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	loop.Stop()
	if ticks.Load() == 0 {
		t.Error("no ticks after resume")
	}
}
