package engine

import "time"

// Clock is the single capability the scheduler needs: the current instant
// Game code gets a VirtualClock; only the tick loop's pacing reads WallClock
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to Clock
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// WallClock reads real time with its monotonic component
var WallClock Clock = ClockFunc(time.Now)
