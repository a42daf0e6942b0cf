package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TickInterval is the fixed simulation tick (~60 Hz)
	TickInterval = 16 * time.Millisecond

	// FrameInterval is the terminal redraw interval
	FrameInterval = 33 * time.Millisecond
)

// Playfield in world units, origin at top-left, y grows downward
const (
	FieldWidth  = 240.0
	FieldHeight = 320.0

	// FieldMargin is how far outside the field an actor may drift before it is culled
	FieldMargin = 40.0
)
