package curve

import (
	"math"

	"github.com/lixenwraith/starlane/geom"
)

// Line is a single straight segment with scheduled signals
type Line struct {
	Start, End geom.Point
	Actions    []ScheduledAction
}

// Length returns the Euclidean distance between Start and End
func (l Line) Length() float64 {
	return l.Start.Distance(l.End)
}

// Steps interpolates steps+1 rounded positions from Start to End and splices actions
// at floor(steps*when). Panics if steps <= 0
func (l Line) Steps(steps int) Path {
	if steps <= 0 {
		panic("curve: line steps must be positive")
	}
	return spliceActions(segmentMoves(l.Start, l.End, steps), steps, l.Actions)
}

// Speed derives steps = max(floor(length/speed), 1) and delegates to Steps
// Panics if speed <= 0
func (l Line) Speed(speed float64) Path {
	if speed <= 0 {
		panic("curve: line speed must be positive")
	}
	steps := max(int(math.Floor(l.Length()/speed)), 1)
	return l.Steps(steps)
}

// Polyline is a chain of straight segments sharing one action schedule
type Polyline struct {
	Points  []geom.Point
	Actions []ScheduledAction
}

// Length returns the summed length of all segments
func (pl Polyline) Length() float64 {
	total := 0.0
	for i := 1; i < len(pl.Points); i++ {
		total += pl.Points[i-1].Distance(pl.Points[i])
	}
	return total
}

// Path distributes totalSteps over the segments by length and concatenates them,
// dropping the duplicated junction point between consecutive segments.
//
// Segment boundaries are placed at round(cumulativeLength/total*totalSteps), so each
// segment gets approximately its rounded share and the shares always sum to totalSteps.
// A segment whose share rounds to zero steps is skipped. Actions are spliced against
// totalSteps on the whole sequence. Panics on fewer than two points or totalSteps <= 0
func (pl Polyline) Path(totalSteps int) Path {
	if totalSteps <= 0 {
		panic("curve: polyline steps must be positive")
	}
	if len(pl.Points) < 2 {
		panic("curve: polyline needs at least two points")
	}

	moves := make([]Entry, 0, totalSteps+1)
	moves = append(moves, MoveTo(pl.Points[0].Round()))

	total := pl.Length()
	if total == 0 {
		for len(moves) < totalSteps+1 {
			moves = append(moves, moves[0])
		}
		return spliceActions(moves, totalSteps, pl.Actions)
	}

	last := len(pl.Points) - 1
	cumulative := 0.0
	prev := 0
	for i := 1; i <= last; i++ {
		a, b := pl.Points[i-1], pl.Points[i]
		cumulative += a.Distance(b)

		boundary := int(math.Round(cumulative / total * float64(totalSteps)))
		if i == last {
			boundary = totalSteps
		}
		segSteps := boundary - prev
		if segSteps <= 0 {
			continue
		}
		prev = boundary

		seg := segmentMoves(a, b, segSteps)
		moves = append(moves, seg[1:]...)
	}

	// A trailing sliver too short for a step still has to end on the final point
	moves[len(moves)-1] = MoveTo(pl.Points[last].Round())
	return spliceActions(moves, totalSteps, pl.Actions)
}

// Speed derives totalSteps = max(floor(length/speed), 1), the same rule as Line.Speed
// Panics if speed <= 0
func (pl Polyline) Speed(speed float64) Path {
	if speed <= 0 {
		panic("curve: polyline speed must be positive")
	}
	return pl.Path(max(int(math.Floor(pl.Length()/speed)), 1))
}

// segmentMoves returns steps+1 rounded positions from a to b inclusive
func segmentMoves(a, b geom.Point, steps int) []Entry {
	moves := make([]Entry, steps+1)
	for i := 0; i <= steps; i++ {
		moves[i] = MoveTo(a.Lerp(b, float64(i)/float64(steps)).Round())
	}
	return moves
}
