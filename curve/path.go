package curve

import (
	"math"
	"slices"

	"github.com/lixenwraith/starlane/geom"
)

// Path is the discretized output of a generator, one entry consumed per tick
type Path []Entry

// Clone returns an independent copy
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Moves returns only the positions, in order
func (p Path) Moves() []geom.Point {
	out := make([]geom.Point, 0, len(p))
	for _, e := range p {
		if e.Action == ActionMove {
			out = append(out, e.Point)
		}
	}
	return out
}

// Count returns the number of entries with action a
func (p Path) Count(a Action) int {
	n := 0
	for _, e := range p {
		if e.Action == a {
			n++
		}
	}
	return n
}

// FirstMove returns the first position on the path
func (p Path) FirstMove() (geom.Point, bool) {
	for _, e := range p {
		if e.Action == ActionMove {
			return e.Point, true
		}
	}
	return geom.Point{}, false
}

// LastMove returns the final position on the path
func (p Path) LastMove() (geom.Point, bool) {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].Action == ActionMove {
			return p[i].Point, true
		}
	}
	return geom.Point{}, false
}

// spliceActions inserts one signal entry per scheduled action into the move buffer
// Index is floor(steps*when) against the growing sequence, applied in declaration
// order: a later action with the same index lands before the earlier one
func spliceActions(moves []Entry, steps int, actions []ScheduledAction) Path {
	out := make(Path, len(moves), len(moves)+len(actions))
	copy(out, moves)
	for _, sa := range actions {
		if sa.Action == ActionMove {
			panic("curve: scheduled action must be a signal, not move")
		}
		idx := int(math.Floor(float64(steps) * sa.When))
		idx = max(0, min(idx, len(out)))
		out = slices.Insert(out, idx, Signal(sa.Action))
	}
	return out
}
