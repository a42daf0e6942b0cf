package curve

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/starlane/geom"
)

// Action identifies what a path entry asks the driver to do
type Action uint8

const (
	// ActionMove relocates the actor to the entry's position
	ActionMove Action = iota
	// ActionFire is a pure signal to discharge the actor's weapon
	ActionFire
)

var actionNames = [...]string{
	ActionMove: "move",
	ActionFire: "fire",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// ParseAction resolves a case-insensitive action name
func ParseAction(s string) (Action, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("unknown path action %q", s)
}

// ScheduledAction places a signal at a fraction of total path progress
// Several actions may share the same When
type ScheduledAction struct {
	When   float64
	Action Action
}

// FireAt is shorthand for a Fire signal at progress when
func FireAt(when float64) ScheduledAction {
	return ScheduledAction{When: when, Action: ActionFire}
}

// Template is author-time, origin-relative curve data
// Treated as immutable once built
type Template struct {
	Points  []geom.Point
	Actions []ScheduledAction
}

// Entry is one discrete step of a generated path
// Point is meaningful only for ActionMove
type Entry struct {
	Action Action
	Point  geom.Point
}

// MoveTo builds a movement entry
func MoveTo(p geom.Point) Entry {
	return Entry{Action: ActionMove, Point: p}
}

// Signal builds a non-movement entry, which never carries a location
func Signal(a Action) Entry {
	return Entry{Action: a}
}

// IsMove reports whether the entry carries a location
func (e Entry) IsMove() bool {
	return e.Action == ActionMove
}

// Location returns the entry position, ok is false for signal entries
func (e Entry) Location() (geom.Point, bool) {
	if e.Action != ActionMove {
		return geom.Point{}, false
	}
	return e.Point, true
}

func (e Entry) String() string {
	if e.Action == ActionMove {
		return fmt.Sprintf("move(%g,%g)", e.Point.X, e.Point.Y)
	}
	return e.Action.String()
}
