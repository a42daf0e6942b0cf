// Package actor is a reference driver over the motion, timing and collision core:
// enemies walk cached shape templates and fire on path signals, projectiles fly
// speed-derived lines, the player absorbs hits behind an invulnerability window.
// Each actor owns its scheduler and walker; nothing here is shared between actors
package actor

import (
	"github.com/lixenwraith/starlane/collision"
	"github.com/lixenwraith/starlane/geom"
)

// Team decides who may hit whom
type Team uint8

const (
	TeamPlayer Team = iota
	TeamEnemy
)

func (t Team) String() string {
	if t == TeamPlayer {
		return "player"
	}
	return "enemy"
}

// teamOf extracts the team of any actor in this package
func teamOf(b collision.Body) (Team, bool) {
	switch v := b.(type) {
	case *Player:
		return TeamPlayer, true
	case *Enemy:
		return TeamEnemy, true
	case *Projectile:
		return v.team, true
	}
	return 0, false
}

// Compile-time capability checks
var (
	_ collision.Attacker = (*Enemy)(nil)
	_ collision.Defender = (*Enemy)(nil)
	_ collision.Attacker = (*Projectile)(nil)
	_ collision.Defender = (*Player)(nil)
)

// inField reports whether p is inside the playfield expanded by margin
func inField(field geom.Bounds, p geom.Point, margin float64) bool {
	return p.X >= field.Left-margin && p.X <= field.Right+margin &&
		p.Y >= field.Top-margin && p.Y <= field.Bottom+margin
}
