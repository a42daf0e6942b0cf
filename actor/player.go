package actor

import (
	"github.com/lixenwraith/starlane/collision"
	"github.com/lixenwraith/starlane/engine"
	"github.com/lixenwraith/starlane/geom"
	"github.com/lixenwraith/starlane/parameter"
)

const (
	tagPlayerWeapon = "weapon"
	tagPlayerShield = "invulnerable"
)

// Player is the user-controlled ship
type Player struct {
	pos          geom.Point
	field        geom.Bounds
	sched        *engine.Scheduler
	health       int
	invulnerable bool
}

// NewPlayer spawns the ship at pos, clamped to field
func NewPlayer(pos geom.Point, field geom.Bounds, clock engine.Clock) *Player {
	p := &Player{
		field:  field,
		sched:  engine.NewScheduler(clock),
		health: parameter.PlayerHealth,
	}
	p.pos = p.clamp(pos)
	return p
}

// Update runs due timers (weapon cooldown, invulnerability expiry)
func (p *Player) Update() {
	p.sched.ExecuteDueOperations()
}

// Move shifts the ship by (dx, dy) world units, staying inside the field
func (p *Player) Move(dx, dy float64) {
	p.pos = p.clamp(p.pos.Offset(dx, dy))
}

func (p *Player) clamp(pt geom.Point) geom.Point {
	pt.X = max(p.field.Left+parameter.PlayerHalfWidth, min(pt.X, p.field.Right-parameter.PlayerHalfWidth))
	pt.Y = max(p.field.Top+parameter.PlayerHalfHeight, min(pt.Y, p.field.Bottom-parameter.PlayerHalfHeight))
	return pt
}

// TryFire reports whether the weapon cooldown allowed a shot
func (p *Player) TryFire() bool {
	if !p.Alive() {
		return false
	}
	return p.sched.ScheduleOperation(tagPlayerWeapon, parameter.PlayerFireCooldown, nil)
}

func (p *Player) Position() geom.Point { return p.pos }

// Health returns remaining hit points
func (p *Player) Health() int { return p.health }

// Alive reports whether the player has health left
func (p *Player) Alive() bool { return p.health > 0 }

// Invulnerable reports whether the post-hit grace period is active
func (p *Player) Invulnerable() bool { return p.invulnerable }

// Hitbox exposes the full hull to enemy bodies and only the core to projectiles;
// while invulnerable only the core is presented to anyone
func (p *Player) Hitbox(other collision.Body) []geom.Bounds {
	core := geom.Box(parameter.PlayerCoreHalfSize, parameter.PlayerCoreHalfSize)
	if p.invulnerable {
		return []geom.Bounds{core}
	}
	if _, isProjectile := other.(*Projectile); isProjectile {
		return []geom.Bounds{core}
	}
	return []geom.Bounds{
		geom.Box(parameter.PlayerHalfWidth, parameter.PlayerHalfHeight/2).Translate(geom.Pt(0, parameter.PlayerHalfHeight/2)),
		geom.Box(parameter.PlayerHalfWidth/3, parameter.PlayerHalfHeight),
	}
}

// ReceiveHit refuses damage while invulnerable; an effective hit opens the grace window
func (p *Player) ReceiveHit(damage int) bool {
	if p.invulnerable || !p.Alive() {
		return false
	}
	p.health -= damage
	p.invulnerable = true
	p.sched.ScheduleOperation(tagPlayerShield, parameter.PlayerInvulnerability, func() {
		p.invulnerable = false
	})
	return true
}
