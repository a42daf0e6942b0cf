package actor

import (
	"github.com/lixenwraith/starlane/collision"
	"github.com/lixenwraith/starlane/curve"
	"github.com/lixenwraith/starlane/geom"
	"github.com/lixenwraith/starlane/parameter"
)

// Projectile template keys in curve.Templates
const (
	projectileUpKey   = "projectile/up"
	projectileDownKey = "projectile/down"
)

// projectileTemplate returns the shared straight-line flight for one direction
func projectileTemplate(team Team) curve.Path {
	key, dy := projectileDownKey, parameter.FieldHeight+parameter.FieldMargin
	if team == TeamPlayer {
		key, dy = projectileUpKey, -dy
	}
	return curve.Templates.Get(key, func() curve.Path {
		return curve.Line{End: geom.Pt(0, dy)}.Speed(parameter.ProjectileSpeed)
	})
}

// Projectile flies a cached line translated to its muzzle position
type Projectile struct {
	team   Team
	pos    geom.Point
	walker *curve.Walker
	spent  bool
}

// NewProjectile launches a shot for team from origin
func NewProjectile(team Team, origin geom.Point) *Projectile {
	return &Projectile{
		team:   team,
		pos:    origin,
		walker: curve.NewWalker(projectileTemplate(team), origin),
	}
}

// Update advances one entry; returns false once the flight is over or spent
func (p *Projectile) Update() bool {
	if p.spent {
		return false
	}
	e, ok := p.walker.Next()
	if !ok {
		p.spent = true
		return false
	}
	if loc, isMove := e.Location(); isMove {
		p.pos = loc
	}
	return true
}

// Team returns the firing side
func (p *Projectile) Team() Team { return p.team }

// Spent reports whether the projectile already hit something or ran out
func (p *Projectile) Spent() bool { return p.spent }

func (p *Projectile) Position() geom.Point { return p.pos }

func (p *Projectile) Hitbox(collision.Body) []geom.Bounds {
	return []geom.Bounds{geom.Box(parameter.ProjectileHalfWidth, parameter.ProjectileHalfHeight)}
}

func (p *Projectile) DamageAgainst(defender collision.Body) int {
	if t, ok := teamOf(defender); ok && t == p.team {
		return 0
	}
	return parameter.ProjectileDamage
}
