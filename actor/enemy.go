package actor

import (
	"github.com/lixenwraith/starlane/collision"
	"github.com/lixenwraith/starlane/curve"
	"github.com/lixenwraith/starlane/engine"
	"github.com/lixenwraith/starlane/geom"
	"github.com/lixenwraith/starlane/parameter"
)

// Scheduler tags used by enemies
const (
	tagEnemyWeapon = "weapon"
	tagEnemyFrame  = "frame"
)

// Enemy follows one shape and fires when its path says so
type Enemy struct {
	ID    int
	Shape string

	pos    geom.Point
	walker *curve.Walker
	sched  *engine.Scheduler
	health int
	frame  int

	// fire is invoked from Update when a fire signal clears the cooldown
	fire func(from geom.Point)
}

// NewEnemy places an enemy at origin on its own translated copy of template
func NewEnemy(id int, shape string, template curve.Path, origin geom.Point, clock engine.Clock, fire func(geom.Point)) *Enemy {
	e := &Enemy{
		ID:     id,
		Shape:  shape,
		pos:    origin,
		walker: curve.NewWalker(template, origin),
		sched:  engine.NewScheduler(clock),
		health: parameter.EnemyHealth,
		fire:   fire,
	}
	e.sched.ScheduleOperation(tagEnemyFrame, parameter.EnemyFrameDelay, e.advanceFrame)
	return e
}

// advanceFrame re-schedules itself under the same tag
func (e *Enemy) advanceFrame() {
	e.frame = (e.frame + 1) % parameter.EnemyFrameCount
	e.sched.ScheduleOperation(tagEnemyFrame, parameter.EnemyFrameDelay, e.advanceFrame)
}

// Update consumes one path entry; returns false once the path is exhausted
func (e *Enemy) Update() bool {
	e.sched.ExecuteDueOperations()

	entry, ok := e.walker.Next()
	if !ok {
		return false
	}
	if p, isMove := entry.Location(); isMove {
		e.pos = p
		return true
	}
	if entry.Action == curve.ActionFire {
		e.tryFire()
	}
	return true
}

// tryFire discharges only when the cooldown tag was free
func (e *Enemy) tryFire() bool {
	if !e.sched.ScheduleOperation(tagEnemyWeapon, parameter.EnemyFireCooldown, nil) {
		return false
	}
	if e.fire != nil {
		e.fire(e.pos)
	}
	return true
}

// Teardown abandons pending timers
func (e *Enemy) Teardown() {
	e.sched.Clear()
}

func (e *Enemy) Position() geom.Point { return e.pos }

// Frame returns the current animation frame
func (e *Enemy) Frame() int { return e.frame }

// Alive reports remaining health
func (e *Enemy) Alive() bool { return e.health > 0 }

// Walker exposes the enemy's path cursor for drawing
func (e *Enemy) Walker() *curve.Walker { return e.walker }

func (e *Enemy) Hitbox(collision.Body) []geom.Bounds {
	return []geom.Bounds{geom.Box(parameter.EnemyHalfWidth, parameter.EnemyHalfHeight)}
}

func (e *Enemy) DamageAgainst(collision.Body) int {
	return parameter.EnemyContactDamage
}

func (e *Enemy) ReceiveHit(damage int) bool {
	if e.health <= 0 {
		return false
	}
	e.health -= damage
	return true
}
