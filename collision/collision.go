// Package collision resolves hits between bodies with compound rectangular hitboxes
//
// Bodies are described by small capability interfaces rather than a concrete type:
// anything with a position and a hitbox can be tested, anything that also deals
// damage can attack, anything that also receives hits can defend.
package collision

import (
	"sync/atomic"

	"github.com/lixenwraith/starlane/geom"
	"github.com/lixenwraith/starlane/status"
)

// HasPosition exposes the body's current world position
type HasPosition interface {
	Position() geom.Point
}

// HasHitbox exposes body-local rectangles; the set may depend on the opposing body
// (an invulnerable player presents a different mask than a vulnerable one)
type HasHitbox interface {
	Hitbox(other Body) []geom.Bounds
}

// DealsDamage reports the damage dealt to a specific defender
type DealsDamage interface {
	DamageAgainst(defender Body) int
}

// ReceivesHits applies damage and reports whether it had effect
type ReceivesHits interface {
	ReceiveHit(damage int) bool
}

// Body is any collision participant
type Body interface {
	HasPosition
	HasHitbox
}

// Attacker is a body that deals damage
type Attacker interface {
	Body
	DealsDamage
}

// Defender is a body that receives hits
type Defender interface {
	Body
	ReceivesHits
}

// Result is the closed outcome of one hit attempt
type Result uint8

const (
	// Miss means no hitbox pair overlapped
	Miss Result = iota
	// Ineffective means boxes overlapped but the defender refused the hit
	Ineffective
	// Effective means the defender took the hit
	Effective
)

func (r Result) String() string {
	switch r {
	case Miss:
		return "miss"
	case Ineffective:
		return "ineffective"
	case Effective:
		return "effective"
	default:
		return "unknown"
	}
}

// Overlaps reports whether any rectangle of a intersects any rectangle of b
// Rectangles must already be in the same space; touching edges count
func Overlaps(a, b []geom.Bounds) bool {
	for _, ra := range a {
		for _, rb := range b {
			if ra.Intersects(rb) {
				return true
			}
		}
	}
	return false
}

// Touching reports whether two bodies' world-space hitboxes overlap, without side effects
func Touching(a, b Body) bool {
	return Overlaps(
		geom.TranslateAll(a.Hitbox(b), a.Position()),
		geom.TranslateAll(b.Hitbox(a), b.Position()),
	)
}

// Arbiter resolves hit attempts and counts outcomes
type Arbiter struct {
	outcomes [3]*atomic.Int64
}

// NewArbiter creates an arbiter, reg may be nil to skip metrics
func NewArbiter(reg *status.Registry) *Arbiter {
	a := &Arbiter{}
	if reg != nil {
		for r := Miss; r <= Effective; r++ {
			a.outcomes[r] = reg.Counter("hit." + r.String())
		}
	}
	return a
}

// AttemptToHit tests attacker against defender and, on overlap, delivers the
// attacker's damage to the defender. Only the delivery step mutates anything
func (a *Arbiter) AttemptToHit(attacker Attacker, defender Defender) Result {
	result := Miss
	if Touching(attacker, defender) {
		result = Ineffective
		if defender.ReceiveHit(attacker.DamageAgainst(defender)) {
			result = Effective
		}
	}
	if c := a.outcomes[result]; c != nil {
		c.Add(1)
	}
	return result
}
