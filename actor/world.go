package actor

import (
	"fmt"
	"log"
	"sync/atomic"

	"github.com/lixenwraith/starlane/collision"
	"github.com/lixenwraith/starlane/curve"
	"github.com/lixenwraith/starlane/engine"
	"github.com/lixenwraith/starlane/geom"
	"github.com/lixenwraith/starlane/parameter"
	"github.com/lixenwraith/starlane/shapes"
	"github.com/lixenwraith/starlane/status"
)

const tagWorldWave = "wave"

// EventKind classifies things a tick produced for outer collaborators (audio, HUD)
type EventKind uint8

const (
	EventFire EventKind = iota
	EventHit
	EventDestroyed
	EventPlayerDown
)

// Event is one observable outcome of a tick
type Event struct {
	Kind   EventKind
	Tick   uint64
	Team   Team
	At     geom.Point
	Result collision.Result
}

// Placement positions one enemy of a formation
type Placement struct {
	Shape  string
	Origin geom.Point
}

// Config wires a World to its collaborators
type Config struct {
	// Clock is the game clock every actor scheduler binds to, required
	Clock engine.Clock
	// Catalog supplies shape templates, required
	Catalog *shapes.Catalog
	// Registry receives world and hit counters, optional
	Registry *status.Registry
	// Formation is respawned whenever the field is clear, optional
	Formation []Placement
}

// World owns every actor and resolves their interactions once per tick
// Not safe for concurrent use: the driver serializes Tick with any reader
type World struct {
	clock   engine.Clock
	catalog *shapes.Catalog
	arbiter *collision.Arbiter
	sched   *engine.Scheduler

	field     geom.Bounds
	formation []Placement

	Player      *Player
	enemies     []*Enemy
	projectiles []*Projectile
	events      []Event

	tick   uint64
	nextID int

	statTicks     *atomic.Int64
	statDestroyed *atomic.Int64
	statShots     *atomic.Int64
	statEnemies   *status.AtomicFloat
}

// NewWorld creates a world with the player at the bottom center
// Panics on missing clock or catalog
func NewWorld(cfg Config) *World {
	if cfg.Clock == nil {
		panic("actor: world requires a clock")
	}
	if cfg.Catalog == nil {
		panic("actor: world requires a shape catalog")
	}
	reg := cfg.Registry
	if reg == nil {
		reg = status.NewRegistry()
	}

	field := geom.Bounds{Top: 0, Bottom: parameter.FieldHeight, Left: 0, Right: parameter.FieldWidth}
	w := &World{
		clock:         cfg.Clock,
		catalog:       cfg.Catalog,
		arbiter:       collision.NewArbiter(reg),
		sched:         engine.NewScheduler(cfg.Clock),
		field:         field,
		formation:     cfg.Formation,
		statTicks:     reg.Counter("world.ticks"),
		statDestroyed: reg.Counter("world.destroyed"),
		statShots:     reg.Counter("world.shots"),
		statEnemies:   reg.Gauge("world.enemies"),
	}
	w.Player = NewPlayer(geom.Pt(parameter.FieldWidth/2, parameter.FieldHeight-2*parameter.PlayerHalfHeight), field, cfg.Clock)
	return w
}

// Field returns the playfield bounds
func (w *World) Field() geom.Bounds { return w.field }

// SpawnEnemy places an enemy flying shape from origin
func (w *World) SpawnEnemy(shape string, origin geom.Point) (*Enemy, error) {
	tmpl, err := w.catalog.Path(shape)
	if err != nil {
		return nil, fmt.Errorf("spawn enemy: %w", err)
	}
	w.nextID++
	e := NewEnemy(w.nextID, shape, tmpl, origin, w.clock, func(from geom.Point) {
		w.launch(TeamEnemy, from)
	})
	w.enemies = append(w.enemies, e)
	return e, nil
}

// SpawnFormation spawns every placement, stopping at the first bad shape
func (w *World) SpawnFormation(f []Placement) error {
	for _, p := range f {
		if _, err := w.SpawnEnemy(p.Shape, p.Origin); err != nil {
			return err
		}
	}
	return nil
}

// PlayerFire launches a player shot if the weapon is ready
func (w *World) PlayerFire() bool {
	if !w.Player.TryFire() {
		return false
	}
	w.launch(TeamPlayer, w.Player.Position().Offset(0, -parameter.PlayerHalfHeight))
	return true
}

func (w *World) launch(team Team, from geom.Point) {
	w.projectiles = append(w.projectiles, NewProjectile(team, from))
	w.statShots.Add(1)
	w.emit(Event{Kind: EventFire, Team: team, At: from})
}

func (w *World) emit(ev Event) {
	ev.Tick = w.tick
	w.events = append(w.events, ev)
}

// Tick advances every actor one step and resolves collisions
func (w *World) Tick() {
	w.tick++
	w.statTicks.Store(int64(w.tick))
	w.sched.ExecuteDueOperations()

	w.Player.Update()

	live := w.enemies[:0]
	for _, e := range w.enemies {
		if e.Update() && inField(w.field, e.Position(), parameter.FieldMargin) {
			live = append(live, e)
			continue
		}
		e.Teardown()
	}
	clear(w.enemies[len(live):])
	w.enemies = live

	for _, p := range w.projectiles {
		p.Update()
	}

	w.resolveCollisions()
	w.cull()
	w.statEnemies.Set(float64(len(w.enemies)))

	if len(w.enemies) == 0 && len(w.formation) > 0 {
		w.sched.ScheduleOperation(tagWorldWave, parameter.WaveRespawnDelay, func() {
			if err := w.SpawnFormation(w.formation); err != nil {
				log.Printf("world: formation respawn failed: %v", err)
			}
		})
	}
}

func (w *World) resolveCollisions() {
	for _, p := range w.projectiles {
		if p.Spent() {
			continue
		}
		switch p.team {
		case TeamPlayer:
			for _, e := range w.enemies {
				if !e.Alive() {
					continue
				}
				if w.hit(p, e) {
					p.spent = true
					break
				}
			}
		case TeamEnemy:
			if w.Player.Alive() && w.hit(p, w.Player) {
				p.spent = true
			}
		}
	}

	for _, e := range w.enemies {
		if e.Alive() && w.Player.Alive() {
			w.hit(e, w.Player)
		}
	}
}

// hit runs one arbiter attempt and records what happened; true unless Miss
func (w *World) hit(att collision.Attacker, def collision.Defender) bool {
	res := w.arbiter.AttemptToHit(att, def)
	if res == collision.Miss {
		return false
	}
	team, _ := teamOf(def)
	w.emit(Event{Kind: EventHit, Team: team, At: def.Position(), Result: res})

	switch d := def.(type) {
	case *Enemy:
		if !d.Alive() {
			w.statDestroyed.Add(1)
			w.emit(Event{Kind: EventDestroyed, Team: TeamEnemy, At: d.Position()})
			log.Printf("world: tick %d enemy %d (%s) destroyed at %v", w.tick, d.ID, d.Shape, d.Position())
		}
	case *Player:
		if res == collision.Effective {
			log.Printf("world: tick %d player hit, health %d", w.tick, d.Health())
			if !d.Alive() {
				w.emit(Event{Kind: EventPlayerDown, Team: TeamPlayer, At: d.Position()})
			}
		}
	}
	return true
}

func (w *World) cull() {
	live := w.enemies[:0]
	for _, e := range w.enemies {
		if e.Alive() {
			live = append(live, e)
		} else {
			e.Teardown()
		}
	}
	clear(w.enemies[len(live):])
	w.enemies = live

	shots := w.projectiles[:0]
	for _, p := range w.projectiles {
		if !p.Spent() && inField(w.field, p.Position(), parameter.FieldMargin) {
			shots = append(shots, p)
		}
	}
	clear(w.projectiles[len(shots):])
	w.projectiles = shots
}

// DrainEvents returns and clears events produced since the last drain
func (w *World) DrainEvents() []Event {
	out := w.events
	w.events = nil
	return out
}

// Enemies returns live enemies; the slice is reused by the next tick
func (w *World) Enemies() []*Enemy { return w.enemies }

// Projectiles returns live projectiles; the slice is reused by the next tick
func (w *World) Projectiles() []*Projectile { return w.projectiles }

// TickCount returns ticks processed
func (w *World) TickCount() uint64 { return w.tick }

// Template exposes a catalog template, e.g. for path previews
func (w *World) Template(shape string) (curve.Path, error) {
	return w.catalog.Path(shape)
}
