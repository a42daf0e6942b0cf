// Package shapes loads the enemy flight-shape catalog and serves generated
// templates through a curve.Cache, so each shape is sampled once per process
package shapes

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/starlane/curve"
	"github.com/lixenwraith/starlane/geom"
	"github.com/lixenwraith/starlane/parameter"
)

// MirroredSuffix names the auto-registered mirror of a shape with mirror = true
const MirroredSuffix = ".mirrored"

// Shape kinds
const (
	KindSpline   = "spline"
	KindLine     = "line"
	KindPolyline = "polyline"
)

var (
	ErrUnknownShape = errors.New("unknown shape")
	ErrInvalidShape = errors.New("invalid shape")
)

//go:embed default.toml
var defaultCatalog []byte

// ActionDef is one scheduled signal as written in the catalog
type ActionDef struct {
	When   float64 `toml:"when"`
	Action string  `toml:"action"`
}

// Definition is one catalog entry
type Definition struct {
	Name    string       `toml:"name"`
	Kind    string       `toml:"kind"`
	Steps   int          `toml:"steps"`
	Speed   float64      `toml:"speed"`
	Points  [][2]float64 `toml:"points"`
	Actions []ActionDef  `toml:"actions"`
	Mirror  bool         `toml:"mirror"`
}

type file struct {
	Shapes []Definition `toml:"shape"`
}

// Catalog is an immutable set of shape definitions backed by a template cache
type Catalog struct {
	defs  map[string]Definition
	order []string
	cache *curve.Cache
	// prefix namespaces keys inside a shared cache
	prefix string
}

// Parse decodes and validates catalog TOML into a catalog with its own cache
func Parse(data []byte) (*Catalog, error) {
	return parse(data, curve.NewCache(), "")
}

// Load reads catalog TOML from r
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read shape catalog: %w", err)
	}
	return Parse(data)
}

// LoadFile reads a catalog from disk
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open shape catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("shapes: loaded %d shapes from %s", len(c.order), path)
	return c, nil
}

var defaultOnce = sync.OnceValue(func() *Catalog {
	c, err := parse(defaultCatalog, curve.Templates, "shape/")
	if err != nil {
		panic(fmt.Errorf("embedded shape catalog: %w", err))
	}
	return c
})

// Default returns the embedded catalog, cached in the process-wide curve.Templates
func Default() *Catalog {
	return defaultOnce()
}

func parse(data []byte, cache *curve.Cache, prefix string) (*Catalog, error) {
	var f file
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("decode shape catalog: %w", err)
	}

	c := &Catalog{
		defs:   make(map[string]Definition, len(f.Shapes)),
		cache:  cache,
		prefix: prefix,
	}
	for i, d := range f.Shapes {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("shape #%d: %w", i+1, err)
		}
		names := []string{d.Name}
		if d.Mirror {
			names = append(names, d.Name+MirroredSuffix)
		}
		for _, n := range names {
			if _, dup := c.defs[n]; dup {
				return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidShape, n)
			}
			c.defs[n] = d
			c.order = append(c.order, n)
		}
	}
	return c, nil
}

// Validate checks the definition can be built
func (d Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidShape)
	}
	switch d.Kind {
	case KindSpline:
		if len(d.Points) < 1 {
			return fmt.Errorf("%w: %s: spline needs at least one point", ErrInvalidShape, d.Name)
		}
	case KindLine:
		if len(d.Points) != 2 {
			return fmt.Errorf("%w: %s: line needs exactly two points", ErrInvalidShape, d.Name)
		}
	case KindPolyline:
		if len(d.Points) < 2 {
			return fmt.Errorf("%w: %s: polyline needs at least two points", ErrInvalidShape, d.Name)
		}
	default:
		return fmt.Errorf("%w: %s: unknown kind %q", ErrInvalidShape, d.Name, d.Kind)
	}

	if d.Kind == KindLine && d.Steps <= 0 && d.Speed <= 0 {
		return fmt.Errorf("%w: %s: line needs steps or speed", ErrInvalidShape, d.Name)
	}
	if d.Steps < 0 {
		return fmt.Errorf("%w: %s: steps must not be negative", ErrInvalidShape, d.Name)
	}
	if d.Speed < 0 {
		return fmt.Errorf("%w: %s: speed must not be negative", ErrInvalidShape, d.Name)
	}
	if d.Kind == KindSpline && d.Speed != 0 {
		return fmt.Errorf("%w: %s: speed applies to line and polyline only", ErrInvalidShape, d.Name)
	}

	for _, a := range d.Actions {
		if a.When < 0 || a.When > 1 {
			return fmt.Errorf("%w: %s: action at %v outside [0,1]", ErrInvalidShape, d.Name, a.When)
		}
		act, err := curve.ParseAction(a.Action)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidShape, d.Name, err)
		}
		if act == curve.ActionMove {
			return fmt.Errorf("%w: %s: move cannot be scheduled", ErrInvalidShape, d.Name)
		}
	}
	return nil
}

// Template validates the definition and converts it to curve input
func (d Definition) Template() (curve.Template, error) {
	if err := d.Validate(); err != nil {
		return curve.Template{}, err
	}
	t := curve.Template{
		Points:  make([]geom.Point, len(d.Points)),
		Actions: make([]curve.ScheduledAction, len(d.Actions)),
	}
	for i, p := range d.Points {
		t.Points[i] = geom.Pt(p[0], p[1])
	}
	for i, a := range d.Actions {
		act, err := curve.ParseAction(a.Action)
		if err != nil {
			return curve.Template{}, fmt.Errorf("%w: %s: %v", ErrInvalidShape, d.Name, err)
		}
		t.Actions[i] = curve.ScheduledAction{When: a.When, Action: act}
	}
	return t, nil
}

// Build generates the origin-relative path for the definition
// Explicit steps win over speed; a curve with neither uses parameter.EnemySteps
func (d Definition) Build() (curve.Path, error) {
	t, err := d.Template()
	if err != nil {
		return nil, err
	}
	switch d.Kind {
	case KindLine:
		l := curve.Line{Start: t.Points[0], End: t.Points[1], Actions: t.Actions}
		if d.Steps > 0 {
			return l.Steps(d.Steps), nil
		}
		return l.Speed(d.Speed), nil
	case KindPolyline:
		pl := curve.Polyline{Points: t.Points, Actions: t.Actions}
		switch {
		case d.Steps > 0:
			return pl.Path(d.Steps), nil
		case d.Speed > 0:
			return pl.Speed(d.Speed), nil
		default:
			return pl.Path(parameter.EnemySteps), nil
		}
	default:
		steps := d.Steps
		if steps == 0 {
			steps = parameter.EnemySteps
		}
		return curve.Spline(t, steps), nil
	}
}

// Path returns the shared template for name, generating it on first use
// The result is read-only; relocate it with curve.Translate or curve.NewWalker
func (c *Catalog) Path(name string) (curve.Path, error) {
	d, ok := c.defs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
	return c.cache.Get(c.prefix+name, func() curve.Path {
		if name != d.Name {
			base, err := c.Path(d.Name)
			if err != nil {
				panic(err)
			}
			return curve.Mirror(base)
		}
		// Definitions were validated at parse time
		p, err := d.Build()
		if err != nil {
			panic(err)
		}
		return p
	}), nil
}

// Definition returns the raw definition for name
func (c *Catalog) Definition(name string) (Definition, bool) {
	d, ok := c.defs[name]
	return d, ok
}

// Names lists shapes in catalog order, mirrored variants right after their source
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}
