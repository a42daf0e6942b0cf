package curve

import (
	"testing"

	"github.com/lixenwraith/starlane/geom"
)

func fireIndices(p Path) []int {
	var out []int
	for i, e := range p {
		if e.Action == ActionFire {
			out = append(out, i)
		}
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSplineLengthAndEndpoints(t *testing.T) {
	tmpl := Template{
		Points: []geom.Point{
			geom.Pt(0, 0), geom.Pt(30, 90), geom.Pt(120, 60), geom.Pt(150, 0), geom.Pt(40, -40),
		},
		Actions: []ScheduledAction{FireAt(0.25), FireAt(0.8)},
	}

	for _, steps := range []int{1, 2, 7, 60, 121} {
		p := Spline(tmpl, steps)
		if want := steps + 1 + len(tmpl.Actions); len(p) != want {
			t.Fatalf("steps=%d: len = %d, want %d", steps, len(p), want)
		}
		if got := p.Count(ActionMove); got != steps+1 {
			t.Errorf("steps=%d: move count = %d, want %d", steps, got, steps+1)
		}
		first, _ := p.FirstMove()
		last, _ := p.LastMove()
		if first != tmpl.Points[0] {
			t.Errorf("steps=%d: first = %v, want %v", steps, first, tmpl.Points[0])
		}
		if last != tmpl.Points[len(tmpl.Points)-1] {
			t.Errorf("steps=%d: last = %v, want %v", steps, last, tmpl.Points[len(tmpl.Points)-1])
		}
	}
}

func TestSplineMinimumOrderThreePoints(t *testing.T) {
	// Three points make a single quadratic Bezier: midpoint is P0/4 + P1/2 + P2/4
	tmpl := Template{Points: []geom.Point{geom.Pt(0, 0), geom.Pt(50, 100), geom.Pt(100, 0)}}
	p := Spline(tmpl, 2)

	want := []geom.Point{geom.Pt(0, 0), geom.Pt(50, 50), geom.Pt(100, 0)}
	got := p.Moves()
	if len(got) != len(want) {
		t.Fatalf("moves = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("move %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSplineRoundsPositions(t *testing.T) {
	tmpl := Template{Points: []geom.Point{geom.Pt(0, 0), geom.Pt(33, 71), geom.Pt(97, 13), geom.Pt(5, 5)}}
	for _, e := range Spline(tmpl, 37) {
		if e.Point != e.Point.Round() {
			t.Fatalf("unrounded position %v", e.Point)
		}
	}
}

func TestSplineReducedOrder(t *testing.T) {
	two := Spline(Template{Points: []geom.Point{geom.Pt(0, 0), geom.Pt(40, 20)}}, 4)
	want := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 5), geom.Pt(20, 10), geom.Pt(30, 15), geom.Pt(40, 20)}
	for i, p := range two.Moves() {
		if p != want[i] {
			t.Errorf("two-point move %d = %v, want %v", i, p, want[i])
		}
	}

	one := Spline(Template{Points: []geom.Point{geom.Pt(7, -3)}}, 3)
	if len(one) != 4 {
		t.Fatalf("one-point len = %d, want 4", len(one))
	}
	for _, p := range one.Moves() {
		if p != geom.Pt(7, -3) {
			t.Errorf("one-point move = %v, want (7,-3)", p)
		}
	}
}

func TestSplineActionInsertion(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 10), geom.Pt(20, 0)}

	tests := []struct {
		name    string
		actions []ScheduledAction
		want    []int
	}{
		{"start", []ScheduledAction{FireAt(0)}, []int{0}},
		{"half", []ScheduledAction{FireAt(0.5)}, []int{2}},
		// floor(4*1) = 4 lands before the final move
		{"end", []ScheduledAction{FireAt(1)}, []int{4}},
		// earlier insertions are not compensated for: 0.75 -> index 3 right after the first
		{"sequential", []ScheduledAction{FireAt(0.5), FireAt(0.75)}, []int{2, 3}},
		{"tie", []ScheduledAction{FireAt(0.5), FireAt(0.5)}, []int{2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Spline(Template{Points: pts, Actions: tt.actions}, 4)
			if got := fireIndices(p); !equalInts(got, tt.want) {
				t.Errorf("fire indices = %v, want %v", got, tt.want)
			}
			last := p[len(p)-1]
			if !last.IsMove() || last.Point != geom.Pt(20, 0) {
				t.Errorf("last entry = %v, want move(20,0)", last)
			}
		})
	}
}

func TestSignalEntriesCarryNoLocation(t *testing.T) {
	p := Spline(Template{Points: []geom.Point{geom.Pt(5, 5), geom.Pt(9, 9), geom.Pt(12, 0)}, Actions: []ScheduledAction{FireAt(0.5)}}, 10)
	for _, e := range p {
		_, ok := e.Location()
		if ok != e.IsMove() {
			t.Errorf("entry %v: Location ok = %v", e, ok)
		}
	}
}

func TestSplineContractViolationsPanic(t *testing.T) {
	cases := map[string]func(){
		"zero steps":     func() { Spline(Template{Points: []geom.Point{geom.Pt(0, 0)}}, 0) },
		"negative steps": func() { Spline(Template{Points: []geom.Point{geom.Pt(0, 0)}}, -3) },
		"no points":      func() { Spline(Template{}, 5) },
		"move action": func() {
			Spline(Template{Points: []geom.Point{geom.Pt(0, 0)}, Actions: []ScheduledAction{{When: 0.5, Action: ActionMove}}}, 5)
		},
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			fn()
		})
	}
}

func TestParseAction(t *testing.T) {
	for _, s := range []string{"fire", "FIRE", " Fire "} {
		a, err := ParseAction(s)
		if err != nil || a != ActionFire {
			t.Errorf("ParseAction(%q) = %v, %v", s, a, err)
		}
	}
	if _, err := ParseAction("warp"); err == nil {
		t.Error("expected error for unknown action")
	}
	if ActionMove.String() != "move" || Action(9).String() != "action(9)" {
		t.Errorf("unexpected names: %s %s", ActionMove, Action(9))
	}
}
