package curve

import (
	"testing"

	"github.com/lixenwraith/starlane/geom"
)

func TestLineDiagonalWithFire(t *testing.T) {
	l := Line{Start: geom.Pt(0, 0), End: geom.Pt(100, 100), Actions: []ScheduledAction{FireAt(0.5)}}
	p := l.Steps(10)

	if len(p) != 12 {
		t.Fatalf("len = %d, want 12", len(p))
	}
	if p.Count(ActionMove) != 11 {
		t.Errorf("moves = %d, want 11", p.Count(ActionMove))
	}
	if p[5].Action != ActionFire {
		t.Errorf("entry 5 = %v, want fire", p[5])
	}
	for i, m := range p.Moves() {
		if m.X != m.Y {
			t.Errorf("move %d off diagonal: %v", i, m)
		}
		if want := float64(i * 10); m.X != want {
			t.Errorf("move %d = %v, want x=%v", i, m, want)
		}
	}
}

func TestLineSpeed(t *testing.T) {
	l := Line{Start: geom.Pt(0, 0), End: geom.Pt(30, 40)}
	if l.Length() != 50 {
		t.Fatalf("length = %v, want 50", l.Length())
	}

	tests := []struct {
		speed float64
		want  int
	}{
		{7, 8},   // floor(50/7) = 7 steps
		{10, 6},  // exact
		{100, 2}, // clamped to one step
	}
	for _, tt := range tests {
		p := l.Speed(tt.speed)
		if len(p) != tt.want {
			t.Errorf("speed %v: len = %d, want %d", tt.speed, len(p), tt.want)
		}
		last, _ := p.LastMove()
		if last != l.End {
			t.Errorf("speed %v: last = %v, want %v", tt.speed, last, l.End)
		}
	}
}

func TestPolylineAllocatesByLength(t *testing.T) {
	pl := Polyline{
		Points:  []geom.Point{geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(100, 50)},
		Actions: []ScheduledAction{FireAt(0.5)},
	}
	p := pl.Path(30)

	if len(p) != 32 {
		t.Fatalf("len = %d, want 32", len(p))
	}
	if p[15].Action != ActionFire {
		t.Errorf("entry 15 = %v, want fire", p[15])
	}

	moves := p.Moves()
	// 20 steps on the first segment, 10 on the second, junction emitted once
	if moves[20] != geom.Pt(100, 0) {
		t.Errorf("junction = %v, want (100,0)", moves[20])
	}
	if moves[21] != geom.Pt(100, 5) {
		t.Errorf("after junction = %v, want (100,5)", moves[21])
	}
	for i := 1; i < len(moves); i++ {
		if moves[i] == moves[i-1] {
			t.Errorf("duplicate position at %d: %v", i, moves[i])
		}
	}
}

func TestPolylineSpeed(t *testing.T) {
	pl := Polyline{Points: []geom.Point{geom.Pt(0, 0), geom.Pt(30, 0), geom.Pt(30, 10)}}

	tests := []struct {
		speed float64
		want  int
	}{
		{10, 5},  // length 40, 4 steps
		{7, 6},   // floor(40/7) = 5 steps
		{500, 2}, // clamped to one step
	}
	for _, tt := range tests {
		p := pl.Speed(tt.speed)
		if len(p) != tt.want {
			t.Errorf("speed %v: len = %d, want %d", tt.speed, len(p), tt.want)
		}
		if last, _ := p.LastMove(); last != geom.Pt(30, 10) {
			t.Errorf("speed %v: last = %v, want (30,10)", tt.speed, last)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("zero speed should panic")
		}
	}()
	pl.Speed(0)
}

func TestPolylineEndpoints(t *testing.T) {
	cases := []struct {
		name   string
		points []geom.Point
		steps  int
	}{
		{"uneven", []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(13, 10)}, 7},
		{"zigzag", []geom.Point{geom.Pt(-40, 0), geom.Pt(0, 80), geom.Pt(40, 0), geom.Pt(80, 80)}, 45},
		{"sliver", []geom.Point{geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(100, 0.6)}, 10},
		{"single segment", []geom.Point{geom.Pt(3, 4), geom.Pt(9, 12)}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Polyline{Points: tc.points}.Path(tc.steps)
			first, _ := p.FirstMove()
			last, _ := p.LastMove()
			if first != tc.points[0].Round() {
				t.Errorf("first = %v, want %v", first, tc.points[0])
			}
			if want := tc.points[len(tc.points)-1].Round(); last != want {
				t.Errorf("last = %v, want %v", last, want)
			}
			if len(p) != tc.steps+1 {
				t.Errorf("len = %d, want %d", len(p), tc.steps+1)
			}
		})
	}
}

func TestPolylineDegenerate(t *testing.T) {
	p := Polyline{Points: []geom.Point{geom.Pt(5, 5), geom.Pt(5, 5)}}.Path(4)
	if len(p) != 5 {
		t.Fatalf("len = %d, want 5", len(p))
	}
	for _, m := range p.Moves() {
		if m != geom.Pt(5, 5) {
			t.Errorf("move = %v, want (5,5)", m)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for single-point polyline")
		}
	}()
	Polyline{Points: []geom.Point{geom.Pt(0, 0)}}.Path(4)
}
