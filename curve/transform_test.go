package curve

import (
	"reflect"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/lixenwraith/starlane/geom"
)

func samplePath() Path {
	return Spline(Template{
		Points:  []geom.Point{geom.Pt(0, 0), geom.Pt(60, 40), geom.Pt(-20, 120), geom.Pt(80, 200)},
		Actions: []ScheduledAction{FireAt(0.3), FireAt(0.6)},
	}, 24)
}

func TestMirrorInvolution(t *testing.T) {
	orig := samplePath()
	snapshot := orig.Clone()

	once := Mirror(orig)
	twice := Mirror(once)

	if !reflect.DeepEqual(twice, orig) {
		t.Errorf("mirror twice differs from original")
	}
	if !reflect.DeepEqual(orig, snapshot) {
		t.Errorf("Mirror mutated its input")
	}
	for i := range orig {
		if once[i].Action != orig[i].Action {
			t.Fatalf("entry %d action changed: %v -> %v", i, orig[i].Action, once[i].Action)
		}
		if !orig[i].IsMove() {
			if once[i] != orig[i] {
				t.Errorf("signal entry %d changed: %v", i, once[i])
			}
			continue
		}
		if once[i].Point.Y != orig[i].Point.Y {
			t.Errorf("entry %d y changed: %v -> %v", i, orig[i].Point, once[i].Point)
		}
		if once[i].Point.X != -orig[i].Point.X {
			t.Errorf("entry %d x not negated: %v -> %v", i, orig[i].Point, once[i].Point)
		}
	}
}

func TestTranslateRoundTrip(t *testing.T) {
	orig := samplePath()
	moved := Translate(orig, 37, -12)

	for i := range orig {
		if moved[i].Action != orig[i].Action {
			t.Fatalf("entry %d action changed", i)
		}
		if orig[i].IsMove() {
			want := geom.Pt(orig[i].Point.X+37, orig[i].Point.Y-12)
			if moved[i].Point != want {
				t.Errorf("entry %d = %v, want %v", i, moved[i].Point, want)
			}
		}
	}

	back := Translate(moved, -37, 12)
	if !reflect.DeepEqual(back, orig) {
		t.Errorf("translate round trip differs from original")
	}
}

func TestCacheBuildsOnce(t *testing.T) {
	c := NewCache()
	var builds atomic.Int32
	build := func() Path {
		builds.Add(1)
		return samplePath()
	}

	var wg sync.WaitGroup
	results := make([]Path, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.Get("swoop", build)
		}(i)
	}
	wg.Wait()

	if builds.Load() != 1 {
		t.Errorf("builds = %d, want 1", builds.Load())
	}
	for i := 1; i < len(results); i++ {
		if &results[i][0] != &results[0][0] {
			t.Fatalf("result %d is not the shared template", i)
		}
	}

	c.Get("dive", build)
	if builds.Load() != 2 || c.Len() != 2 || !c.Has("dive") || c.Has("loop") {
		t.Errorf("unexpected cache state: builds=%d len=%d", builds.Load(), c.Len())
	}
}

func TestCacheFailedBuildIsRetried(t *testing.T) {
	c := NewCache()

	func() {
		defer func() {
			if r := recover(); r != "bad control points" {
				t.Errorf("recovered %v, want the build panic", r)
			}
		}()
		c.Get("swoop", func() Path { panic("bad control points") })
	}()

	if c.Has("swoop") {
		t.Error("failed build left a cache entry")
	}

	p := c.Get("swoop", samplePath)
	if len(p) == 0 {
		t.Fatal("rebuild after failed build returned an empty path")
	}
	if !reflect.DeepEqual(p, samplePath()) {
		t.Error("rebuild returned the wrong template")
	}
	if c.Len() != 1 {
		t.Errorf("len = %d, want 1", c.Len())
	}
}

func TestWalkerOwnsTranslatedCopy(t *testing.T) {
	tmpl := Line{Start: geom.Pt(0, 0), End: geom.Pt(0, 30), Actions: []ScheduledAction{FireAt(0.5)}}.Steps(3)
	w := NewWalker(tmpl, geom.Pt(100, 50))

	if w.Remaining() != 5 {
		t.Fatalf("remaining = %d, want 5", w.Remaining())
	}

	var moves []geom.Point
	fires := 0
	for {
		e, ok := w.Next()
		if !ok {
			break
		}
		if p, isMove := e.Location(); isMove {
			moves = append(moves, p)
		} else {
			fires++
		}
	}

	want := []geom.Point{geom.Pt(100, 50), geom.Pt(100, 60), geom.Pt(100, 70), geom.Pt(100, 80)}
	if !reflect.DeepEqual(moves, want) {
		t.Errorf("moves = %v, want %v", moves, want)
	}
	if fires != 1 {
		t.Errorf("fires = %d, want 1", fires)
	}
	if !w.Done() || w.Index() != 5 {
		t.Errorf("walker not exhausted: index=%d", w.Index())
	}
	if _, ok := w.Peek(); ok {
		t.Error("Peek on exhausted walker returned ok")
	}
	if tmpl[0].Point != geom.Pt(0, 0) {
		t.Errorf("template mutated: %v", tmpl[0])
	}
}
