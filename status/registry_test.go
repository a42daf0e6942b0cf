package status

import (
	"sync"
	"testing"
)

func TestCounterPointerIsStable(t *testing.T) {
	r := NewRegistry()
	a := r.Counter("world.ticks")
	b := r.Counter("world.ticks")
	if a != b {
		t.Fatal("Counter returned different pointers for the same name")
	}
	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("counter = %d, want 3", b.Load())
	}
}

func TestSnapshotOrder(t *testing.T) {
	r := NewRegistry()
	r.Counter("hit.miss").Add(2)
	r.Counter("hit.effective").Add(1)
	r.Gauge("world.fps").Set(59.5)

	got := r.Snapshot()
	want := []Sample{{"hit.effective", 1}, {"hit.miss", 2}, {"world.fps", 59.5}}
	if len(got) != len(want) {
		t.Fatalf("snapshot = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestConcurrentRegistration(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Counter("shared").Add(1)
			}
		}()
	}
	wg.Wait()
	if got := r.Counter("shared").Load(); got != 800 {
		t.Errorf("shared = %d, want 800", got)
	}
}
