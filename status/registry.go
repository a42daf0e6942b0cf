// Package status holds lock-free counters and gauges shared between the
// simulation goroutine and whatever reports on it (status line, headless dump)
package status

import (
	"sort"
	"sync"
	"sync/atomic"
)

// metricMap registers metrics by name; lookups after registration are lock-free
// for callers that cache the returned pointer
type metricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func newMetricMap[T any]() *metricMap[T] {
	return &metricMap[T]{items: make(map[string]*T)}
}

func (m *metricMap[T]) get(key string) *T {
	m.mu.RLock()
	if ptr, ok := m.items[key]; ok {
		m.mu.RUnlock()
		return ptr
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[key]; ok {
		return ptr
	}
	ptr := new(T)
	m.items[key] = ptr
	return ptr
}

// rangeSorted visits metrics in key order
func (m *metricMap[T]) rangeSorted(fn func(key string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fn(k, m.items[k])
	}
}

// Registry is the metrics facade
// Components cache pointers at construction; tick code writes the atomics directly
type Registry struct {
	counters *metricMap[atomic.Int64]
	gauges   *metricMap[AtomicFloat]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		counters: newMetricMap[atomic.Int64](),
		gauges:   newMetricMap[AtomicFloat](),
	}
}

// Counter returns the named counter, creating it on first use
func (r *Registry) Counter(name string) *atomic.Int64 {
	return r.counters.get(name)
}

// Gauge returns the named gauge, creating it on first use
func (r *Registry) Gauge(name string) *AtomicFloat {
	return r.gauges.get(name)
}

// Sample is a point-in-time copy of one metric
type Sample struct {
	Name  string
	Value float64
}

// Snapshot copies every metric, counters first, each group sorted by name
func (r *Registry) Snapshot() []Sample {
	var out []Sample
	r.counters.rangeSorted(func(k string, v *atomic.Int64) {
		out = append(out, Sample{Name: k, Value: float64(v.Load())})
	})
	r.gauges.rangeSorted(func(k string, v *AtomicFloat) {
		out = append(out, Sample{Name: k, Value: v.Get()})
	})
	return out
}
