package status

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestMetricMapStablePointers(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyRockets)
	a.Store(3)
	if b := r.Ints.Get(KeyRockets); b != a || b.Load() != 3 {
		t.Fatal("Get returned a different metric for the same key")
	}
	if r.Ints.Count() != 1 {
		t.Errorf("count = %d, want 1", r.Ints.Count())
	}
}

func TestMetricMapRangeSorted(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	for _, k := range []string{"c", "a", "b"} {
		m.Get(k)
	}
	var keys []string
	m.Range(func(key string, _ *AtomicFloat) { keys = append(keys, key) })
	if strings.Join(keys, "") != "abc" {
		t.Errorf("range order = %v", keys)
	}
}

func TestRegistryLines(t *testing.T) {
	r := NewRegistry()
	r.Strings.Get(KeyPhase).Set("heart")
	r.Floats.Get(KeyFPS).Set(59.6)
	r.Ints.Get(KeyParticles).Store(420)
	r.Ints.Get(KeyRockets).Store(2)
	r.Ints.Get(KeyElapsed).Store(7250)
	r.Bools.Get(KeyPaused).Store(true)

	lines := r.Lines()
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if want := "heart  60 fps  7.2s [paused]"; lines[0] != want {
		t.Errorf("headline = %q, want %q", lines[0], want)
	}
	if !strings.HasPrefix(lines[1], "particles 420  rockets 2") {
		t.Errorf("counts = %q", lines[1])
	}
	if strings.Contains(lines[1], KeyElapsed) {
		t.Errorf("elapsed leaked into counts: %q", lines[1])
	}
}

func TestAtomicZeroValues(t *testing.T) {
	var f AtomicFloat
	var s AtomicString
	if f.Get() != 0 || s.Get() != "" {
		t.Error("zero values not empty")
	}
	f.Set(1.5)
	s.Set("x")
	if f.Get() != 1.5 || s.Get() != "x" {
		t.Error("stored values not returned")
	}
}

func TestFrameMeter(t *testing.T) {
	var m FrameMeter
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := m.Tick(start); got != 0 {
		t.Errorf("first tick = %v, want 0", got)
	}
	var fps float64
	for i := 1; i <= 100; i++ {
		fps = m.Tick(start.Add(time.Duration(i) * 20 * time.Millisecond))
	}
	if math.Abs(fps-50) > 1e-6 {
		t.Errorf("fps = %v, want 50", fps)
	}
}
