// Package status collects live show metrics for the HUD
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// Metric keys written by the frame loop
const (
	KeyFPS       = "fps"
	KeyPhase     = "phase"
	KeyRockets   = "rockets"
	KeyParticles = "particles"
	KeyStreaks   = "streaks"
	KeyPaused    = "paused"
	KeyMuted     = "muted"
	KeyElapsed   = "elapsed_ms"
)

// Registry is the metrics facade shared by the frame loop and the HUD
// Writers cache metric pointers once; the HUD reads them every frame
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Lines formats the HUD rows: a headline then the entity counts
func (r *Registry) Lines() []string {
	flags := ""
	if r.Bools.Get(KeyPaused).Load() {
		flags += " [paused]"
	}
	if r.Bools.Get(KeyMuted).Load() {
		flags += " [muted]"
	}
	elapsed := time.Duration(r.Ints.Get(KeyElapsed).Load()) * time.Millisecond

	head := fmt.Sprintf("%s  %.0f fps  %s%s",
		r.Strings.Get(KeyPhase).Get(),
		r.Floats.Get(KeyFPS).Get(),
		elapsed.Truncate(100*time.Millisecond),
		flags)

	var counts []string
	r.Ints.Range(func(key string, v *atomic.Int64) {
		if key == KeyElapsed {
			return
		}
		counts = append(counts, fmt.Sprintf("%s %d", key, v.Load()))
	})
	return []string{head, strings.Join(counts, "  ") + "   space pause  r restart  m mute  q quit"}
}

// FrameMeter derives frames per second from frame timestamps
// Smoothed with an exponential moving average
type FrameMeter struct {
	last time.Time
	fps  float64
}

// Tick records a frame at now and returns the smoothed rate
func (m *FrameMeter) Tick(now time.Time) float64 {
	if !m.last.IsZero() {
		if dt := now.Sub(m.last).Seconds(); dt > 0 {
			inst := 1 / dt
			if m.fps == 0 {
				m.fps = inst
			} else {
				m.fps += (inst - m.fps) * 0.1
			}
		}
	}
	m.last = now
	return m.fps
}
