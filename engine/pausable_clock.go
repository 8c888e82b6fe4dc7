package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock provides game time that stands still while paused
// Game elapsed = real elapsed - total paused time
type PausableClock struct {
	mu sync.RWMutex

	source        Clock
	realStartTime time.Time // When the clock was created (real time)
	gameStartTime time.Time // Game time epoch

	isPaused        atomic.Bool
	pauseStartTime  time.Time     // When the current pause started (real time)
	totalPausedTime time.Duration // Cumulative pause duration
}

// NewPausableClock creates a pausable clock over the system clock
func NewPausableClock() *PausableClock {
	return NewPausableClockFrom(NewTimeProvider())
}

// NewPausableClockFrom creates a pausable clock reading real time from source
func NewPausableClockFrom(source Clock) *PausableClock {
	now := source.Now()
	return &PausableClock{
		source:        source,
		realStartTime: now,
		gameStartTime: now,
	}
}

// Now returns current game time
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		return pc.gameStartTime.Add(pc.pauseStartTime.Sub(pc.realStartTime) - pc.totalPausedTime)
	}
	return pc.gameStartTime.Add(pc.source.Now().Sub(pc.realStartTime) - pc.totalPausedTime)
}

// Elapsed returns game time since the clock was created
func (pc *PausableClock) Elapsed() time.Duration {
	return pc.Now().Sub(pc.gameStartTime)
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		pc.pauseStartTime = pc.source.Now()
	}
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		if !pc.pauseStartTime.IsZero() {
			pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStartTime)
			pc.pauseStartTime = time.Time{}
		}
	}
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() && !pc.pauseStartTime.IsZero() {
		total += pc.source.Now().Sub(pc.pauseStartTime)
	}
	return total
}
