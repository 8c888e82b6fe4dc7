// Package audio synthesizes the show's sound cues with beep and plays them on the system speaker
package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Cue names a sound event of the show
type Cue int

const (
	CueLaunch Cue = iota
	CueExplosion
	CueHeartbeat
	CueFinale
)

func (c Cue) String() string {
	switch c {
	case CueLaunch:
		return "launch"
	case CueExplosion:
		return "explosion"
	case CueHeartbeat:
		return "heartbeat"
	case CueFinale:
		return "finale"
	default:
		return fmt.Sprintf("cue(%d)", int(c))
	}
}

// Player plays cues; implementations must be safe to call from the frame loop
type Player interface {
	Play(Cue)
	SetMuted(bool)
	Muted() bool
	Close()
}

// Synthesize builds the streamer for a cue at the given volume
func Synthesize(c Cue, rate beep.SampleRate, vol float64) beep.Streamer {
	switch c {
	case CueLaunch:
		return NewLaunchSound(rate, vol)
	case CueExplosion:
		return NewExplosionSound(rate, vol)
	case CueHeartbeat:
		return NewHeartbeatSound(rate, vol)
	case CueFinale:
		return NewFinaleSound(rate, vol)
	default:
		return nil
	}
}

// SoundManager plays cues on the speaker, which mixes them
type SoundManager struct {
	mu          sync.Mutex
	volume      float64
	muted       atomic.Bool
	initialized bool
}

// NewSoundManager creates a manager; nothing plays until Initialize succeeds
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{volume: volume}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	sm.initialized = true
	return nil
}

// Play queues a cue unless muted
func (sm *SoundManager) Play(c Cue) {
	if sm.muted.Load() {
		return
	}
	s := Synthesize(c, sampleRate, sm.volume)
	if s == nil {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Play(s)
}

// SetMuted silences new cues and drops the ones in flight
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
	if !muted {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		speaker.Clear()
	}
}

func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// Close stops playback and releases the speaker
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Nop is the silent Player used when audio is disabled or unavailable
type Nop struct {
	muted atomic.Bool
}

func (n *Nop) Play(Cue)            {}
func (n *Nop) SetMuted(muted bool) { n.muted.Store(muted) }
func (n *Nop) Muted() bool         { return n.muted.Load() }
func (n *Nop) Close()              {}

// Open returns a speaker-backed Player, or a silent one when disabled or when no
// audio backend is available
func Open(enabled bool, volume float64, muted bool) Player {
	if !enabled {
		p := &Nop{}
		p.SetMuted(muted)
		return p
	}
	sm := NewSoundManager(volume)
	if err := sm.Initialize(); err != nil {
		log.Printf("audio: falling back to silent mode: %v", err)
		p := &Nop{}
		p.SetMuted(muted)
		return p
	}
	sm.SetMuted(muted)
	return sm
}
