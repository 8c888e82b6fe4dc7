package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length wave whose frequency may glide linearly
type oscillator struct {
	freq     float64
	glide    float64 // Hz added per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a wave of freq Hz lasting duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewGlide(freq, freq, duration, wave, rate)
}

// NewGlide creates a wave sweeping linearly from one frequency to another over duration
func NewGlide(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	glide := 0.0
	if duration > 0 {
		glide = (to - from) / duration.Seconds()
	}
	return &oscillator{
		freq:     from,
		glide:    glide,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.rate)
		o.phase += (o.freq + o.glide*t) / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream and ends it after total samples
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with a linear attack and release over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if rem := e.total - e.position; len(samples) > rem {
		samples = samples[:rem]
	}
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; zero and below is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a pure sine of freq Hz cut to duration with the given envelope
func tone(freq float64, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		// Above Nyquist; fall back to the hand oscillator which aliases instead of failing
		sine = NewOscillator(freq, duration, WaveSine, rate)
	}
	return NewEnvelope(beep.Take(rate.N(duration), sine), duration, attack, release, rate)
}

// NewLaunchSound is a rising noise whoosh mixed with a sine glide for a rocket leaving the ground
func NewLaunchSound(rate beep.SampleRate, vol float64) beep.Streamer {
	noise := NewEnvelope(NewOscillator(0, launchDuration, WaveNoise, rate),
		launchDuration, launchDuration/2, launchDuration/4, rate)
	whistle := NewEnvelope(NewGlide(300, 1200, launchDuration, WaveSine, rate),
		launchDuration, launchDuration/3, launchDuration/3, rate)
	return newVolume(beep.Mix(newVolume(noise, 0.5), newVolume(whistle, 0.2)), vol)
}

// NewExplosionSound is a low saw thump followed by crackling noise
func NewExplosionSound(rate beep.SampleRate, vol float64) beep.Streamer {
	boom := NewEnvelope(NewGlide(120, 40, explosionDuration, WaveSaw, rate),
		explosionDuration, 5*time.Millisecond, explosionDuration*3/4, rate)
	crackle := NewEnvelope(NewOscillator(0, crackleDuration, WaveNoise, rate),
		crackleDuration, time.Millisecond, crackleDuration*2/3, rate)
	return newVolume(beep.Mix(newVolume(boom, 0.6), beep.Seq(beep.Silence(rate.N(40*time.Millisecond)), newVolume(crackle, 0.4))), vol)
}

// NewHeartbeatSound is the lub-dub of two short low sine pulses
func NewHeartbeatSound(rate beep.SampleRate, vol float64) beep.Streamer {
	lub := tone(60, beatDuration, 8*time.Millisecond, beatDuration*2/3, rate)
	dub := tone(50, beatDuration, 8*time.Millisecond, beatDuration*2/3, rate)
	return newVolume(beep.Seq(lub, beep.Silence(rate.N(beatGap)), newVolume(dub, 0.7)), vol)
}

// NewFinaleSound is a rising major arpeggio
func NewFinaleSound(rate beep.SampleRate, vol float64) beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99, 1046.50}
	parts := make([]beep.Streamer, 0, len(notes))
	for i, f := range notes {
		delay := beep.Silence(rate.N(time.Duration(i) * chimeStep))
		parts = append(parts, beep.Seq(delay, tone(f, chimeDuration, 10*time.Millisecond, chimeDuration*3/4, rate)))
	}
	return newVolume(beep.Mix(parts...), vol*0.5)
}

const (
	launchDuration    = 700 * time.Millisecond
	explosionDuration = 350 * time.Millisecond
	crackleDuration   = 500 * time.Millisecond
	beatDuration      = 120 * time.Millisecond
	beatGap           = 90 * time.Millisecond
	chimeDuration     = 900 * time.Millisecond
	chimeStep         = 150 * time.Millisecond
)
