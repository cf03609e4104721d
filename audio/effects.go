package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a fixed-length raw audio wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
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
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack/release gain ramp over a
// fixed-length streamer to avoid clicks at tone edges
type envelope struct {
	wrapped  beep.Streamer
	attack   int
	release  int
	total    int
	position int
}

func withEnvelope(s beep.Streamer, total int, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		wrapped: s,
		attack:  rate.N(attack),
		release: rate.N(release),
		total:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.wrapped.Stream(samples)
	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		pos := e.position + i
		gain := 1.0
		if e.attack > 0 && pos < e.attack {
			gain = float64(pos) / float64(e.attack)
		}
		if e.release > 0 && pos >= releaseStart {
			g := float64(e.total-pos) / float64(e.release)
			if g < 0 {
				g = 0
			}
			if g < gain {
				gain = g
			}
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
	}
	e.position += n
	return n, ok
}

func (e *envelope) Err() error { return e.wrapped.Err() }

// note builds one enveloped tone at the package sample rate
func note(freq float64, duration, attack, release time.Duration, wave WaveType) beep.Streamer {
	osc := NewOscillator(freq, duration, wave, sampleRate)
	return withEnvelope(osc, sampleRate.N(duration), attack, release, sampleRate)
}
