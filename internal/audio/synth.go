package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSquare WaveType = iota
	WaveSaw
)

// Ramp is how a parameter moves from its start value to its end value.
type Ramp int

const (
	RampLinear Ramp = iota
	RampExponential
)

func (r Ramp) at(from, to, t float64) float64 {
	if r == RampExponential && from > 0 && to > 0 {
		return from * math.Pow(to/from, t)
	}
	return from + (to-from)*t
}

// Tone describes one synthesized cue: a wave whose frequency and gain ramp
// over the duration.
type Tone struct {
	Wave     WaveType
	FreqFrom float64
	FreqTo   float64
	FreqRamp Ramp
	GainFrom float64
	GainTo   float64
	GainRamp Ramp
	Duration time.Duration
}

// Cue tones.
var (
	ShootTone = Tone{
		Wave: WaveSquare, FreqFrom: 880, FreqTo: 110, FreqRamp: RampExponential,
		GainFrom: 0.5, GainTo: 0.01, GainRamp: RampExponential,
		Duration: 100 * time.Millisecond,
	}
	ThrustTone = Tone{
		Wave: WaveSaw, FreqFrom: 100, FreqTo: 50, FreqRamp: RampLinear,
		GainFrom: 0.3, GainTo: 0.01, GainRamp: RampLinear,
		Duration: 100 * time.Millisecond,
	}
	SmallExplosionTone = Tone{
		Wave: WaveSaw, FreqFrom: 100, FreqTo: 10, FreqRamp: RampExponential,
		GainFrom: 1, GainTo: 0.01, GainRamp: RampExponential,
		Duration: 200 * time.Millisecond,
	}
	LargeExplosionTone = Tone{
		Wave: WaveSaw, FreqFrom: 100, FreqTo: 10, FreqRamp: RampExponential,
		GainFrom: 1, GainTo: 0.01, GainRamp: RampExponential,
		Duration: 400 * time.Millisecond,
	}
)

// sweep generates a Tone sample by sample.
type sweep struct {
	tone     Tone
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
}

// NewSweep creates a finite streamer for tone.
func NewSweep(tone Tone, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		tone:  tone,
		rate:  rate,
		total: rate.N(tone.Duration),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		t := float64(s.position) / float64(s.total)
		freq := s.tone.FreqRamp.at(s.tone.FreqFrom, s.tone.FreqTo, t)
		gain := s.tone.GainRamp.at(s.tone.GainFrom, s.tone.GainTo, t)

		var val float64
		switch s.tone.Wave {
		case WaveSquare:
			if s.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (s.phase - 0.5)
		}
		val *= gain

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// newVolume scales s by a linear gain.
// math.Log2(0) is -Inf, so zero gain is expressed as silence.
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain), Silent: false}
}
