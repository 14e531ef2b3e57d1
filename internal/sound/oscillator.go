// internal/sound/oscillator.go
package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WavePure // steady sine without envelope or sweep
)

// blip: короткий тон с экспоненциальным затуханием.
type blip struct {
	freq     float64
	sweep    float64 // frequency change per second
	phase    float64
	position int
	duration int
	decay    float64
	wave     WaveType
	rate     beep.SampleRate
}

// NewBlip creates a decaying tone. sweep bends the pitch over time, e.g. a
// negative sweep for a falling "hurt" sound.
func NewBlip(freq, sweep float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &blip{
		freq:     freq,
		sweep:    sweep,
		duration: rate.N(duration),
		decay:    4 / duration.Seconds(),
		wave:     wave,
		rate:     rate,
	}
}

func (b *blip) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.position >= b.duration {
			return i, i > 0
		}
		t := float64(b.position) / float64(b.rate)

		var val float64
		switch b.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * b.phase)
		case WaveSquare:
			if b.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		}
		val *= math.Exp(-t * b.decay)

		samples[i][0] = val
		samples[i][1] = val

		freq := math.Max(b.freq+b.sweep*t, 20)
		b.phase += freq / float64(b.rate)
		b.phase -= math.Floor(b.phase)
		b.position++
	}
	return len(samples), true
}

func (b *blip) Err() error { return nil }

// NewPureTone returns a steady sine of the given length.
func NewPureTone(freq float64, duration time.Duration, rate beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(rate.N(duration), sine), nil
}
