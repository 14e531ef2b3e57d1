// internal/sound/player.go
package sound

import (
	"sync"
	"time"

	"go-arena-survival/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

var _ event.Listener = (*Player)(nil)

// Player проигрывает звуковые эффекты на игровые события.
// До Initialize и после Cleanup все события игнорируются.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewPlayer creates a sound player
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Subscribe registers the player for every event it has an effect for.
func (p *Player) Subscribe(d *event.Dispatcher) {
	for _, t := range event.All {
		if _, ok := EffectFor(t); ok {
			d.Subscribe(p, t)
		}
	}
}

// SetMuted toggles playback without closing the device.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Muted reports whether playback is muted.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

func (p *Player) OnEvent(e event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	fx, ok := EffectFor(e.Type)
	if !ok {
		return
	}

	streamer, err := newEffectStreamer(fx)
	if err != nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// Cleanup stops every sound in flight.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

func newEffectStreamer(fx Effect) (beep.Streamer, error) {
	var s beep.Streamer
	if fx.Wave == WavePure {
		tone, err := NewPureTone(fx.Freq, fx.Duration, sampleRate)
		if err != nil {
			return nil, err
		}
		s = tone
	} else {
		s = NewBlip(fx.Freq, fx.Sweep, fx.Duration, fx.Wave, sampleRate)
	}
	return &effects.Gain{Streamer: s, Gain: fx.Volume - 1}, nil
}
