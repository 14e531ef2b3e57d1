// internal/clock/clock.go
package clock

import (
	"sync"
	"time"
)

// Clock — монотонный источник времени. Now возвращает время от эпохи часов;
// симуляция читает его один раз за тик.
type Clock interface {
	Now() time.Duration
}

// Monotonic reads the process monotonic clock.
type Monotonic struct {
	start time.Time
}

// NewMonotonic creates a clock whose epoch is the moment of the call.
func NewMonotonic() *Monotonic {
	return &Monotonic{start: time.Now()}
}

func (m *Monotonic) Now() time.Duration {
	return time.Since(m.start)
}

// Pausable provides game time that stops while paused.
// Cooldowns and the round timer freeze with it.
type Pausable struct {
	mu          sync.Mutex
	source      Clock
	paused      bool
	pausedAt    time.Duration // source reading when the current pause began
	pausedTotal time.Duration // cumulative finished pauses
}

// NewPausable wraps source.
func NewPausable(source Clock) *Pausable {
	return &Pausable{source: source}
}

// Now returns source time minus everything spent paused.
func (p *Pausable) Now() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.paused {
		return p.pausedAt - p.pausedTotal
	}
	return p.source.Now() - p.pausedTotal
}

// Pause stops game time. Pausing twice is a no-op.
func (p *Pausable) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.paused {
		return
	}
	p.paused = true
	p.pausedAt = p.source.Now()
}

// Resume continues game time. Resuming a running clock is a no-op.
func (p *Pausable) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.paused {
		return
	}
	p.pausedTotal += p.source.Now() - p.pausedAt
	p.paused = false
}

// IsPaused returns current pause state
func (p *Pausable) IsPaused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

// Mock provides a controllable time source for testing
type Mock struct {
	mu  sync.Mutex
	now time.Duration
}

// NewMock creates a mock clock reading start.
func NewMock(start time.Duration) *Mock {
	return &Mock{now: start}
}

func (m *Mock) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Set sets the current reading.
func (m *Mock) Set(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = d
}

// Advance moves the clock forward by d.
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now += d
}
