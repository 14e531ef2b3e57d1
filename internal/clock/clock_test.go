package clock

import (
	"testing"
	"time"
)

func TestMonotonicAdvances(t *testing.T) {
	c := NewMonotonic()
	t1 := c.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := c.Now()
	if t2-t1 < 5*time.Millisecond {
		t.Errorf("expected at least 5ms between readings, got %v", t2-t1)
	}
}

func TestMock(t *testing.T) {
	m := NewMock(time.Second)
	if m.Now() != time.Second {
		t.Fatalf("initial = %v", m.Now())
	}
	m.Advance(250 * time.Millisecond)
	m.Advance(250 * time.Millisecond)
	if m.Now() != 1500*time.Millisecond {
		t.Errorf("after advances = %v, want 1.5s", m.Now())
	}
	m.Set(10 * time.Millisecond)
	if m.Now() != 10*time.Millisecond {
		t.Errorf("after Set = %v", m.Now())
	}
}

func TestPausableFreezesTime(t *testing.T) {
	src := NewMock(0)
	p := NewPausable(src)

	src.Advance(time.Second)
	if p.Now() != time.Second {
		t.Fatalf("running clock = %v, want 1s", p.Now())
	}

	p.Pause()
	p.Pause() // second pause must not move the pause point
	src.Advance(3 * time.Second)
	if !p.IsPaused() {
		t.Fatal("expected paused")
	}
	if p.Now() != time.Second {
		t.Errorf("paused clock = %v, want 1s", p.Now())
	}

	p.Resume()
	p.Resume()
	if p.Now() != time.Second {
		t.Errorf("right after resume = %v, want 1s", p.Now())
	}
	src.Advance(500 * time.Millisecond)
	if p.Now() != 1500*time.Millisecond {
		t.Errorf("after resume = %v, want 1.5s", p.Now())
	}

	p.Pause()
	src.Advance(time.Second)
	p.Resume()
	src.Advance(time.Second)
	if p.Now() != 2500*time.Millisecond {
		t.Errorf("after second pause = %v, want 2.5s", p.Now())
	}
}
