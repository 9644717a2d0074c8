package game

import (
	"testing"
	"time"

	"classic-snake/game/manager"
)

// manualScheduler holds the pending callback until the test fires it
type manualScheduler struct {
	pending  func(float64)
	requests int
}

func (m *manualScheduler) RequestFrame(cb func(float64)) {
	m.pending = cb
	m.requests++
}

func (m *manualScheduler) fire(t *testing.T, ts float64) {
	t.Helper()
	if m.pending == nil {
		t.Fatalf("no frame scheduled at %v", ts)
	}
	cb := m.pending
	m.pending = nil
	cb(ts)
}

type countingRenderer struct {
	renders int
	states  []manager.GameState
}

func (r *countingRenderer) Render(s *Session) {
	r.renders++
	r.states = append(r.states, s.State())
}

func newTestLoop(s *Session) (*Loop, *manualScheduler, *countingRenderer) {
	sched := &manualScheduler{}
	r := &countingRenderer{}
	l := NewLoop(s, sched, r, LoopOptions{TickInterval: 150 * time.Millisecond})
	return l, sched, r
}

func TestLoopRunsFixedTicks(t *testing.T) {
	s := newTestSession()
	s.HandleKey(KeySpace)
	l, sched, r := newTestLoop(s)

	l.Start(1000)
	sched.fire(t, 1100) // 100ms: no tick yet
	if s.Ticks() != 0 {
		t.Fatalf("ticks = %d after 100ms, want 0", s.Ticks())
	}
	sched.fire(t, 1160) // 160ms accumulated: one tick, 10ms left
	if s.Ticks() != 1 {
		t.Fatalf("ticks = %d after 160ms, want 1", s.Ticks())
	}
	if got := l.Accumulator(); got != 10 {
		t.Fatalf("accumulator = %v, want 10", got)
	}
	if r.renders != 2 {
		t.Fatalf("renders = %d, want 2", r.renders)
	}
}

func TestLoopCatchesUpOnLongFrame(t *testing.T) {
	s := newTestSession()
	s.HandleKey(KeySpace)
	l, sched, r := newTestLoop(s)

	l.Start(0)
	sched.fire(t, 450)

	if s.Ticks() != 3 || l.TicksLastFrame() != 3 {
		t.Fatalf("ticks = %d (frame %d), want 3", s.Ticks(), l.TicksLastFrame())
	}
	if r.renders != 1 {
		t.Fatalf("renders = %d, want exactly one per frame", r.renders)
	}
}

func TestLoopClampsFrameDelta(t *testing.T) {
	s := newTestSession()
	s.HandleKey(KeySpace)
	sched := &manualScheduler{}
	l := NewLoop(s, sched, nil, LoopOptions{
		TickInterval:  150 * time.Millisecond,
		MaxFrameDelta: 300 * time.Millisecond,
	})

	l.Start(0)
	sched.fire(t, 5000)
	if s.Ticks() != 2 {
		t.Fatalf("ticks = %d with clamped delta, want 2", s.Ticks())
	}
}

func TestLoopStopsTickingAfterGameOver(t *testing.T) {
	s := newTestSession()
	s.HandleKey(KeySpace)
	l, sched, r := newTestLoop(s)

	l.Start(0)
	// Enough time for 20 ticks; the wall is hit on the 10th.
	sched.fire(t, 20*150)

	if s.State() != manager.GameOver {
		t.Fatalf("state = %v, want %v", s.State(), manager.GameOver)
	}
	if l.TicksLastFrame() != 10 {
		t.Fatalf("ran %d ticks, want 10", l.TicksLastFrame())
	}
	if r.states[len(r.states)-1] != manager.GameOver {
		t.Fatalf("frame rendered %v, want game over screen", r.states[len(r.states)-1])
	}
	if sched.pending == nil {
		t.Fatalf("loop stopped rescheduling after game over")
	}
}

func TestLoopPausedTimeDoesNotCatchUp(t *testing.T) {
	s := newTestSession()
	s.HandleKey(KeySpace)
	l, sched, _ := newTestLoop(s)

	l.Start(0)
	sched.fire(t, 150)
	s.HandleKey(KeySpace) // pause
	sched.fire(t, 150+1500)
	if s.Ticks() != 1 {
		t.Fatalf("ticks while paused = %d, want 1", s.Ticks())
	}

	s.HandleKey(KeySpace) // resume
	sched.fire(t, 150+1500+150)
	if s.Ticks() != 2 {
		t.Fatalf("ticks after resume = %d, want 2", s.Ticks())
	}
}

func TestLoopStop(t *testing.T) {
	s := newTestSession()
	l, sched, r := newTestLoop(s)

	l.Start(0)
	sched.fire(t, 16)
	l.Stop()
	if l.Running() {
		t.Fatalf("loop still running after Stop")
	}

	// A callback scheduled before Stop still fires but does nothing.
	sched.fire(t, 32)
	if r.renders != 1 {
		t.Fatalf("renders = %d after stop, want 1", r.renders)
	}
	if sched.pending != nil {
		t.Fatalf("stopped loop scheduled another frame")
	}
}

func TestLoopStartIsIdempotent(t *testing.T) {
	s := newTestSession()
	l, sched, _ := newTestLoop(s)

	l.Start(0)
	l.Start(10)
	if sched.requests != 1 {
		t.Fatalf("requests = %d, want 1", sched.requests)
	}
}
