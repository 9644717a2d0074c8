package game

import (
	"time"

	"classic-snake/game/types"
	"classic-snake/logging"
)

// Scheduler invokes a callback once near the next display refresh,
// passing a monotonically increasing timestamp in milliseconds.
type Scheduler interface {
	RequestFrame(callback func(timestampMs float64))
}

// Renderer draws the session once per frame. It must not mutate it.
type Renderer interface {
	Render(s *Session)
}

// LoopOptions tunes the fixed-timestep loop
type LoopOptions struct {
	TickInterval  time.Duration
	// MaxFrameDelta clamps a single frame's elapsed time; zero disables it
	MaxFrameDelta time.Duration
}

// Loop converts frame callbacks into fixed simulation ticks and renders
// once per frame.
type Loop struct {
	session   *Session
	scheduler Scheduler
	renderer  Renderer

	intervalMs     float64
	maxDeltaMs     float64
	accumulator    float64
	lastFrameTime  float64
	running        bool
	frames         int
	ticksThisFrame int
}

func NewLoop(session *Session, scheduler Scheduler, renderer Renderer, opts LoopOptions) *Loop {
	if opts.TickInterval <= 0 {
		opts.TickInterval = types.TickInterval
	}
	return &Loop{
		session:    session,
		scheduler:  scheduler,
		renderer:   renderer,
		intervalMs: durationMs(opts.TickInterval),
		maxDeltaMs: durationMs(opts.MaxFrameDelta),
	}
}

func durationMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// Start begins scheduling frames from timestamp now
func (l *Loop) Start(nowMs float64) {
	if l.running {
		return
	}
	l.running = true
	l.lastFrameTime = nowMs
	l.accumulator = 0
	l.scheduler.RequestFrame(l.Frame)
	logging.Logger().Info("game loop started", "session", l.session.ID, "tickMs", l.intervalMs)
}

// Stop ends the loop. Frames already scheduled still fire but do nothing.
func (l *Loop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	logging.Logger().Info("game loop stopped", "session", l.session.ID, "frames", l.frames)
}

func (l *Loop) Running() bool {
	return l.running
}

// Frame is the scheduler callback: it runs every tick that is due,
// renders once and asks for the next frame.
func (l *Loop) Frame(timestampMs float64) {
	if !l.running {
		return
	}
	l.frames++

	dt := timestampMs - l.lastFrameTime
	l.lastFrameTime = timestampMs
	if l.maxDeltaMs > 0 && dt > l.maxDeltaMs {
		dt = l.maxDeltaMs
	}
	l.accumulator += dt

	l.ticksThisFrame = 0
	for l.accumulator >= l.intervalMs {
		hit := l.session.Tick()
		l.accumulator -= l.intervalMs
		l.ticksThisFrame++
		if hit.Fatal() {
			break
		}
	}

	if l.renderer != nil {
		l.renderer.Render(l.session)
	}

	if l.running {
		l.scheduler.RequestFrame(l.Frame)
	}
}

// Accumulator returns simulated time not yet converted into ticks, in ms
func (l *Loop) Accumulator() float64 {
	return l.accumulator
}

// TicksLastFrame returns how many ticks the latest frame ran
func (l *Loop) TicksLastFrame() int {
	return l.ticksThisFrame
}
