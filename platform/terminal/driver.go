// Package terminal hosts the game in a text terminal using tcell.
package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"classic-snake/game"
	"classic-snake/logging"
	"classic-snake/ui"
)

// ErrSurfaceUnavailable is returned when the terminal cannot be opened
var ErrSurfaceUnavailable = errors.New("terminal unavailable")

const eventBuffer = 100

// Driver owns the tcell screen. It fires the pending frame callback on a
// fixed ticker and forwards key presses between frames.
type Driver struct {
	screen   tcell.Screen
	surface  *Surface
	interval time.Duration
	start    time.Time
	now      func() time.Time
	pending  func(timestampMs float64)
}

var _ game.Scheduler = (*Driver)(nil)

// Open initialises the real terminal
func Open(width, height, cellSize, fps int) (*Driver, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(ErrSurfaceUnavailable, err.Error())
	}
	return New(screen, width, height, cellSize, fps)
}

// New wraps an existing screen, which is initialised here
func New(screen tcell.Screen, width, height, cellSize, fps int) (*Driver, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(ErrSurfaceUnavailable, err.Error())
	}
	if fps <= 0 {
		fps = 60
	}
	screen.HideCursor()

	d := &Driver{
		screen:   screen,
		surface:  NewSurface(screen, width, height, cellSize),
		interval: time.Second / time.Duration(fps),
		now:      time.Now,
	}
	d.start = d.now()

	cols, rows := d.surface.Columns()
	if w, h := screen.Size(); w < cols || h < rows {
		logging.Logger().Warn("terminal smaller than canvas", "cols", w, "rows", h, "needCols", cols, "needRows", rows)
	}
	return d, nil
}

func (d *Driver) Surface() ui.Surface {
	return d.surface
}

// RequestFrame stores the callback; the next ticker beat fires it once
func (d *Driver) RequestFrame(callback func(timestampMs float64)) {
	d.pending = callback
}

// Now returns milliseconds since the driver opened, on the frame clock
func (d *Driver) Now() float64 {
	return float64(d.now().Sub(d.start)) / float64(time.Millisecond)
}

// Run blocks until Ctrl-C or q. onKey receives game key names.
func (d *Driver) Run(onKey func(key string) bool) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, eventBuffer)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case ev := <-events:
			if !d.handleEvent(ev, onKey) {
				logging.Logger().Info("terminal quit requested")
				return nil
			}
		case <-ticker.C:
			d.fireFrame()
		}
	}
}

func (d *Driver) handleEvent(ev tcell.Event, onKey func(string) bool) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return false
		}
		if key, ok := gameKey(ev); ok {
			onKey(key)
		}
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return true
}

func (d *Driver) fireFrame() {
	cb := d.pending
	if cb == nil {
		return
	}
	d.pending = nil
	cb(d.Now())
	d.screen.Show()
}

// Close restores the terminal
func (d *Driver) Close() {
	d.screen.Fini()
}

func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}

func gameKey(ev *tcell.EventKey) (string, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.KeyUp, true
	case tcell.KeyDown:
		return game.KeyDown, true
	case tcell.KeyLeft:
		return game.KeyLeft, true
	case tcell.KeyRight:
		return game.KeyRight, true
	case tcell.KeyEscape:
		return game.KeyEscape, true
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return game.KeySpace, true
		}
	}
	return "", false
}
