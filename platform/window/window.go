// Package window hosts the game in a raylib window.
package window

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"

	"classic-snake/game"
	"classic-snake/logging"
	"classic-snake/ui"
)

// ErrSurfaceUnavailable is returned when no window can be created
var ErrSurfaceUnavailable = errors.New("window unavailable")

const title = "Snake Game"

var keyNames = map[int32]string{
	rl.KeyUp:     game.KeyUp,
	rl.KeyDown:   game.KeyDown,
	rl.KeyLeft:   game.KeyLeft,
	rl.KeyRight:  game.KeyRight,
	rl.KeySpace:  game.KeySpace,
	rl.KeyEscape: game.KeyEscape,
}

// Driver owns the raylib window. Each display refresh it polls keys and
// fires the pending frame callback between BeginDrawing and EndDrawing.
type Driver struct {
	width   int
	height  int
	pending func(timestampMs float64)
}

var _ game.Scheduler = (*Driver)(nil)

// Open creates a fixed size window
func Open(width, height, fps int) (*Driver, error) {
	rl.InitWindow(int32(width), int32(height), title)
	if !rl.IsWindowReady() {
		return nil, errors.Wrapf(ErrSurfaceUnavailable, "init %dx%d window", width, height)
	}
	// Escape is a game key
	rl.SetExitKey(0)
	rl.SetTargetFPS(int32(fps))
	logging.Logger().Info("window opened", "width", width, "height", height, "fps", fps)
	return &Driver{width: width, height: height}, nil
}

func (d *Driver) Surface() ui.Surface {
	return surface{width: d.width, height: d.height}
}

func (d *Driver) RequestFrame(callback func(timestampMs float64)) {
	d.pending = callback
}

// Now returns the raylib clock in milliseconds
func (d *Driver) Now() float64 {
	return rl.GetTime() * 1000
}

// Run blocks until the window is closed
func (d *Driver) Run(onKey func(key string) bool) error {
	for !rl.WindowShouldClose() {
		for code, name := range keyNames {
			if rl.IsKeyPressed(code) {
				onKey(name)
			}
		}

		rl.BeginDrawing()
		if cb := d.pending; cb != nil {
			d.pending = nil
			cb(d.Now())
		}
		rl.EndDrawing()
	}
	logging.Logger().Info("window closed")
	return nil
}

func (d *Driver) Close() {
	rl.CloseWindow()
}

// surface draws straight into the current raylib frame
type surface struct {
	width  int
	height int
}

func (s surface) Size() (int, int) {
	return s.width, s.height
}

func (s surface) Clear(c color.RGBA) {
	rl.ClearBackground(c)
}

func (s surface) FillRect(x, y, w, h int, c color.RGBA) {
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), c)
}

func (s surface) FillCircle(cx, cy, r int, c color.RGBA) {
	rl.DrawCircle(int32(cx), int32(cy), float32(r), c)
}

// DrawText places text with y as the baseline. The default raylib font
// has no bold face.
func (s surface) DrawText(text string, x, y int, font ui.Font, align ui.Align, c color.RGBA) {
	size := int32(font.Size)
	px := int32(x)
	switch align {
	case ui.AlignCenter:
		px -= rl.MeasureText(text, size) / 2
	case ui.AlignRight:
		px -= rl.MeasureText(text, size)
	}
	rl.DrawText(text, px, int32(y)-size, size, c)
}
