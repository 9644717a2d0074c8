package terminal

import (
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"classic-snake/game"
	"classic-snake/ui"
)

func newTestDriver(t *testing.T) (*Driver, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	d, err := New(screen, 500, 500, 25, 60)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(d.Close)
	return d, screen
}

func bgAt(t *testing.T, screen tcell.Screen, x, y int) (int32, int32, int32) {
	t.Helper()
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg.RGB()
}

func TestSurfaceGeometry(t *testing.T) {
	d, _ := newTestDriver(t)
	if w, h := d.surface.Size(); w != 500 || h != 500 {
		t.Fatalf("size = %dx%d, want 500x500", w, h)
	}
	if cols, rows := d.surface.Columns(); cols != 40 || rows != 20 {
		t.Fatalf("columns = %dx%d, want 40x20", cols, rows)
	}
}

func TestFillRectCoversTwoColumnsPerGridCell(t *testing.T) {
	d, screen := newTestDriver(t)
	d.surface.Clear(color.RGBA{A: 0xff})
	d.surface.FillRect(250, 250, 24, 24, color.RGBA{R: 0xff, A: 0xff})

	for _, col := range []int{20, 21} {
		if r, _, _ := bgAt(t, screen, col, 10); r != 0xff {
			t.Errorf("cell (%d,10) red = %d, want 255", col, r)
		}
	}
	for _, col := range []int{19, 22} {
		if r, _, _ := bgAt(t, screen, col, 10); r != 0 {
			t.Errorf("cell (%d,10) red = %d, want 0", col, r)
		}
	}
}

func TestGridLinesFallBetweenCells(t *testing.T) {
	d, screen := newTestDriver(t)
	d.surface.Clear(color.RGBA{A: 0xff})
	d.surface.FillRect(24, 0, 1, 500, color.RGBA{G: 0xff, A: 0xff})

	for col := 0; col < 4; col++ {
		if _, g, _ := bgAt(t, screen, col, 0); g != 0 {
			t.Errorf("cell (%d,0) painted by a 1px line", col)
		}
	}
}

func TestOverlayBlendsWithBackground(t *testing.T) {
	d, screen := newTestDriver(t)
	d.surface.Clear(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	d.surface.FillRect(0, 0, 500, 500, color.RGBA{A: 0xb3})

	r, g, b := bgAt(t, screen, 5, 5)
	if r != 76 || g != 76 || b != 76 {
		t.Fatalf("blended = (%d,%d,%d), want (76,76,76)", r, g, b)
	}
}

func TestFillCircleMarksFoodCell(t *testing.T) {
	d, screen := newTestDriver(t)
	d.surface.Clear(color.RGBA{A: 0xff})
	d.surface.FillCircle(87, 87, 10, color.RGBA{B: 0xff, A: 0xff})

	for _, col := range []int{6, 7} {
		if _, _, b := bgAt(t, screen, col, 3); b != 0xff {
			t.Errorf("cell (%d,3) blue = %d, want 255", col, b)
		}
	}
	if _, _, b := bgAt(t, screen, 8, 3); b != 0 {
		t.Errorf("cell (8,3) painted outside the circle")
	}
}

func TestDrawTextAlignment(t *testing.T) {
	tests := []struct {
		align ui.Align
		col   int
	}{
		{ui.AlignLeft, 20},
		{ui.AlignCenter, 19},
		{ui.AlignRight, 18},
	}
	for _, tt := range tests {
		d, screen := newTestDriver(t)
		d.surface.Clear(color.RGBA{A: 0xff})
		d.surface.DrawText("AB", 250, 250, ui.Font{Size: 20}, tt.align, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})

		if r, _, _, _ := screen.GetContent(tt.col, 9); r != 'A' {
			t.Errorf("align %v: cell (%d,9) = %q, want 'A'", tt.align, tt.col, r)
		}
		if r, _, _, _ := screen.GetContent(tt.col+1, 9); r != 'B' {
			t.Errorf("align %v: cell (%d,9) = %q, want 'B'", tt.align, tt.col+1, r)
		}
	}
}

func TestGameKeyMapping(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want string
		ok   bool
	}{
		{tcell.KeyUp, 0, game.KeyUp, true},
		{tcell.KeyDown, 0, game.KeyDown, true},
		{tcell.KeyLeft, 0, game.KeyLeft, true},
		{tcell.KeyRight, 0, game.KeyRight, true},
		{tcell.KeyEscape, 0, game.KeyEscape, true},
		{tcell.KeyRune, ' ', game.KeySpace, true},
		{tcell.KeyRune, 'x', "", false},
		{tcell.KeyEnter, 0, "", false},
	}
	for _, tt := range tests {
		got, ok := gameKey(tcell.NewEventKey(tt.key, tt.r, tcell.ModNone))
		if got != tt.want || ok != tt.ok {
			t.Errorf("gameKey(%v, %q) = %q, %v; want %q, %v", tt.key, tt.r, got, ok, tt.want, tt.ok)
		}
	}
}

func TestQuitKeys(t *testing.T) {
	if !isQuit(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Error("Ctrl-C should quit")
	}
	if !isQuit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should quit")
	}
	if isQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Escape is a game key, not quit")
	}
}

func TestFrameFiresOnce(t *testing.T) {
	d, _ := newTestDriver(t)
	base := time.Unix(1000, 0)
	d.start = base
	d.now = func() time.Time { return base.Add(40 * time.Millisecond) }

	var got []float64
	d.RequestFrame(func(ts float64) { got = append(got, ts) })
	d.fireFrame()
	d.fireFrame()

	if len(got) != 1 || got[0] != 40 {
		t.Fatalf("frames = %v, want [40]", got)
	}
}

func TestRunForwardsKeysUntilQuit(t *testing.T) {
	d, screen := newTestDriver(t)

	var keys []string
	done := make(chan error, 1)
	go func() {
		done <- d.Run(func(key string) bool {
			keys = append(keys, key)
			return true
		})
	}()

	screen.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after q")
	}
	if len(keys) != 2 || keys[0] != game.KeyUp || keys[1] != game.KeySpace {
		t.Fatalf("keys = %v, want [ArrowUp \" \"]", keys)
	}
}
