package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"classic-snake/ui"
)

// Surface maps the pixel canvas onto terminal cells. One grid cell is two
// columns wide and one row tall; a terminal cell is painted when its pixel
// centre falls inside the shape.
type Surface struct {
	screen   tcell.Screen
	width    int
	height   int
	cellSize int
	cols     int
	rows     int
	bg       []color.RGBA
}

func NewSurface(screen tcell.Screen, width, height, cellSize int) *Surface {
	cols := width * 2 / cellSize
	rows := height / cellSize
	return &Surface{
		screen:   screen,
		width:    width,
		height:   height,
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		bg:       make([]color.RGBA, cols*rows),
	}
}

var _ ui.Surface = (*Surface)(nil)

func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Columns returns the terminal size the canvas needs
func (s *Surface) Columns() (int, int) {
	return s.cols, s.rows
}

func (s *Surface) Clear(c color.RGBA) {
	s.screen.Fill(' ', tcell.StyleDefault)
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			s.bg[row*s.cols+col] = opaque(c)
			s.paint(col, row)
		}
	}
}

func (s *Surface) FillRect(x, y, w, h int, c color.RGBA) {
	s.fill(c, func(px, py float64) bool {
		return px >= float64(x) && px < float64(x+w) && py >= float64(y) && py < float64(y+h)
	})
}

func (s *Surface) FillCircle(cx, cy, r int, c color.RGBA) {
	s.fill(c, func(px, py float64) bool {
		return math.Hypot(px-float64(cx), py-float64(cy)) <= float64(r)
	})
}

func (s *Surface) fill(c color.RGBA, inside func(px, py float64) bool) {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			px, py := s.centre(col, row)
			if !inside(px, py) {
				continue
			}
			i := row*s.cols + col
			s.bg[i] = blend(s.bg[i], c)
			s.paint(col, row)
		}
	}
}

// DrawText writes text on the row holding baseline y. Letters keep the
// background already painted under them.
func (s *Surface) DrawText(text string, x, y int, _ ui.Font, align ui.Align, c color.RGBA) {
	runes := []rune(text)
	col := x * 2 / s.cellSize
	switch align {
	case ui.AlignCenter:
		col -= len(runes) / 2
	case ui.AlignRight:
		col -= len(runes)
	}
	row := (y - 1) / s.cellSize
	if row < 0 || row >= s.rows {
		return
	}
	for i, r := range runes {
		cc := col + i
		if cc < 0 || cc >= s.cols {
			continue
		}
		style := tcell.StyleDefault.Background(toColor(s.bg[row*s.cols+cc])).Foreground(toColor(c))
		s.screen.SetContent(cc, row, r, nil, style)
	}
}

func (s *Surface) centre(col, row int) (float64, float64) {
	colWidth := float64(s.cellSize) / 2
	return (float64(col) + 0.5) * colWidth, (float64(row) + 0.5) * float64(s.cellSize)
}

func (s *Surface) paint(col, row int) {
	style := tcell.StyleDefault.Background(toColor(s.bg[row*s.cols+col]))
	s.screen.SetContent(col, row, ' ', nil, style)
}

// blend composites c over dst using c's alpha
func blend(dst, c color.RGBA) color.RGBA {
	if c.A == 0xff {
		return c
	}
	a := uint32(c.A)
	mix := func(d, s uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*(0xff-a)) / 0xff)
	}
	return color.RGBA{R: mix(dst.R, c.R), G: mix(dst.G, c.G), B: mix(dst.B, c.B), A: 0xff}
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 0xff
	return c
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
