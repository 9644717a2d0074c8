package ui

import (
	"fmt"

	"classic-snake/game"
	"classic-snake/game/manager"
	"classic-snake/game/types"
)

const (
	hudPadding = 10
	headInset  = 2
	cellGap    = 1 // Pixel gap between segments
)

var (
	titleFont   = Font{Size: 48, Bold: true}
	headingFont = Font{Size: 42, Bold: true}
	pausedFont  = Font{Size: 36, Bold: true}
	scoreFont   = Font{Size: 24, Bold: true}
	hudFont     = Font{Size: 20, Bold: true}
	promptFont  = Font{Size: 20}
	hintFont    = Font{Size: 18}
	smallFont   = Font{Size: 14}
)

// Renderer draws one frame per call, picking the screen from the session state
type Renderer struct {
	surface  Surface
	cellSize int
	palette  Palette
}

func NewRenderer(surface Surface, cellSize int) *Renderer {
	if cellSize <= 0 {
		cellSize = types.CellSize
	}
	return &Renderer{
		surface:  surface,
		cellSize: cellSize,
		palette:  RetroPalette,
	}
}

// SetPalette replaces the colours used for later frames
func (r *Renderer) SetPalette(p Palette) {
	r.palette = p
}

// Render clears the surface and draws the screen for the current state
func (r *Renderer) Render(s *game.Session) {
	r.surface.Clear(r.palette.Background)

	switch s.State() {
	case manager.Start:
		r.drawStartScreen()
	case manager.Playing:
		r.drawGame(s)
	case manager.Paused:
		r.drawGame(s)
		r.drawPauseOverlay()
	case manager.GameOver:
		r.drawGameOverScreen(s)
	}
}

func (r *Renderer) drawStartScreen() {
	w, h := r.surface.Size()
	r.surface.DrawText("SNAKE GAME", w/2, h/3, titleFont, AlignCenter, r.palette.Text)
	r.surface.DrawText("Press SPACE to Start", w/2, h/2, promptFont, AlignCenter, r.palette.Text)
	r.surface.DrawText("Use Arrow Keys to Move", w/2, h*2/3, smallFont, AlignCenter, r.palette.Text)
}

func (r *Renderer) drawGame(s *game.Session) {
	r.drawGrid(s.Grid)
	r.drawSnake(s.Segments())
	if food, ok := s.Food(); ok {
		r.drawFood(food)
	}

	r.surface.DrawText(fmt.Sprintf("Score: %d", s.Score()), hudPadding, 30, hudFont, AlignLeft, r.palette.Text)
	r.surface.DrawText(fmt.Sprintf("Length: %d", len(s.Segments())), hudPadding, 55, smallFont, AlignLeft, r.palette.Text)

	w, _ := r.surface.Size()
	r.surface.DrawText(fmt.Sprintf("Best: %d", s.HighScore()), w-hudPadding, 30, smallFont, AlignRight, r.palette.Text)
}

// drawGrid draws 1px lines between cells
func (r *Renderer) drawGrid(grid types.Grid) {
	width := grid.Width * r.cellSize
	height := grid.Height * r.cellSize
	for x := 1; x < grid.Width; x++ {
		r.surface.FillRect(x*r.cellSize-1, 0, 1, height, r.palette.Grid)
	}
	for y := 1; y < grid.Height; y++ {
		r.surface.FillRect(0, y*r.cellSize-1, width, 1, r.palette.Grid)
	}
}

func (r *Renderer) drawSnake(body []types.Point) {
	size := r.cellSize - cellGap
	// Tail first so the head ends up on top
	for i := len(body) - 1; i >= 0; i-- {
		x, y := body[i].X*r.cellSize, body[i].Y*r.cellSize
		if i == 0 {
			r.surface.FillRect(x, y, size, size, r.palette.HeadBorder)
			r.surface.FillRect(x+headInset, y+headInset, size-2*headInset, size-2*headInset, r.palette.SnakeHead)
			continue
		}
		r.surface.FillRect(x, y, size, size, r.palette.SnakeBody)
	}
}

func (r *Renderer) drawFood(p types.Point) {
	cx := p.X*r.cellSize + r.cellSize/2
	cy := p.Y*r.cellSize + r.cellSize/2
	radius := r.cellSize/2 - 2
	r.surface.FillCircle(cx, cy, radius, r.palette.Food)
	r.surface.FillCircle(cx-radius/3, cy-radius/3, radius/3, r.palette.Highlight)
}

func (r *Renderer) drawPauseOverlay() {
	w, h := r.surface.Size()
	r.surface.FillRect(0, 0, w, h, r.palette.Overlay)
	r.surface.DrawText("PAUSED", w/2, h/2, pausedFont, AlignCenter, r.palette.Text)
	r.surface.DrawText("Press SPACE to Resume", w/2, h/2+40, hintFont, AlignCenter, r.palette.Text)
}

func (r *Renderer) drawGameOverScreen(s *game.Session) {
	w, h := r.surface.Size()
	stats := s.Stats()

	r.surface.DrawText("GAME OVER", w/2, h/3, headingFont, AlignCenter, r.palette.Text)
	r.surface.DrawText(fmt.Sprintf("Final Score: %d", s.Score()), w/2, h/2, scoreFont, AlignCenter, r.palette.Text)
	r.surface.DrawText(fmt.Sprintf("Best: %d  Games: %d  Avg: %.1f",
		stats.GetHighScore(), stats.GetRoundsPlayed(), stats.GetAverageScore()),
		w/2, h/2+30, smallFont, AlignCenter, r.palette.Text)
	r.surface.DrawText("Press SPACE to Restart", w/2, h*5/8, hintFont, AlignCenter, r.palette.Text)
}
