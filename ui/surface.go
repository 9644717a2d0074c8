// Package ui draws a game session onto an abstract 2D surface.
package ui

import "image/color"

// Align is the horizontal anchor of a text run
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Font describes a text size in pixels
type Font struct {
	Size int
	Bold bool
}

// Surface is the drawing capability a host provides. Coordinates are in
// pixels with the origin top-left; DrawText's y is the text baseline.
type Surface interface {
	Size() (width, height int)
	Clear(c color.RGBA)
	FillRect(x, y, w, h int, c color.RGBA)
	FillCircle(cx, cy, r int, c color.RGBA)
	DrawText(text string, x, y int, font Font, align Align, c color.RGBA)
}
