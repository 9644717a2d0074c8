package ui

import "image/color"

// Palette holds the colours used by the renderer
type Palette struct {
	Background color.RGBA
	Grid       color.RGBA
	SnakeHead  color.RGBA
	HeadBorder color.RGBA
	SnakeBody  color.RGBA
	Food       color.RGBA
	Highlight  color.RGBA
	Text       color.RGBA
	Overlay    color.RGBA
}

// RetroPalette is the default dark green-on-navy look
var RetroPalette = Palette{
	Background: color.RGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff},
	Grid:       color.RGBA{R: 0x2a, G: 0x2a, B: 0x2a, A: 0xff},
	SnakeHead:  color.RGBA{R: 0x00, G: 0xff, B: 0x41, A: 0xff},
	HeadBorder: color.RGBA{R: 0x00, G: 0x99, B: 0x22, A: 0xff},
	SnakeBody:  color.RGBA{R: 0x00, G: 0xdd, B: 0x33, A: 0xff},
	Food:       color.RGBA{R: 0xff, G: 0x00, B: 0x6e, A: 0xff},
	Highlight:  color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x4c},
	Text:       color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	Overlay:    color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xb3},
}
