// Package palette maps cell values to the colors every frontend draws them in.
package palette

import (
	"fmt"
	"image/color"

	"github.com/plus3/blockfall/tetris"
)

var (
	Background = color.RGBA{0x10, 0x10, 0x16, 0xff}
	Well       = color.RGBA{0x1c, 0x1c, 0x26, 0xff}
	GridLine   = color.RGBA{0x2a, 0x2a, 0x38, 0xff}
	Text       = color.RGBA{0xe8, 0xe8, 0xf0, 0xff}
)

var cells = [...]color.RGBA{
	tetris.Empty:   {0x1c, 0x1c, 0x26, 0xff},
	tetris.Blue:    {0x3b, 0x82, 0xf6, 0xff},
	tetris.Yellow:  {0xea, 0xb3, 0x08, 0xff},
	tetris.Green:   {0x22, 0xc5, 0x5e, 0xff},
	tetris.Red:     {0xef, 0x44, 0x44, 0xff},
	tetris.Magenta: {0xc0, 0x26, 0xd3, 0xff},
	tetris.Cyan:    {0x06, 0xb6, 0xd4, 0xff},
	tetris.Brown:   {0x92, 0x40, 0x0e, 0xff},
}

var unknown = color.RGBA{0xff, 0x00, 0xff, 0xff}

// Color returns the fill color of c.
func Color(c tetris.Cell) color.RGBA {
	if !c.Valid() {
		return unknown
	}
	return cells[c]
}

// Ghost returns the translucent variant used for the drop preview.
func Ghost(c tetris.Cell) color.RGBA {
	col := Color(c)
	col.R, col.G, col.B, col.A = col.R/3, col.G/3, col.B/3, 0x55
	return col
}

// Hex formats c's color as #rrggbb.
func Hex(c tetris.Cell) string {
	col := Color(c)
	return fmt.Sprintf("#%02x%02x%02x", col.R, col.G, col.B)
}
