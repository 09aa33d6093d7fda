package tetris

import "strconv"

// Cell is the content of one square of a Grid. The zero value is Empty.
type Cell uint8

const (
	Empty Cell = iota
	Blue
	Yellow
	Green
	Red
	Magenta
	Cyan
	Brown

	// Unknown marks an invalid or uninitialized read. It is never stored by
	// the engine.
	Unknown Cell = 255
)

// colorCount is the number of piece colors, Blue through Brown.
const colorCount = 7

var cellNames = [...]string{
	Empty:   "empty",
	Blue:    "blue",
	Yellow:  "yellow",
	Green:   "green",
	Red:     "red",
	Magenta: "magenta",
	Cyan:    "cyan",
	Brown:   "brown",
}

// IsOpen reports whether the cell can be entered by a piece.
func (c Cell) IsOpen() bool {
	return c == Empty
}

// Valid reports whether c is Empty or one of the piece colors.
func (c Cell) Valid() bool {
	return c <= Brown
}

func (c Cell) String() string {
	if c.Valid() {
		return cellNames[c]
	}
	if c == Unknown {
		return "unknown"
	}
	return "cell(" + strconv.Itoa(int(c)) + ")"
}

// glyph is the single character used by Grid.String.
func (c Cell) glyph() byte {
	switch {
	case c == Empty:
		return '.'
	case c.Valid():
		return '0' + byte(c)
	default:
		return '?'
	}
}
