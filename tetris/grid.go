package tetris

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Rotation selects the direction of Grid.Rotated. Directions are as seen with
// row 0 at the bottom.
type Rotation int

const (
	Clockwise Rotation = iota
	CounterClockwise
)

// Grid is a fixed-size, row-major matrix of cells. Row 0 is the bottom row.
//
// A Grid value refers to its backing storage, so assigning one Grid to another
// shares cells. Owners that must not alias take a Clone.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// NewGrid creates an all-Empty grid. It panics on negative dimensions.
func NewGrid(rows, cols int) Grid {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("tetris: invalid grid dimensions %dx%d", rows, cols))
	}
	return Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
}

// ParseGrid builds a grid from a picture: one line per row, top row first,
// '.' for Empty and '1'..'7' for the piece colors. Blank lines and surrounding
// whitespace are ignored.
func ParseGrid(text string) (Grid, error) {
	var lines []string
	for line := range strings.Lines(text) {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return NewGrid(0, 0), nil
	}

	g := NewGrid(len(lines), len(lines[0]))
	for i, line := range lines {
		if len(line) != g.cols {
			return Grid{}, fmt.Errorf("line %d has %d cells, want %d", i+1, len(line), g.cols)
		}
		row := g.rows - 1 - i
		for col := 0; col < len(line); col++ {
			switch ch := line[col]; {
			case ch == '.':
			case ch >= '1' && ch <= '0'+colorCount:
				g.cells[row*g.cols+col] = Cell(ch - '0')
			default:
				return Grid{}, fmt.Errorf("line %d: invalid cell %q", i+1, ch)
			}
		}
	}
	return g, nil
}

// MustParseGrid is like ParseGrid but panics on malformed input.
func MustParseGrid(text string) Grid {
	g, err := ParseGrid(text)
	if err != nil {
		panic("tetris: " + err.Error())
	}
	return g
}

func (g Grid) Rows() int    { return g.rows }
func (g Grid) Columns() int { return g.cols }
func (g Grid) Len() int     { return len(g.cells) }

// InBounds reports whether (row, col) addresses a cell of g.
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g Grid) index(row, col int) int {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("tetris: cell (row %d, col %d) out of range for %dx%d grid", row, col, g.rows, g.cols))
	}
	return row*g.cols + col
}

// Get returns the cell at (row, col). It panics when out of range.
func (g Grid) Get(row, col int) Cell {
	return g.cells[g.index(row, col)]
}

// Set writes the cell at (row, col). It panics when out of range.
func (g *Grid) Set(row, col int, c Cell) {
	g.cells[g.index(row, col)] = c
}

// Clear resets every cell to Empty.
func (g *Grid) Clear() {
	clear(g.cells)
}

// Clone returns a copy of g that shares no storage with it.
func (g Grid) Clone() Grid {
	return Grid{rows: g.rows, cols: g.cols, cells: slices.Clone(g.cells)}
}

// Equal reports whether g and o have the same dimensions and cells.
func (g Grid) Equal(o Grid) bool {
	return g.rows == o.rows && g.cols == o.cols && slices.Equal(g.cells, o.cells)
}

// Cells iterates over the occupied cells of g, bottom row first.
func (g Grid) Cells() iter.Seq2[Position, Cell] {
	return func(yield func(Position, Cell) bool) {
		for i, c := range g.cells {
			if c.IsOpen() {
				continue
			}
			if !yield(Position{Col: i % g.cols, Row: i / g.cols}, c) {
				return
			}
		}
	}
}

// Occupied returns the number of occupied cells.
func (g Grid) Occupied() int {
	n := 0
	for _, c := range g.cells {
		if !c.IsOpen() {
			n++
		}
	}
	return n
}

func (g Grid) rowIsEmpty(row int) bool {
	for _, c := range g.cells[row*g.cols : (row+1)*g.cols] {
		if !c.IsOpen() {
			return false
		}
	}
	return true
}

// FirstNonEmptyRow returns the lowest row holding an occupied cell, or Rows()
// when the grid is empty.
func (g Grid) FirstNonEmptyRow() int {
	for row := 0; row < g.rows; row++ {
		if !g.rowIsEmpty(row) {
			return row
		}
	}
	return g.rows
}

// FirstEmptyRow returns the lowest row from which every row upward is empty.
// It is the height of the occupied region.
func (g Grid) FirstEmptyRow() int {
	for row := g.rows - 1; row >= 0; row-- {
		if !g.rowIsEmpty(row) {
			return row + 1
		}
	}
	return 0
}

// FirstNonEmptyColumn is FirstNonEmptyRow over columns.
func (g Grid) FirstNonEmptyColumn() int {
	return g.Transposed().FirstNonEmptyRow()
}

// FirstEmptyColumn is FirstEmptyRow over columns: the width of the occupied
// region.
func (g Grid) FirstEmptyColumn() int {
	return g.Transposed().FirstEmptyRow()
}

// Transposed returns the cols x rows transpose of g. The row-major storage is
// permuted in place on a copy by following the cycles of
// P(a) = rows*a mod (len-1).
func (g Grid) Transposed() Grid {
	t := Grid{rows: g.cols, cols: g.rows, cells: slices.Clone(g.cells)}
	last := len(t.cells) - 1
	if last < 2 {
		return t
	}

	visited := make([]bool, len(t.cells))
	for start := 1; start < last; start++ {
		if visited[start] {
			continue
		}
		a, v := start, t.cells[start]
		for {
			next := (g.rows * a) % last
			v, t.cells[next] = t.cells[next], v
			visited[next] = true
			a = next
			if a == start {
				break
			}
		}
	}
	return t
}

// Compacted returns a grid of the same size with the occupied region moved so
// that it touches row 0 and column 0.
func (g Grid) Compacted() Grid {
	out := NewGrid(g.rows, g.cols)
	dr := g.FirstNonEmptyRow()
	if dr == g.rows {
		return out
	}
	dc := g.FirstNonEmptyColumn()
	for row := dr; row < g.rows; row++ {
		copy(out.cells[(row-dr)*g.cols:(row-dr+1)*g.cols-dc], g.cells[row*g.cols+dc:(row+1)*g.cols])
	}
	return out
}

// Rotated returns g turned a quarter turn and compacted. A square grid keeps
// its dimensions; otherwise rows and columns swap.
func (g Grid) Rotated(dir Rotation) Grid {
	t := g.Transposed()
	switch dir {
	case Clockwise:
		t.reverseRowOrder()
	case CounterClockwise:
		t.reverseEachRow()
	default:
		panic(fmt.Sprintf("tetris: invalid rotation %d", dir))
	}
	return t.Compacted()
}

func (g *Grid) reverseRowOrder() {
	for lo, hi := 0, g.rows-1; lo < hi; lo, hi = lo+1, hi-1 {
		a := g.cells[lo*g.cols : (lo+1)*g.cols]
		b := g.cells[hi*g.cols : (hi+1)*g.cols]
		for i := range a {
			a[i], b[i] = b[i], a[i]
		}
	}
}

func (g *Grid) reverseEachRow() {
	for row := 0; row < g.rows; row++ {
		slices.Reverse(g.cells[row*g.cols : (row+1)*g.cols])
	}
}

// RemoveCompletedRows deletes every row without an Empty cell, appending a
// fresh Empty row at the top for each one so the dimensions never change.
// It returns the removed row indices, ascending, as numbered before the call.
func (g *Grid) RemoveCompletedRows() []int {
	var removed []int
	height := g.FirstEmptyRow()
	for row := 0; row < height; row++ {
		// Rows already removed in this pass shifted everything above them down.
		start := (row - len(removed)) * g.cols
		if slices.Contains(g.cells[start:start+g.cols], Empty) {
			continue
		}
		removed = append(removed, row)
		g.cells = slices.Delete(g.cells, start, start+g.cols)
		g.cells = append(g.cells, make([]Cell, g.cols)...)
	}
	return removed
}

// String draws the grid top row first, one glyph per cell.
func (g Grid) String() string {
	var sb strings.Builder
	for row := g.rows - 1; row >= 0; row-- {
		for col := 0; col < g.cols; col++ {
			sb.WriteByte(g.cells[row*g.cols+col].glyph())
		}
		if row > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
