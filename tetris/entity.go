package tetris

import "fmt"

// Role is the part an Entity plays in a game.
type Role uint8

const (
	RoleBoard Role = iota
	RoleActive
	RoleNext
	RoleGhost
)

func (r Role) String() string {
	switch r {
	case RoleBoard:
		return "board"
	case RoleActive:
		return "active"
	case RoleNext:
		return "next"
	case RoleGhost:
		return "ghost"
	}
	return fmt.Sprintf("role(%d)", uint8(r))
}

// Direction is a movement request. Up rotates the piece counterclockwise.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// Entity is a grid placed in board space. The well and the active, next and
// ghost pieces are all entities; Role tells them apart.
type Entity struct {
	Role  Role
	Shape Shape
	Grid  Grid
	Pos   Position
}

// NewBoard creates an empty well anchored at the origin.
func NewBoard(rows, cols int) Entity {
	return Entity{Role: RoleBoard, Grid: NewGrid(rows, cols)}
}

// NewPiece creates a piece entity holding a fresh copy of the shape's grid.
func NewPiece(role Role, shape Shape, pos Position) Entity {
	return Entity{Role: role, Shape: shape, Grid: shape.Grid(), Pos: pos}
}

// Clone returns a copy of e that shares no grid storage with it.
func (e Entity) Clone() Entity {
	e.Grid = e.Grid.Clone()
	return e
}

// CopyFrom replaces e's shape, grid and position with a value copy of
// other's, keeping e's role.
func (e *Entity) CopyFrom(other Entity) {
	e.Shape = other.Shape
	e.Grid = other.Grid.Clone()
	e.Pos = other.Pos
}

// Reset empties e's grid and forgets its shape.
func (e *Entity) Reset() {
	e.Shape = NoShape
	e.Grid.Clear()
}

// Collides reports whether grid placed at pos would overlap an occupied cell
// of e or leave e's bounds.
func (e Entity) Collides(grid Grid, pos Position) bool {
	offset := pos.Minus(e.Pos)
	for p := range grid.Cells() {
		at := p.Plus(offset)
		if !e.Grid.InBounds(at.Row, at.Col) {
			return true
		}
		if !e.Grid.Get(at.Row, at.Col).IsOpen() {
			return true
		}
	}
	return false
}

// Stamp merges piece's occupied cells into e. Cells that fall outside e or on
// an occupied cell are skipped; callers check Collides first. It returns the
// number of cells written.
func (e *Entity) Stamp(piece Entity) int {
	offset := piece.Pos.Minus(e.Pos)
	n := 0
	for p, c := range piece.Grid.Cells() {
		at := p.Plus(offset)
		if !e.Grid.InBounds(at.Row, at.Col) || !e.Grid.Get(at.Row, at.Col).IsOpen() {
			continue
		}
		e.Grid.Set(at.Row, at.Col, c)
		n++
	}
	return n
}

// ClearCompletedLines removes every full row and returns how many there were.
func (e *Entity) ClearCompletedLines() int {
	return len(e.Grid.RemoveCompletedRows())
}

// Move applies one step in dir and keeps it only if the result fits in board.
func (e *Entity) Move(dir Direction, board Entity) bool {
	grid, pos := e.Grid, e.Pos
	switch dir {
	case Up:
		grid = grid.Rotated(CounterClockwise)
	case Down:
		pos.Row--
	case Left:
		pos.Col--
	case Right:
		pos.Col++
	default:
		panic(fmt.Sprintf("tetris: invalid direction %d", dir))
	}

	if board.Collides(grid, pos) {
		return false
	}
	e.Grid, e.Pos = grid, pos
	return true
}

// Drop moves e down until it rests on the floor or another cell and returns
// the number of rows travelled.
func (e *Entity) Drop(board Entity) int {
	n := 0
	for e.Move(Down, board) {
		n++
	}
	return n
}
