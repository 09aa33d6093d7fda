// Package view folds render events into a drawable picture of the well. Every
// frontend keeps one Model and feeds it from its render callback.
package view

import "github.com/plus3/blockfall/tetris"

// Layer orders squares back to front.
type Layer uint8

const (
	LayerBoard Layer = iota
	LayerGhost
	LayerActive
)

// Square is one occupied cell in board space. Row 0 is the floor.
type Square struct {
	Pos   tetris.Position
	Cell  tetris.Cell
	Layer Layer
}

// Model is the host-side copy of everything the engine has announced.
type Model struct {
	Board tetris.Grid

	Active    tetris.Grid
	ActivePos tetris.Position
	Shape     tetris.Shape

	Ghost    tetris.Grid
	GhostPos tetris.Position

	Next      tetris.Grid
	NextShape tetris.Shape

	Score int
	Lines int
	Level int
	Phase tetris.Phase
}

// Apply folds one render event into m.
func (m *Model) Apply(ev tetris.RenderEvent) {
	switch ev := ev.(type) {
	case tetris.BoardUpdated:
		m.Board = ev.Board
	case tetris.ActivePieceUpdated:
		m.Active, m.ActivePos, m.Shape = ev.Grid, ev.Pos, ev.Shape
	case tetris.GhostPieceUpdated:
		m.Ghost, m.GhostPos = ev.Grid, ev.Pos
	case tetris.NextPieceUpdated:
		m.Next, m.NextShape = ev.Grid, ev.Shape
	case tetris.ScoreUpdated:
		m.Score, m.Lines, m.Level = ev.Score, ev.Lines, ev.Level
	case tetris.PhaseChanged:
		m.Phase = ev.To
	}
}

// FromState builds the model a fresh Redraw would produce.
func FromState(s tetris.State) Model {
	return Model{
		Board:     s.Board.Grid,
		Active:    s.Active.Grid,
		ActivePos: s.Active.Pos,
		Shape:     s.Active.Shape,
		Ghost:     s.Ghost.Grid,
		GhostPos:  s.Ghost.Pos,
		Next:      s.Next.Grid,
		NextShape: s.Next.Shape,
		Score:     s.Score.Points,
		Lines:     s.Score.Lines,
		Level:     s.Score.Level(),
		Phase:     s.Phase,
	}
}

// Rows and Columns are zero until the first BoardUpdated.
func (m *Model) Rows() int    { return m.Board.Rows() }
func (m *Model) Columns() int { return m.Board.Columns() }

// Squares lists the occupied squares back to front. The ghost is included
// only when ghost is set, and the active piece is hidden once the game is
// over.
func (m *Model) Squares(ghost bool) []Square {
	var out []Square
	for p, c := range m.Board.Cells() {
		out = append(out, Square{Pos: p, Cell: c, Layer: LayerBoard})
	}
	if m.Phase == tetris.PhaseGameOver {
		return out
	}
	if ghost {
		out = m.appendPiece(out, m.Ghost, m.GhostPos, LayerGhost)
	}
	return m.appendPiece(out, m.Active, m.ActivePos, LayerActive)
}

func (m *Model) appendPiece(out []Square, g tetris.Grid, at tetris.Position, layer Layer) []Square {
	for p, c := range g.Cells() {
		p = p.Plus(at)
		if !m.Board.InBounds(p.Row, p.Col) {
			continue
		}
		out = append(out, Square{Pos: p, Cell: c, Layer: layer})
	}
	return out
}

// Picture renders the well as rows of cells, top row first, with the active
// piece and optionally the ghost merged in. Ghost squares keep their piece's
// color; callers tell them apart through the returned layer matrix.
func (m *Model) Picture(ghost bool) ([][]tetris.Cell, [][]Layer) {
	rows, cols := m.Rows(), m.Columns()
	cells := make([][]tetris.Cell, rows)
	layers := make([][]Layer, rows)
	for i := range cells {
		cells[i] = make([]tetris.Cell, cols)
		layers[i] = make([]Layer, cols)
	}
	for _, sq := range m.Squares(ghost) {
		line := rows - 1 - sq.Pos.Row
		cells[line][sq.Pos.Col] = sq.Cell
		layers[line][sq.Pos.Col] = sq.Layer
	}
	return cells, layers
}
