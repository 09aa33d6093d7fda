package tetris

// RenderEvent is one observable change of a game. It is one of BoardUpdated,
// ActivePieceUpdated, NextPieceUpdated, GhostPieceUpdated, ScoreUpdated or
// PhaseChanged. Grids in render events are copies owned by the receiver.
type RenderEvent interface {
	renderEvent()
}

// RenderFunc receives render events synchronously, in the order the changes
// happened. It must not block and must not call back into the game's mutating
// methods other than Input.
type RenderFunc func(RenderEvent)

type BoardUpdated struct {
	Board Grid
}

type ActivePieceUpdated struct {
	Shape Shape
	Pos   Position
	Grid  Grid
}

type NextPieceUpdated struct {
	Shape Shape
	Grid  Grid
}

type GhostPieceUpdated struct {
	Pos  Position
	Grid Grid
}

type ScoreUpdated struct {
	Score int
	Lines int
	Level int
}

type PhaseChanged struct {
	From Phase
	To   Phase
}

func (BoardUpdated) renderEvent()       {}
func (ActivePieceUpdated) renderEvent() {}
func (NextPieceUpdated) renderEvent()   {}
func (GhostPieceUpdated) renderEvent()  {}
func (ScoreUpdated) renderEvent()       {}
func (PhaseChanged) renderEvent()       {}

func boardUpdated(board Entity) RenderEvent {
	return BoardUpdated{Board: board.Grid.Clone()}
}

func activeUpdated(active Entity) RenderEvent {
	return ActivePieceUpdated{Shape: active.Shape, Pos: active.Pos, Grid: active.Grid.Clone()}
}

func nextUpdated(next Entity) RenderEvent {
	return NextPieceUpdated{Shape: next.Shape, Grid: next.Grid.Clone()}
}

func ghostUpdated(ghost Entity) RenderEvent {
	return GhostPieceUpdated{Pos: ghost.Pos, Grid: ghost.Grid.Clone()}
}

func scoreUpdated(s Score) RenderEvent {
	return ScoreUpdated{Score: s.Points, Lines: s.Lines, Level: s.Level()}
}
