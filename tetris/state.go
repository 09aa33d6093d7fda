package tetris

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
)

// Phase is the state-machine state of a game.
type Phase uint8

const (
	PhaseInitialize Phase = iota
	PhaseGenerateNextPiece
	PhaseFalling
	PhaseLocking
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseInitialize:
		return "initialize"
	case PhaseGenerateNextPiece:
		return "generate-next-piece"
	case PhaseFalling:
		return "falling"
	case PhaseLocking:
		return "locking"
	case PhaseGameOver:
		return "game-over"
	}
	return fmt.Sprintf("phase(%d)", uint8(p))
}

// State is everything that changes while a game runs. The transition
// function is its only writer.
type State struct {
	Phase   Phase
	Session uuid.UUID

	Board  Entity
	Active Entity
	Next   Entity
	Ghost  Entity

	Score Score
	// Elapsed is fall time accumulated since the active piece last moved down
	// under gravity.
	Elapsed time.Duration
	// Pieces counts the pieces spawned this session.
	Pieces int
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	s.Board = s.Board.Clone()
	s.Active = s.Active.Clone()
	s.Next = s.Next.Clone()
	s.Ghost = s.Ghost.Clone()
	return s
}

// env is what the transition function reads but never stores in State.
type env struct {
	rows, cols int
	spawn      Position
	gravity    Gravity
	gen        Generator
	logger     *log.Logger
	newSession func() uuid.UUID
	onSpawn    func(Shape)
	onReset    func()
}

func newEnv(cfg Config, gen Generator) *env {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &env{
		rows:       cfg.Rows,
		cols:       cfg.Columns,
		spawn:      cfg.SpawnPosition(),
		gravity:    cfg.Gravity(),
		gen:        gen,
		logger:     logger,
		newSession: uuid.New,
	}
}

// step applies ev to s and returns the render events describing the change,
// in the order the changes happened.
func step(s *State, ev Event, e *env) []RenderEvent {
	from := s.Phase
	var out []RenderEvent

	switch ev.Kind {
	case EventTick:
		out = tick(s, ev.DeltaTime, e, out)
	case EventIntent:
		out = apply(s, ev.Intent, e, out)
	default:
		panic(fmt.Sprintf("tetris: invalid event kind %d", ev.Kind))
	}

	if s.Phase != from {
		out = append(out, PhaseChanged{From: from, To: s.Phase})
	}
	return out
}

func tick(s *State, dt time.Duration, e *env, out []RenderEvent) []RenderEvent {
	switch s.Phase {
	case PhaseInitialize:
		return initialize(s, e, out)
	case PhaseFalling:
	default:
		return out
	}

	interval := e.gravity.FallInterval(s.Score.Level())
	s.Elapsed += dt
	if s.Elapsed < interval {
		return out
	}
	// One gravity step per tick. The remainder carries over, capped at one
	// interval.
	s.Elapsed = min(s.Elapsed-interval, interval)

	if s.Active.Move(Down, s.Board) {
		return append(out, activeUpdated(s.Active))
	}
	return lock(s, e, out)
}

func apply(s *State, i Intent, e *env, out []RenderEvent) []RenderEvent {
	if i == Restart {
		s.Phase = PhaseInitialize
		return initialize(s, e, out)
	}
	if s.Phase != PhaseFalling {
		return out
	}

	if i == HardDrop {
		if s.Active.Drop(s.Board) > 0 {
			out = append(out, activeUpdated(s.Active))
		}
		return lock(s, e, out)
	}

	dir, ok := i.direction()
	if !ok {
		panic(fmt.Sprintf("tetris: invalid intent %d", i))
	}
	if !s.Active.Move(dir, s.Board) {
		return out
	}
	out = append(out, activeUpdated(s.Active))
	return updateGhost(s, out)
}

func initialize(s *State, e *env, out []RenderEvent) []RenderEvent {
	*s = State{
		Phase:   PhaseInitialize,
		Session: e.newSession(),
		Board:   NewBoard(e.rows, e.cols),
		Active:  Entity{Role: RoleActive, Grid: NewGrid(PieceSize, PieceSize)},
		Next:    Entity{Role: RoleNext, Grid: NewGrid(PieceSize, PieceSize)},
		Ghost:   Entity{Role: RoleGhost, Grid: NewGrid(PieceSize, PieceSize)},
	}
	if e.onReset != nil {
		e.onReset()
	}
	e.logger.Printf("session %s started on a %dx%d well", s.Session, e.rows, e.cols)

	out = append(out, boardUpdated(s.Board), scoreUpdated(s.Score))
	return generate(s, e, out)
}

func generate(s *State, e *env, out []RenderEvent) []RenderEvent {
	s.Phase = PhaseGenerateNextPiece
	if !s.Next.Shape.Valid() {
		s.Next.CopyFrom(NewPiece(RoleNext, e.gen.Next(), Position{}))
	}

	s.Active.CopyFrom(s.Next)
	s.Active.Pos = e.spawn
	if s.Board.Collides(s.Active.Grid, s.Active.Pos) {
		s.Phase = PhaseGameOver
		e.logger.Printf("session %s over: score %d, lines %d, level %d",
			s.Session, s.Score.Points, s.Score.Lines, s.Score.Level())
		return out
	}

	s.Next.CopyFrom(NewPiece(RoleNext, e.gen.Next(), Position{}))
	s.Elapsed = 0
	s.Pieces++
	if e.onSpawn != nil {
		e.onSpawn(s.Active.Shape)
	}
	s.Phase = PhaseFalling

	out = append(out, activeUpdated(s.Active), nextUpdated(s.Next))
	return updateGhost(s, out)
}

func updateGhost(s *State, out []RenderEvent) []RenderEvent {
	s.Ghost.CopyFrom(s.Active)
	s.Ghost.Drop(s.Board)
	return append(out, ghostUpdated(s.Ghost))
}

func lock(s *State, e *env, out []RenderEvent) []RenderEvent {
	s.Phase = PhaseLocking
	s.Board.Stamp(s.Active)
	rows := s.Board.ClearCompletedLines()
	out = append(out, boardUpdated(s.Board))

	before := s.Score
	s.Score = s.Score.Add(rows)
	if s.Score != before {
		out = append(out, scoreUpdated(s.Score))
	}
	if s.Score.Level() != before.Level() {
		e.logger.Printf("session %s reached level %d", s.Session, s.Score.Level())
	}
	return generate(s, e, out)
}
