package tetris

import (
	"bytes"
	"log"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedGenerator []Shape

func (f *fixedGenerator) Next() Shape {
	s := (*f)[0]
	*f = append((*f)[1:], s)
	return s
}

func testEnv(t *testing.T, shapes ...Shape) (*env, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	cfg := DefaultConfig()
	cfg.Logger = log.New(&logs, "", 0)
	gen := fixedGenerator(shapes)
	e := newEnv(cfg, &gen)

	n := 0
	e.newSession = func() uuid.UUID {
		n++
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte{byte(n)})
	}
	return e, &logs
}

func TestStepSpawnCollision(t *testing.T) {
	e, logs := testEnv(t, ShapeT)
	var s State
	step(&s, Tick(0), e)
	require.Equal(t, PhaseFalling, s.Phase)

	// Fill the spawn box without completing any row.
	for row := 16; row < 20; row++ {
		for col := 3; col < 7; col++ {
			s.Board.Grid.Set(row, col, Brown)
		}
	}

	events := step(&s, IntentEvent(HardDrop), e)

	assert.Equal(t, PhaseGameOver, s.Phase)
	assert.Equal(t, 1, s.Pieces)
	assert.Equal(t, PhaseChanged{From: PhaseFalling, To: PhaseGameOver}, events[len(events)-1])
	for _, ev := range events {
		assert.NotEqual(t, "ActivePieceUpdated", typeName(ev), "no render after a spawn collision")
	}
	assert.Contains(t, logs.String(), "over: score 0, lines 0, level 0")
}

func TestStepGameOverAtFirstSpawn(t *testing.T) {
	e, _ := testEnv(t, ShapeI)
	e.spawn = Position{Col: 0, Row: 0}

	var s State
	s.Phase = PhaseInitialize
	step(&s, Tick(0), e)
	require.Equal(t, PhaseFalling, s.Phase)

	s.Board.Grid.Set(0, 2, Red)
	s.Phase = PhaseGenerateNextPiece
	generate(&s, e, nil)
	assert.Equal(t, PhaseGameOver, s.Phase)
}

func TestStepLevelUp(t *testing.T) {
	e, logs := testEnv(t, ShapeI)
	var s State
	step(&s, Tick(0), e)

	for col := 0; col < 6; col++ {
		s.Board.Grid.Set(0, col, Yellow)
	}
	s.Score = Score{Lines: 9, Points: 360}

	step(&s, IntentEvent(MoveRight), e)
	step(&s, IntentEvent(MoveRight), e)
	step(&s, IntentEvent(MoveRight), e)
	events := step(&s, IntentEvent(HardDrop), e)

	assert.Equal(t, Score{Lines: 10, Points: 400}, s.Score)
	assert.Equal(t, 1, s.Score.Level())
	assert.Contains(t, events, RenderEvent(ScoreUpdated{Score: 400, Lines: 10, Level: 1}))
	assert.Contains(t, logs.String(), "reached level 1")
	assert.Equal(t, 0, s.Board.Grid.Occupied())
}

func TestStepSessions(t *testing.T) {
	e, logs := testEnv(t, ShapeZ)
	var s State
	step(&s, Tick(0), e)
	first := s.Session

	step(&s, IntentEvent(Restart), e)
	assert.NotEqual(t, first, s.Session)
	assert.Equal(t, 2, bytes.Count(logs.Bytes(), []byte("started")))
}

func TestStepInvalidEvent(t *testing.T) {
	e, _ := testEnv(t, ShapeO)
	var s State
	assert.Panics(t, func() { step(&s, Event{Kind: 9}, e) })

	step(&s, Tick(0), e)
	assert.Panics(t, func() { step(&s, IntentEvent(Intent(42)), e) })
}

func typeName(ev RenderEvent) string {
	switch ev.(type) {
	case BoardUpdated:
		return "BoardUpdated"
	case ActivePieceUpdated:
		return "ActivePieceUpdated"
	case NextPieceUpdated:
		return "NextPieceUpdated"
	case GhostPieceUpdated:
		return "GhostPieceUpdated"
	case ScoreUpdated:
		return "ScoreUpdated"
	case PhaseChanged:
		return "PhaseChanged"
	}
	return "unknown"
}
