package term

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type always tetris.Shape

func (a always) Next() tetris.Shape { return tetris.Shape(a) }

func newModel(t *testing.T, ghost bool) *Model {
	t.Helper()
	cfg := tetris.DefaultConfig()
	cfg.Generator = always(tetris.ShapeO)
	m, err := New(Options{Config: cfg, Ghost: ghost, Tick: time.Second})
	require.NoError(t, err)
	require.NotNil(t, m.Init())
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyIntent(t *testing.T) {
	tests := []struct {
		key  string
		want tetris.Intent
	}{
		{"left", tetris.MoveLeft},
		{"h", tetris.MoveLeft},
		{"right", tetris.MoveRight},
		{"down", tetris.SoftDrop},
		{"up", tetris.Rotate},
		{"x", tetris.Rotate},
		{" ", tetris.HardDrop},
		{"r", tetris.Restart},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := keyIntent(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := keyIntent("p")
	assert.False(t, ok)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.Columns = 0
	_, err := New(Options{Config: cfg})
	assert.ErrorIs(t, err, tetris.ErrInvalidConfig)
}

func TestModelKeys(t *testing.T) {
	m := newModel(t, false)
	assert.Equal(t, tetris.PhaseFalling, m.Game().Phase())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Nil(t, cmd)
	assert.Equal(t, 2, m.Game().Snapshot().Active.Pos.Col, "input is applied without waiting for a tick")

	m.Update(runes(" "))
	assert.Equal(t, 4, m.Game().Snapshot().Board.Grid.Occupied())
}

func TestModelTick(t *testing.T) {
	m := newModel(t, false)

	_, cmd := m.Update(tickMsg(time.Now()))
	assert.NotNil(t, cmd)
	assert.Equal(t, 15, m.Game().Snapshot().Active.Pos.Row)
}

func TestModelView(t *testing.T) {
	m := newModel(t, true)

	out := m.View()
	assert.Contains(t, out, "NEXT")
	assert.Contains(t, out, "SCORE")
	assert.Equal(t, 4, strings.Count(out, "░░"))

	m.Update(runes("g"))
	assert.Zero(t, strings.Count(m.View(), "░░"))

	for range 9 {
		m.Update(runes(" "))
	}
	require.Equal(t, tetris.PhaseGameOver, m.Game().Phase())
	assert.Contains(t, m.View(), "GAME OVER")

	m.Update(runes("r"))
	assert.Equal(t, tetris.PhaseFalling, m.Game().Phase())
	assert.NotContains(t, m.View(), "GAME OVER")
}

func TestModelQuit(t *testing.T) {
	m := newModel(t, false)

	_, cmd := m.Update(runes("q"))
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())

	_, cmd = m.Update(tickMsg(time.Now()))
	assert.NotNil(t, cmd, "every message quits once quitting")
}

func TestViewBeforeInit(t *testing.T) {
	m, err := New(Options{Config: tetris.DefaultConfig()})
	require.NoError(t, err)
	assert.Equal(t, DefaultTick, m.tick)
	assert.Equal(t, "starting...\n", m.View())
}
