package tetris_test

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestScoreAdd(t *testing.T) {
	tests := []struct {
		name   string
		start  tetris.Score
		rows   int
		points int
	}{
		{"single", tetris.Score{}, 1, 40},
		{"double", tetris.Score{}, 2, 100},
		{"triple", tetris.Score{}, 3, 300},
		{"tetris", tetris.Score{}, 4, 1200},
		{"single at level 1", tetris.Score{Lines: 10}, 1, 80},
		{"tetris at level 1", tetris.Score{Lines: 12}, 4, 2400},
		{"tetris at level 9", tetris.Score{Lines: 95}, 4, 12000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.Add(tt.rows)
			assert.Equal(t, tt.start.Points+tt.points, got.Points)
			assert.Equal(t, tt.start.Lines+tt.rows, got.Lines)
		})
	}

	t.Run("no change outside one to four", func(t *testing.T) {
		s := tetris.Score{Lines: 3, Points: 120}
		assert.Equal(t, s, s.Add(0))
		assert.Equal(t, s, s.Add(5))
		assert.Equal(t, s, s.Add(-1))
	})

	t.Run("points use the level before the clear", func(t *testing.T) {
		s := tetris.Score{Lines: 8}
		got := s.Add(4)
		assert.Equal(t, 1200, got.Points)
		assert.Equal(t, 1, got.Level())
	})
}

func TestScoreLevel(t *testing.T) {
	for lines, level := range map[int]int{0: 0, 9: 0, 10: 1, 19: 1, 20: 2, 155: 15} {
		assert.Equal(t, level, tetris.Score{Lines: lines}.Level(), "%d lines", lines)
	}
}

func TestGravity(t *testing.T) {
	g := tetris.DefaultConfig().Gravity()
	frame := time.Second / 60

	assert.Equal(t, 48*frame, g.FallInterval(0))
	assert.Equal(t, 6*frame, g.FallInterval(9))
	assert.Equal(t, 5*frame, g.FallInterval(10))
	assert.Equal(t, frame, g.FallInterval(29))
	assert.Equal(t, frame, g.FallInterval(500))
	assert.Equal(t, 48*frame, g.FallInterval(-3))
	assert.Equal(t, g.FallInterval(29), g.FallInterval(30), "the last entry holds")

	prev := g.FallInterval(0)
	for level := 1; level <= 35; level++ {
		d := g.FallInterval(level)
		assert.LessOrEqual(t, d, prev, "level %d", level)
		assert.Positive(t, d)
		prev = d
	}
}
