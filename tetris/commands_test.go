package tetris_test

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestCommands(t *testing.T) {
	var c tetris.Commands
	c.Push(tetris.MoveLeft)
	c.Push(tetris.Rotate)
	assert.Equal(t, 2, c.Len())

	var got []tetris.Intent
	c.Flush(func(i tetris.Intent) {
		got = append(got, i)
		if i == tetris.MoveLeft {
			c.Push(tetris.HardDrop)
		}
	})

	assert.Equal(t, []tetris.Intent{tetris.MoveLeft, tetris.Rotate, tetris.HardDrop}, got)
	assert.Zero(t, c.Len())

	c.Flush(func(tetris.Intent) { t.Fatal("flushed an empty buffer") })
}

func TestIntentNames(t *testing.T) {
	names := make([]string, 0, len(tetris.Intents()))
	for _, i := range tetris.Intents() {
		assert.True(t, i.Valid())
		names = append(names, i.String())
	}
	assert.Equal(t, []string{"move-left", "move-right", "soft-drop", "hard-drop", "rotate", "restart"}, names)

	assert.False(t, tetris.Intent(6).Valid())
	assert.Equal(t, "intent(6)", tetris.Intent(6).String())
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "tick(16ms)", tetris.Tick(16*time.Millisecond).String())
	assert.Equal(t, "rotate", tetris.IntentEvent(tetris.Rotate).String())
	assert.Equal(t, "event(7)", tetris.Event{Kind: 7}.String())
}
