package tetris_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriver(t *testing.T) {
	t.Run("send is bounded", func(t *testing.T) {
		g, _ := newTestGame(tetris.ShapeO)
		d := tetris.NewDriver(g, 2)

		assert.True(t, d.Send(tetris.MoveLeft))
		assert.True(t, d.Send(tetris.MoveLeft))
		assert.False(t, d.Send(tetris.MoveLeft))

		stats := d.Stats()
		assert.Equal(t, int64(1), stats.DroppedCount)
		assert.Equal(t, int64(0), stats.UpdateCount)
		assert.Zero(t, stats.MinDuration)

		d.Once(0)
		stats = d.Stats()
		assert.Equal(t, int64(1), stats.UpdateCount)
		assert.Equal(t, int64(2), stats.IntentCount)
		assert.True(t, d.Send(tetris.MoveLeft), "buffer drained by Once")
	})

	t.Run("invalid intent panics at the sender", func(t *testing.T) {
		g, _ := newTestGame(tetris.ShapeO)
		d := tetris.NewDriver(g, 2)

		assert.Panics(t, func() { d.Send(tetris.Intent(42)) })
		assert.NotPanics(t, func() { d.Once(0) })
		assert.Zero(t, d.Stats().IntentCount)
		assert.Zero(t, d.Stats().DroppedCount)
	})

	t.Run("intents from many goroutines", func(t *testing.T) {
		g, _ := newTestGame(tetris.ShapeO)
		d := tetris.NewDriver(g, 64)
		d.Once(0)

		var wg sync.WaitGroup
		for w := range 4 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				intent := tetris.MoveLeft
				if w%2 == 1 {
					intent = tetris.MoveRight
				}
				for range 8 {
					d.Send(intent)
				}
			}()
		}
		wg.Wait()
		d.Once(0)

		stats := d.Stats()
		assert.Equal(t, int64(32), stats.IntentCount)
		assert.Equal(t, int64(2), stats.UpdateCount)
		assert.LessOrEqual(t, stats.MinDuration, stats.MaxDuration)
		assert.Equal(t, stats.TotalDuration/2, stats.AvgDuration)
		assert.Equal(t, tetris.PhaseFalling, d.Snapshot().Phase)
	})

	t.Run("snapshot is a copy", func(t *testing.T) {
		g, _ := newTestGame(tetris.ShapeI)
		d := tetris.NewDriver(g, 4)
		assert.Equal(t, tetris.PhaseInitialize, d.Snapshot().Phase)

		d.Send(tetris.HardDrop)
		d.Once(0)
		d.Once(0)

		s := d.Snapshot()
		require.Equal(t, 0, s.Board.Grid.Occupied(), "input before the first update is ignored")
		d.Send(tetris.HardDrop)
		d.Once(0)

		s = d.Snapshot()
		assert.Equal(t, 4, s.Board.Grid.Occupied())
		s.Board.Grid.Clear()
		assert.Equal(t, 4, d.Snapshot().Board.Grid.Occupied())
	})
}

func TestDriverRun(t *testing.T) {
	g, _ := newTestGame(tetris.ShapeT)
	d := tetris.NewDriver(g, 8)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		d.Run(ctx, time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return d.Stats().UpdateCount > 0 }, time.Second, time.Millisecond)
	d.Send(tetris.MoveLeft)
	<-done

	assert.Equal(t, tetris.PhaseFalling, d.Snapshot().Phase)
	assert.Positive(t, d.Stats().UpdateCount)
}
