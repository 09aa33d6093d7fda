package tetris

import (
	"context"
	"sync"
	"time"
)

// DriverStats provides timing statistics about Driver updates.
type DriverStats struct {
	UpdateCount   int64
	IntentCount   int64
	DroppedCount  int64
	MinDuration   time.Duration
	MaxDuration   time.Duration
	AvgDuration   time.Duration
	LastDuration  time.Duration
	TotalDuration time.Duration
}

// Driver funnels intents from any goroutine into a single Game and advances
// it. Only the goroutine calling Once or Run touches the game.
type Driver struct {
	game    *Game
	intents chan Intent

	mu       sync.Mutex
	snapshot State
	stats    DriverStats
}

// NewDriver wraps game. buffer bounds how many intents Send accepts between
// two updates.
func NewDriver(game *Game, buffer int) *Driver {
	if buffer < 1 {
		buffer = 1
	}
	return &Driver{
		game:     game,
		intents:  make(chan Intent, buffer),
		snapshot: game.Snapshot(),
		stats:    DriverStats{MinDuration: time.Duration(1<<63 - 1)},
	}
}

// Send queues an intent without blocking. It reports false when the buffer
// is full and the intent was dropped. It panics on an invalid intent.
func (d *Driver) Send(i Intent) bool {
	if !i.Valid() {
		panic("tetris: invalid intent " + i.String())
	}
	select {
	case d.intents <- i:
		return true
	default:
		d.mu.Lock()
		d.stats.DroppedCount++
		d.mu.Unlock()
		return false
	}
}

// Once drains pending intents into the game and updates it by dt.
func (d *Driver) Once(dt time.Duration) {
	start := time.Now()

	var n int64
drain:
	for {
		select {
		case i := <-d.intents:
			d.game.Input(i)
			n++
		default:
			break drain
		}
	}
	d.game.Update(dt)
	snapshot := d.game.Snapshot()

	duration := time.Since(start)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.snapshot = snapshot
	d.stats.UpdateCount++
	d.stats.IntentCount += n
	d.stats.LastDuration = duration
	d.stats.TotalDuration += duration
	if duration < d.stats.MinDuration {
		d.stats.MinDuration = duration
	}
	if duration > d.stats.MaxDuration {
		d.stats.MaxDuration = duration
	}
}

// Run updates the game at the given interval until the context is cancelled.
func (d *Driver) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime)
			lastTime = now
			d.Once(dt)
		}
	}
}

// Stats returns statistics about the updates run so far.
func (d *Driver) Stats() DriverStats {
	d.mu.Lock()
	defer d.mu.Unlock()

	stats := d.stats
	if stats.UpdateCount > 0 {
		stats.AvgDuration = stats.TotalDuration / time.Duration(stats.UpdateCount)
	} else {
		stats.MinDuration = 0
	}
	return stats
}

// Snapshot returns the game state as of the last completed update. It is safe
// to call from any goroutine.
func (d *Driver) Snapshot() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshot.Clone()
}
