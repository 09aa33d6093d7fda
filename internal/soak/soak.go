// Package soak plays many seeded games without a frontend and reports on
// them. Every game is driven through a tetris.Driver the way an interactive
// host would drive it.
package soak

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/tetris"
)

// Options configures a soak run.
type Options struct {
	// Config is the base configuration. Seed and Generator are replaced per
	// game.
	Config tetris.Config
	Games  int
	// Workers bounds how many games run at once.
	Workers int
	// Duration is the simulated play time per game.
	Duration time.Duration
	// Seed of the first game; game i uses Seed+i.
	Seed   uint64
	Logger *log.Logger
}

// GameResult is the outcome of one game.
type GameResult struct {
	Session uuid.UUID
	Seed    uint64
	Pieces  int
	Lines   int
	Score   int
	Level   int
	Updates int64
	Over    bool

	clears *intmap.Map[int, int64]
}

var soakIntents = []tetris.Intent{
	tetris.MoveLeft,
	tetris.MoveRight,
	tetris.Rotate,
	tetris.SoftDrop,
	tetris.HardDrop,
}

// Run plays opts.Games games and collects a report. When ctx ends early the
// report holds the games finished so far and the context error is returned.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if opts.Games < 1 {
		return nil, errors.New("soak: at least one game is required")
	}
	if opts.Duration <= 0 {
		return nil, errors.New("soak: duration must be positive")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	report := &Report{
		Config:   opts.Config,
		Games:    opts.Games,
		Workers:  opts.Workers,
		Duration: opts.Duration,
		Seed:     opts.Seed,
	}
	results := make([]*GameResult, opts.Games)

	start := time.Now()
	jobs := make(chan int)
	var wg sync.WaitGroup
	for range opts.Workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := play(ctx, opts.Config, opts.Seed+uint64(i), opts.Duration)
				if err != nil {
					continue
				}
				logger.Printf("soak: game %d (seed %d) finished: %d pieces, %d lines, over=%v",
					i, res.Seed, res.Pieces, res.Lines, res.Over)
				results[i] = res
			}
		}()
	}

feed:
	for i := range opts.Games {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	report.WallTime = time.Since(start)

	for _, res := range results {
		if res != nil {
			report.add(*res)
		}
	}
	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("soak interrupted after %d of %d games: %w", len(report.Results), opts.Games, err)
	}
	return report, nil
}

func play(ctx context.Context, cfg tetris.Config, seed uint64, duration time.Duration) (*GameResult, error) {
	cfg.Seed = &seed
	cfg.Generator = nil

	res := &GameResult{Seed: seed, clears: intmap.New[int, int64](tetris.PieceSize)}
	lines := 0
	game, err := tetris.NewE(cfg, func(ev tetris.RenderEvent) {
		s, ok := ev.(tetris.ScoreUpdated)
		if !ok {
			return
		}
		if n := s.Lines - lines; n > 0 {
			c, _ := res.clears.Get(n)
			res.clears.Put(n, c+1)
		}
		lines = s.Lines
	})
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(seed, seed+1))
	driver := tetris.NewDriver(game, len(soakIntents))
	frame := time.Second / time.Duration(cfg.FramesPerSecond)

	var state tetris.State
	for elapsed := time.Duration(0); elapsed < duration; elapsed += frame {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if rng.IntN(3) == 0 {
			driver.Send(soakIntents[rng.IntN(len(soakIntents))])
		}
		driver.Once(frame)

		state = driver.Snapshot()
		if state.Phase == tetris.PhaseGameOver {
			res.Over = true
			break
		}
	}

	res.Session = state.Session
	res.Pieces = state.Pieces
	res.Lines = state.Score.Lines
	res.Score = state.Score.Points
	res.Level = state.Score.Level()
	res.Updates = driver.Stats().UpdateCount
	return res, nil
}
