package tetris

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/kamstrup/intmap"
)

// Game owns one well and runs the state machine over it. A Game is not safe
// for concurrent use; hosts with several goroutines go through a Driver.
type Game struct {
	cfg      Config
	env      *env
	state    State
	render   RenderFunc
	commands Commands
	spawned  *intmap.Map[Shape, int]
}

// New creates a game from cfg. It panics when cfg is invalid; use NewE to get
// the validation error instead. render may be nil.
func New(cfg Config, render RenderFunc) *Game {
	g, err := NewE(cfg, render)
	if err != nil {
		panic("tetris: " + err.Error())
	}
	return g
}

// NewE is New returning configuration errors.
func NewE(cfg Config, render RenderFunc) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		render:  render,
		spawned: intmap.New[Shape, int](len(allShapes)),
	}
	g.env = newEnv(cfg, newGenerator(cfg))
	g.env.onSpawn = g.countSpawn
	g.env.onReset = g.spawned.Clear
	g.state.Phase = PhaseInitialize
	return g, nil
}

func newGenerator(cfg Config) Generator {
	if cfg.Generator != nil {
		return cfg.Generator
	}
	seed := uint64(time.Now().UnixNano())
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	if cfg.Randomizer == RandomizerBag {
		return NewBagGenerator(rng)
	}
	return NewUniformGenerator(rng)
}

// Config returns the configuration the game was built with.
func (g *Game) Config() Config {
	return g.cfg
}

// Input queues an intent for the next Update.
func (g *Game) Input(i Intent) {
	if !i.Valid() {
		panic("tetris: invalid intent " + i.String())
	}
	g.commands.Push(i)
}

// Update applies queued intents in the order they were received and then
// advances time by dt, which triggers at most one gravity step.
func (g *Game) Update(dt time.Duration) {
	g.commands.Flush(func(i Intent) {
		g.dispatch(IntentEvent(i))
	})
	g.dispatch(Tick(dt))
}

func (g *Game) dispatch(ev Event) {
	events := step(&g.state, ev, g.env)
	if g.render == nil {
		return
	}
	for _, re := range events {
		g.render(re)
	}
}

func (g *Game) countSpawn(s Shape) {
	n, _ := g.spawned.Get(s)
	g.spawned.Put(s, n+1)
}

// Phase returns the current state-machine phase.
func (g *Game) Phase() Phase {
	return g.state.Phase
}

// Score returns the current score.
func (g *Game) Score() Score {
	return g.state.Score
}

// Session returns the id of the current session. It changes on every
// initialization and is the zero UUID before the first Update.
func (g *Game) Session() uuid.UUID {
	return g.state.Session
}

// Spawned returns how many pieces of shape s became active this session.
func (g *Game) Spawned(s Shape) int {
	n, _ := g.spawned.Get(s)
	return n
}

// Snapshot returns a deep copy of the game state. Calling it repeatedly
// without an intervening Update yields equal snapshots.
func (g *Game) Snapshot() State {
	return g.state.Clone()
}

// Redraw sends render events describing the whole current state. After game
// over the piece that failed to spawn is not announced.
func (g *Game) Redraw() {
	if g.render == nil {
		return
	}
	s := &g.state
	g.render(boardUpdated(s.Board))
	g.render(scoreUpdated(s.Score))
	if s.Active.Shape.Valid() && s.Phase != PhaseGameOver {
		g.render(activeUpdated(s.Active))
		g.render(ghostUpdated(s.Ghost))
	}
	if s.Next.Shape.Valid() {
		g.render(nextUpdated(s.Next))
	}
	g.render(PhaseChanged{From: s.Phase, To: s.Phase})
}
