package tetris_test

import (
	"github.com/plus3/blockfall/tetris"
)

// sequence deals shapes in a fixed cycle.
type sequence struct {
	shapes []tetris.Shape
	n      int
}

func deal(shapes ...tetris.Shape) *sequence {
	return &sequence{shapes: shapes}
}

func (s *sequence) Next() tetris.Shape {
	shape := s.shapes[s.n%len(s.shapes)]
	s.n++
	return shape
}

type recorder struct {
	events []tetris.RenderEvent
}

func (r *recorder) render(ev tetris.RenderEvent) {
	r.events = append(r.events, ev)
}

func (r *recorder) reset() {
	r.events = nil
}

func (r *recorder) phases() []tetris.PhaseChanged {
	var out []tetris.PhaseChanged
	for _, ev := range r.events {
		if pc, ok := ev.(tetris.PhaseChanged); ok {
			out = append(out, pc)
		}
	}
	return out
}

func newTestGame(shapes ...tetris.Shape) (*tetris.Game, *recorder) {
	cfg := tetris.DefaultConfig()
	cfg.Generator = deal(shapes...)
	rec := &recorder{}
	return tetris.New(cfg, rec.render), rec
}

func inputs(g *tetris.Game, intents ...tetris.Intent) {
	for _, i := range intents {
		g.Input(i)
	}
}

func repeat(i tetris.Intent, n int) []tetris.Intent {
	out := make([]tetris.Intent, n)
	for k := range out {
		out[k] = i
	}
	return out
}
