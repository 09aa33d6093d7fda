package tetris

import (
	"fmt"
	"math/rand/v2"
)

// PieceSize is the side of the square bounding grid every piece lives in.
const PieceSize = 4

// Shape identifies one of the seven tetrominoes.
type Shape uint8

const (
	NoShape Shape = iota
	ShapeI
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

type shapeDef struct {
	name  string
	color Cell
	// cells are (col, row) pairs with row 0 at the bottom.
	cells [4]Position
}

var catalog = [...]shapeDef{
	ShapeI: {"I", Red, [4]Position{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
	ShapeO: {"O", Blue, [4]Position{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
	ShapeT: {"T", Magenta, [4]Position{{0, 0}, {1, 0}, {2, 0}, {1, 1}}},
	ShapeS: {"S", Cyan, [4]Position{{0, 0}, {1, 0}, {1, 1}, {2, 1}}},
	ShapeZ: {"Z", Brown, [4]Position{{1, 0}, {2, 0}, {0, 1}, {1, 1}}},
	ShapeJ: {"J", Yellow, [4]Position{{0, 0}, {1, 0}, {2, 0}, {0, 1}}},
	ShapeL: {"L", Green, [4]Position{{0, 0}, {1, 0}, {2, 0}, {2, 1}}},
}

var allShapes = []Shape{ShapeI, ShapeO, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL}

func init() {
	seen := map[Cell]Shape{}
	for _, s := range allShapes {
		g := s.Grid()
		if g.Occupied() != 4 || !g.Equal(g.Compacted()) {
			panic(fmt.Sprintf("tetris: malformed catalog entry %s", s))
		}
		if prev, ok := seen[s.Color()]; ok {
			panic(fmt.Sprintf("tetris: shapes %s and %s share a color", prev, s))
		}
		seen[s.Color()] = s
	}
}

// Shapes returns the seven playable shapes in catalog order.
func Shapes() []Shape {
	return append([]Shape(nil), allShapes...)
}

// Valid reports whether s is one of the seven playable shapes.
func (s Shape) Valid() bool {
	return s >= ShapeI && s <= ShapeL
}

func (s Shape) String() string {
	if !s.Valid() {
		if s == NoShape {
			return "none"
		}
		return fmt.Sprintf("shape(%d)", uint8(s))
	}
	return catalog[s].name
}

// Color returns the cell value the shape is drawn with.
func (s Shape) Color() Cell {
	if !s.Valid() {
		return Empty
	}
	return catalog[s].color
}

// Grid returns a fresh PieceSize x PieceSize grid holding the shape in its
// spawn orientation, compacted to the origin. NoShape yields an empty grid.
func (s Shape) Grid() Grid {
	g := NewGrid(PieceSize, PieceSize)
	if !s.Valid() {
		return g
	}
	def := catalog[s]
	for _, p := range def.cells {
		g.Set(p.Row, p.Col, def.color)
	}
	return g
}

// Generator produces the sequence of shapes a game deals.
type Generator interface {
	Next() Shape
}

// UniformGenerator draws every shape independently with equal probability.
type UniformGenerator struct {
	rng *rand.Rand
}

func NewUniformGenerator(rng *rand.Rand) *UniformGenerator {
	return &UniformGenerator{rng: rng}
}

func (u *UniformGenerator) Next() Shape {
	return allShapes[u.rng.IntN(len(allShapes))]
}

// BagGenerator deals all seven shapes in a shuffled order before repeating any.
type BagGenerator struct {
	rng *rand.Rand
	bag []Shape
}

func NewBagGenerator(rng *rand.Rand) *BagGenerator {
	return &BagGenerator{rng: rng}
}

func (b *BagGenerator) Next() Shape {
	if len(b.bag) == 0 {
		b.bag = Shapes()
		b.rng.Shuffle(len(b.bag), func(i, j int) {
			b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
		})
	}
	s := b.bag[0]
	b.bag = b.bag[1:]
	return s
}
