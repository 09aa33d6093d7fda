package tetris

import "fmt"

// Position locates a cell or a piece's bounding grid in board space. Rows grow
// upward from the floor of the well.
type Position struct {
	Col int `yaml:"col" mapstructure:"col"`
	Row int `yaml:"row" mapstructure:"row"`
}

// Plus returns the component-wise sum of p and o.
func (p Position) Plus(o Position) Position {
	return Position{Col: p.Col + o.Col, Row: p.Row + o.Row}
}

// Minus returns the component-wise difference of p and o.
func (p Position) Minus(o Position) Position {
	return Position{Col: p.Col - o.Col, Row: p.Row - o.Row}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}
