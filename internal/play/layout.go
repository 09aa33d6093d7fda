package play

const (
	margin    = 24
	panelCols = 6
)

// frame places the well and the side panel inside a w x h screen.
type frame struct {
	cell   float32
	wellX  float32
	wellY  float32
	panelX float32
}

func layout(rows, cols, w, h int) frame {
	if rows == 0 || cols == 0 {
		return frame{}
	}
	byHeight := float32(h-2*margin) / float32(rows)
	byWidth := float32(w-3*margin) / float32(cols+panelCols)
	cell := min(byHeight, byWidth)
	if cell < 1 {
		cell = 1
	}

	wellW := cell * float32(cols)
	total := wellW + margin + cell*panelCols
	x := (float32(w) - total) / 2
	y := (float32(h) - cell*float32(rows)) / 2
	return frame{
		cell:   cell,
		wellX:  x,
		wellY:  y,
		panelX: x + wellW + margin,
	}
}

// at returns the top-left screen corner of the square at (row, col) in a well
// of rows rows. Row 0 is drawn at the bottom.
func (f frame) at(rows, row, col int) (float32, float32) {
	return f.wellX + float32(col)*f.cell, f.wellY + float32(rows-1-row)*f.cell
}
