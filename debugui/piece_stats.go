package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/internal/palette"
	"github.com/plus3/blockfall/tetris"
)

type pieceRow struct {
	Shape tetris.Shape
	Count int
}

// PieceStatsWindow tabulates how often each shape has spawned this session.
type PieceStatsWindow struct {
	Spawned func(tetris.Shape) int

	rows          []pieceRow
	sortColumn    int
	sortAscending bool
}

func NewPieceStatsWindow(spawned func(tetris.Shape) int) *PieceStatsWindow {
	return &PieceStatsWindow{
		Spawned:    spawned,
		sortColumn: 1,
	}
}

func (w *PieceStatsWindow) Item() Item {
	return Item{Render: w.Render}
}

func (w *PieceStatsWindow) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 320), imgui.CondOnce, imgui.NewVec2(0, 0))
	if !imgui.BeginV("Piece Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	w.collect()
	total, most := 0, 0
	for _, r := range w.rows {
		total += r.Count
		most = max(most, r.Count)
	}
	imgui.Text(fmt.Sprintf("Spawned: %d", total))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable
	if imgui.BeginTableV("PieceTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Shape")
		imgui.TableSetupColumn("Count")
		imgui.TableSetupColumn("Share")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			w.sortColumn = int(spec.ColumnIndex())
			w.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}
		sortPieceRows(w.rows, w.sortColumn, w.sortAscending)

		for _, r := range w.rows {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			imgui.PushStyleColorVec4(imgui.ColText, vec4(palette.Color(r.Shape.Color())))
			imgui.Text(r.Shape.String())
			imgui.PopStyleColor()

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", r.Count))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%5.1f%%", share(r.Count, total)))
			if most > 0 {
				barWidth := float32(r.Count) / float32(most) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), colorU32(palette.Color(r.Shape.Color())))
			}
		}

		imgui.EndTable()
	}

	imgui.End()
}

func (w *PieceStatsWindow) collect() {
	w.rows = w.rows[:0]
	for _, s := range tetris.Shapes() {
		w.rows = append(w.rows, pieceRow{Shape: s, Count: w.Spawned(s)})
	}
}

func share(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) * 100 / float64(total)
}

func sortPieceRows(rows []pieceRow, column int, ascending bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		var less bool

		switch column {
		case 0:
			less = a.Shape < b.Shape
		default:
			less = a.Count < b.Count
		}

		if !ascending {
			return !less
		}
		return less
	})
}
