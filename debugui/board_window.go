package debugui

import (
	"fmt"
	"image/color"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/internal/palette"
	"github.com/plus3/blockfall/internal/view"
	"github.com/plus3/blockfall/tetris"
)

// BoardWindow draws a miniature of the well next to the session, phase and
// level progress. Restart sends through Send so the engine keeps a single
// writer.
type BoardWindow struct {
	Snapshot func() tetris.State
	Send     func(tetris.Intent) bool
	CellSize float32
	Ghost    bool
}

func NewBoardWindow(snapshot func() tetris.State, send func(tetris.Intent) bool) *BoardWindow {
	return &BoardWindow{
		Snapshot: snapshot,
		Send:     send,
		CellSize: 10,
		Ghost:    true,
	}
}

func (w *BoardWindow) Item() Item {
	return Item{Render: w.Render}
}

func (w *BoardWindow) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	s := w.Snapshot()
	model := view.FromState(s)

	imgui.Text(fmt.Sprintf("Session: %s", s.Session))
	imgui.Text(fmt.Sprintf("Phase: %s", s.Phase))
	imgui.Text(fmt.Sprintf("Score: %d  Lines: %d  Pieces: %d", s.Score.Points, s.Score.Lines, s.Pieces))

	done := s.Score.Lines % tetris.LinesPerLevel
	imgui.ProgressBarV(float32(done)/tetris.LinesPerLevel, imgui.NewVec2(-1, 0),
		fmt.Sprintf("level %d: %d/%d", s.Score.Level(), done, tetris.LinesPerLevel))

	imgui.Checkbox("Ghost", &w.Ghost)
	if w.Send != nil {
		imgui.SameLine()
		if imgui.Button("Restart") {
			w.Send(tetris.Restart)
		}
	}
	imgui.Separator()

	rows, cols := model.Rows(), model.Columns()
	if rows == 0 {
		imgui.Text("Waiting for the first update")
		imgui.End()
		return
	}

	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	size := w.CellSize
	well := imgui.NewVec2(origin.X+float32(cols)*size, origin.Y+float32(rows)*size)
	drawList.AddRectFilled(origin, well, colorU32(palette.Well))

	for _, sq := range model.Squares(w.Ghost) {
		x := origin.X + float32(sq.Pos.Col)*size
		y := origin.Y + float32(rows-1-sq.Pos.Row)*size
		c := palette.Color(sq.Cell)
		if sq.Layer == view.LayerGhost {
			c = palette.Ghost(sq.Cell)
		}
		drawList.AddRectFilled(imgui.NewVec2(x+1, y+1), imgui.NewVec2(x+size-1, y+size-1), colorU32(c))
	}
	imgui.Dummy(imgui.NewVec2(float32(cols)*size, float32(rows)*size))

	imgui.End()
}

func vec4(c color.RGBA) imgui.Vec4 {
	return imgui.NewVec4(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
}

func colorU32(c color.RGBA) uint32 {
	return imgui.ColorU32Vec4(vec4(c))
}
