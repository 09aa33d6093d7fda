// Package play runs the engine in an Ebiten window.
package play

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/internal/palette"
	"github.com/plus3/blockfall/internal/view"
	"github.com/plus3/blockfall/tetris"
)

const (
	ScreenWidth  = 960
	ScreenHeight = 720
)

// Options are the host settings of a window session.
type Options struct {
	Config    tetris.Config
	Ghost     bool
	Inspector bool
}

// Game implements ebiten.Game.
type Game struct {
	opts    Options
	engine  *tetris.Game
	driver  *tetris.Driver
	model   view.Model
	overlay *debugui.Overlay
	backend *debugui_ebiten.ImguiBackend
	tick    time.Duration
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	backend := debugui_ebiten.NewImguiBackend("blockfall", ScreenWidth, ScreenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g, err := New(opts, backend)
	if err != nil {
		return err
	}
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

// New wires an engine, its driver and the inspector windows.
func New(opts Options, backend *debugui_ebiten.ImguiBackend) (*Game, error) {
	g := &Game{
		opts:    opts,
		backend: backend,
		tick:    time.Second / time.Duration(ebiten.DefaultTPS),
	}

	engine, err := tetris.NewE(opts.Config, g.model.Apply)
	if err != nil {
		return nil, err
	}
	g.engine = engine
	g.driver = tetris.NewDriver(engine, 32)

	board := debugui.NewBoardWindow(g.driver.Snapshot, g.driver.Send)
	board.Ghost = opts.Ghost
	g.overlay = debugui.NewOverlay(
		board.Item(),
		debugui.NewPieceStatsWindow(engine.Spawned).Item(),
		debugui.NewPerformanceWindow(g.driver.Stats, 120).Item(),
		debugui.NewStateInspector(g.driver.Snapshot).Item(),
	)
	if opts.Inspector {
		g.overlay.Toggle()
	}
	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.overlay.Toggle()
	}

	if !g.overlay.Input().WantCaptureKeyboard {
		for _, intent := range keyboardIntents() {
			if !g.driver.Send(intent) {
				log.Printf("play: input buffer full, dropped %s", intent)
			}
		}
	}
	g.driver.Once(g.tick)

	if g.backend != nil {
		g.backend.Update(g.overlay)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(palette.Background)

	bounds := screen.Bounds()
	m := &g.model
	f := layout(m.Rows(), m.Columns(), bounds.Dx(), bounds.Dy())
	if f.cell > 0 {
		g.drawWell(screen, f)
		g.drawPanel(screen, f)
	}

	if g.backend != nil {
		g.backend.DrawOver(screen)
	}
}

func (g *Game) drawWell(screen *ebiten.Image, f frame) {
	m := &g.model
	rows, cols := m.Rows(), m.Columns()
	vector.DrawFilledRect(screen, f.wellX, f.wellY, f.cell*float32(cols), f.cell*float32(rows), palette.Well, false)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x, y := f.at(rows, row, col)
			vector.StrokeRect(screen, x, y, f.cell, f.cell, 1, palette.GridLine, false)
		}
	}

	for _, sq := range m.Squares(g.opts.Ghost) {
		x, y := f.at(rows, sq.Pos.Row, sq.Pos.Col)
		c := palette.Color(sq.Cell)
		if sq.Layer == view.LayerGhost {
			c = palette.Ghost(sq.Cell)
		}
		drawSquare(screen, x, y, f.cell, c)
	}

	if m.Phase == tetris.PhaseGameOver {
		ebitenutil.DebugPrintAt(screen, "GAME OVER - press R", int(f.wellX)+8, int(f.wellY)+int(f.cell*float32(rows)/2))
	}
}

func (g *Game) drawPanel(screen *ebiten.Image, f frame) {
	m := &g.model
	x, y := int(f.panelX), int(f.wellY)

	ebitenutil.DebugPrintAt(screen, "NEXT", x, y)
	for p, c := range m.Next.Cells() {
		sx := f.panelX + float32(p.Col)*f.cell
		sy := f.wellY + 20 + float32(tetris.PieceSize-1-p.Row)*f.cell
		drawSquare(screen, sx, sy, f.cell, palette.Color(c))
	}

	y += 40 + int(f.cell)*tetris.PieceSize
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d\nLINES %d\nLEVEL %d", m.Score, m.Lines, m.Level), x, y)
	ebitenutil.DebugPrintAt(screen, "F1 inspector", x, y+60)
}

func drawSquare(screen *ebiten.Image, x, y, size float32, c color.RGBA) {
	vector.DrawFilledRect(screen, x+1, y+1, size-2, size-2, c, false)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
