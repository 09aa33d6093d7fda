// Package term runs the engine in a terminal through Bubble Tea.
package term

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/plus3/blockfall/internal/palette"
	"github.com/plus3/blockfall/internal/view"
	"github.com/plus3/blockfall/tetris"
)

// DefaultTick is the time between engine updates.
const DefaultTick = 50 * time.Millisecond

type Options struct {
	Config tetris.Config
	Ghost  bool
	Tick   time.Duration
}

type tickMsg time.Time

// Model implements tea.Model.
type Model struct {
	game     *tetris.Game
	view     view.Model
	ghost    bool
	tick     time.Duration
	quitting bool
}

var (
	wellStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#4b4b63"))
	panelStyle = lipgloss.NewStyle().Padding(0, 2)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(hex(palette.Text)))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(hex(palette.GridLine)))
	overStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(palette.Hex(tetris.Red)))
)

func New(opts Options) (*Model, error) {
	m := &Model{ghost: opts.Ghost, tick: opts.Tick}
	if m.tick <= 0 {
		m.tick = DefaultTick
	}
	game, err := tetris.NewE(opts.Config, m.view.Apply)
	if err != nil {
		return nil, err
	}
	m.game = game
	return m, nil
}

// Run takes over the terminal until the player quits.
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run terminal: %w", err)
	}
	return nil
}

// Game exposes the engine, mostly for tests.
func (m *Model) Game() *tetris.Game { return m.game }

func (m *Model) Init() tea.Cmd {
	m.game.Update(0)
	return m.tickCmd()
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tickMsg:
		m.game.Update(m.tick)
		return m, m.tickCmd()
	case tea.KeyMsg:
		key := msg.String()
		if isQuit(key) {
			m.quitting = true
			return m, tea.Quit
		}
		if key == "g" {
			m.ghost = !m.ghost
			return m, nil
		}
		if intent, ok := keyIntent(key); ok {
			m.game.Input(intent)
			m.game.Update(0)
		}
	}
	return m, nil
}

func isQuit(key string) bool {
	switch key {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

func keyIntent(key string) (tetris.Intent, bool) {
	switch key {
	case "left", "h":
		return tetris.MoveLeft, true
	case "right", "l":
		return tetris.MoveRight, true
	case "down", "j":
		return tetris.SoftDrop, true
	case "up", "k", "x":
		return tetris.Rotate, true
	case " ", "space":
		return tetris.HardDrop, true
	case "r":
		return tetris.Restart, true
	}
	return 0, false
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.view.Rows() == 0 {
		return "starting...\n"
	}
	well := wellStyle.Render(m.renderWell())
	return lipgloss.JoinHorizontal(lipgloss.Top, well, panelStyle.Render(m.renderPanel())) + "\n"
}

func (m *Model) renderWell() string {
	cells, layers := m.view.Picture(m.ghost)
	var b strings.Builder
	for i, line := range cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, c := range line {
			b.WriteString(square(c, layers[i][j]))
		}
	}
	return b.String()
}

func (m *Model) renderPanel() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("NEXT"))
	b.WriteString("\n")
	next := m.view.Next
	for row := next.Rows() - 1; row >= 0; row-- {
		for col := 0; col < next.Columns(); col++ {
			b.WriteString(square(next.Get(row, col), view.LayerActive))
		}
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "\n%s %d\n%s %d\n%s %d\n",
		titleStyle.Render("SCORE"), m.view.Score,
		titleStyle.Render("LINES"), m.view.Lines,
		titleStyle.Render("LEVEL"), m.view.Level)

	if m.view.Phase == tetris.PhaseGameOver {
		b.WriteString("\n" + overStyle.Render("GAME OVER") + "\nr to restart\n")
	}
	b.WriteString("\n" + dimStyle.Render("g ghost  q quit"))
	return b.String()
}

func square(c tetris.Cell, layer view.Layer) string {
	if c.IsOpen() {
		return dimStyle.Render(" .")
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Hex(c)))
	if layer == view.LayerGhost {
		return style.Render("░░")
	}
	return style.Render("██")
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
