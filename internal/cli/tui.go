package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apperr "github.com/matzehuels/forcegraph/pkg/errors"
	"github.com/matzehuels/forcegraph/pkg/graph"
	"github.com/matzehuels/forcegraph/pkg/viewer"
)

const (
	panStep    = 4.0  // screen units per arrow key press
	zoomFactor = 1.25 // per +/- key press
	statusRows = 1
)

var styleStatus = lipgloss.NewStyle().Foreground(colorGray)

// =============================================================================
// GraphModel - Interactive pan/zoom viewer
// =============================================================================

// GraphModel is the bubbletea model for the terminal graph viewer. It owns
// the zoom and pan of its state once the program runs.
type GraphModel struct {
	State  *viewer.State
	Width  int
	Height int
	Labels bool
}

// NewGraphModel creates a model showing s with labels enabled.
func NewGraphModel(s *viewer.State) GraphModel {
	return GraphModel{State: s, Labels: true}
}

func (m GraphModel) Init() tea.Cmd {
	return nil
}

// area is the drawable region in screen units.
func (m GraphModel) area() (w, h float64) {
	rows := max(m.Height-statusRows, 1)
	return float64(m.Width), float64(rows) * cellAspect
}

func (m GraphModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		if !m.State.Initialized {
			m.State.Center(m.area())
		}
	case tea.KeyMsg:
		w, h := m.area()
		centre := graph.Position{X: w / 2, Y: h / 2}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.State.PanBy(panStep, 0)
		case "right", "l":
			m.State.PanBy(-panStep, 0)
		case "up", "k":
			m.State.PanBy(0, panStep*cellAspect)
		case "down", "j":
			m.State.PanBy(0, -panStep*cellAspect)
		case "+", "=":
			m.State.ZoomBy(zoomFactor, centre)
		case "-", "_":
			m.State.ZoomBy(1/zoomFactor, centre)
		case "0", "r":
			m.State.Center(w, h)
		case "t":
			m.Labels = !m.Labels
		}
	}
	return m, nil
}

func (m GraphModel) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}
	c := newCanvas(m.Width, m.Height-statusRows)
	c.draw(m.State, m.Labels)

	var b strings.Builder
	b.WriteString(c.String())
	b.WriteString("\n")
	b.WriteString(styleStatus.Render(m.status()))
	return b.String()
}

func (m GraphModel) status() string {
	s := fmt.Sprintf(" %d nodes · %d edges · zoom %.2f   ←↑↓→ pan  +/- zoom  0 reset  t labels  q quit",
		m.State.Graph.NodeCount(), m.State.Graph.EdgeCount(), m.State.Zoom)
	if len([]rune(s)) > m.Width {
		s = string([]rune(s)[:max(m.Width, 0)])
	}
	return s
}

// =============================================================================
// Terminal display
// =============================================================================

// terminalDisplay runs GraphModel in the alternate screen.
type terminalDisplay struct {
	opts []tea.ProgramOption
}

func newTerminalDisplay(*CLI) viewer.Display {
	return &terminalDisplay{opts: []tea.ProgramOption{tea.WithAltScreen()}}
}

// Show blocks until the user quits or ctx is cancelled.
func (d *terminalDisplay) Show(ctx context.Context, s *viewer.State) error {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, d.opts...)
	p := tea.NewProgram(NewGraphModel(s), opts...)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return apperr.Wrap(apperr.ErrCodeDisplay, err, "run terminal viewer")
	}
	return nil
}
