package termhost

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/phanxgames/lumen"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	stateStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
)

// Config configures the terminal preview.
type Config struct {
	Glow       lumen.GlowConfig
	Background string
	Logger     *log.Logger
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is the bubbletea model for the preview. The bottom row is a status
// line; moving the mouse onto it counts as leaving the surface.
type Model struct {
	glow    *lumen.Glow
	sched   *lumen.PumpScheduler
	surface *CellSurface
	bg      lumen.Color

	cols, rows int
}

// New builds a model with its glow loop started.
func New(cfg Config) (Model, error) {
	bgSpec := cfg.Background
	if bgSpec == "" {
		bgSpec = lumen.DefaultHeroGlowConfig().Background
	}
	bg, err := lumen.ParseColor(bgSpec)
	if err != nil {
		return Model{}, fmt.Errorf("background: %w", err)
	}
	m := Model{
		sched:   lumen.NewPumpScheduler(),
		surface: NewCellSurface(),
		bg:      bg,
	}
	var opts []lumen.GlowOption
	if cfg.Logger != nil {
		opts = append(opts, lumen.WithLogger(cfg.Logger))
	}
	m.glow = lumen.NewGlow(cfg.Glow, m.surface, m.sched, opts...)
	m.glow.Start()
	return m, nil
}

// Glow returns the hosted glow.
func (m Model) Glow() *lumen.Glow { return m.glow }

func (m Model) Init() tea.Cmd {
	return tick()
}

// Update maps terminal messages to glow events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.glow.Stop()
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, max(1, msg.Height-1)
		m.glow.Handle(lumen.ResizeEvent{
			Width:       float64(m.cols * cellWidth),
			Height:      float64(m.rows * cellHeight),
			DeviceRatio: pixelRatio,
		})
	case tea.MouseMsg:
		if msg.Y >= m.rows {
			m.glow.Handle(lumen.PointerLeaveEvent{})
			break
		}
		m.glow.Handle(lumen.PointerMoveEvent{
			X:  float64(msg.X*cellWidth + cellWidth/2),
			Y:  float64(msg.Y*cellHeight + cellHeight/2),
			At: time.Now(),
		})
	case tea.FocusMsg:
		m.glow.Handle(lumen.VisibilityEvent{Hidden: false})
	case tea.BlurMsg:
		m.glow.Handle(lumen.VisibilityEvent{Hidden: true})
	case tickMsg:
		m.sched.Pump(time.Time(msg))
		return m, tick()
	}
	return m, nil
}

// View renders the field and the status line.
func (m Model) View() string {
	f := m.glow.Field()
	status := statusStyle.Render(fmt.Sprintf(" %s  blobs %d/%d  q to quit",
		stateStyle.Render(f.State().String()), f.Alive(), f.Cap()))
	if m.cols == 0 {
		return status
	}
	return m.surface.Render(m.bg) + "\n" + status
}

// Run starts the preview and blocks until the user quits or ctx ends.
func Run(ctx context.Context, cfg Config) error {
	m, err := New(cfg)
	if err != nil {
		return err
	}
	defer m.glow.Stop()

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	_, err = p.Run()
	return err
}
