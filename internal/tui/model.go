// Package tui hosts the sliding panel in a terminal with bubbletea. Rows are
// mapped to a fixed number of pixels so velocities and thresholds keep the
// same meaning as in the graphical host.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/depeter/slidingpanel/internal/config"
	"github.com/depeter/slidingpanel/internal/motion"
	"github.com/depeter/slidingpanel/internal/panel"
)

const (
	// rowHeight is how many pixels one terminal row stands for.
	rowHeight = 16
	// frameInterval paces animation frames while a run is active.
	frameInterval = time.Second / 60
)

var (
	backgroundStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("235"))

	sheetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230"))

	handleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Background(lipgloss.Color("235"))
)

// FrameMsg advances the animation by one frame.
type FrameMsg time.Time

// ConfigMsg carries a reloaded config, or the error that stopped the reload.
type ConfigMsg struct {
	Config *config.Config
	Err    error
}

// Model is the bubbletea model for the terminal host.
type Model struct {
	cfg        *config.Config
	panel      *panel.Controller
	driver     *motion.Driver
	recognizer panel.DragRecognizer

	width, height int
	ticking       bool
	lastErr       string
	now           func() time.Time
}

// New creates the model. The panel starts with an empty screen and takes its
// real height from the first WindowSizeMsg.
func New(cfg *config.Config) (Model, error) {
	m := Model{
		cfg:    cfg,
		driver: motion.NewDriver(cfg.Panel.EasingFunc()),
		now:    time.Now,
	}
	m.recognizer.Slop = rowHeight / 2

	geom, err := panel.NewGeometry(0, cfg.Panel.AnchoredRatio, cfg.Panel.CollapsedRatio)
	if err != nil {
		return Model{}, err
	}
	m.panel, err = panel.NewController(geom, append(cfg.Panel.Options(), panel.WithAnimationDriver(m.driver))...)
	if err != nil {
		return Model{}, err
	}
	return m, nil
}

// Panel exposes the controller.
func (m Model) Panel() *panel.Controller { return m.panel }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		a, c := m.panel.Geometry().Ratios()
		m.report(m.panel.Configure(msg.Height*rowHeight, a, c))

	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			return m, cmd
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case ConfigMsg:
		m.applyConfig(msg)

	case FrameMsg:
		m.ticking = false
		m.driver.Advance(frameInterval, m.panel)
	}

	return m, m.frameCmd()
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	switch key {
	case "q", "ctrl+c", "esc":
		return tea.Quit
	case "up", "k":
		m.panel.Step(panel.DirectionUp)
		return nil
	case "down", "j":
		m.panel.Step(panel.DirectionDown)
		return nil
	}

	kb := m.cfg.Keybinds
	for _, b := range kb.StateKeys() {
		if strings.EqualFold(key, b.Key) {
			m.report(m.panel.AnimateTo(b.State))
			return nil
		}
	}
	if strings.EqualFold(key, kb.ToggleDrag) {
		enabled := !m.panel.Enabled()
		if !enabled {
			m.recognizer.Cancel(m.panel)
		}
		m.panel.SetEnabled(enabled)
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Button { //nolint:exhaustive // left button and wheel only
	case tea.MouseButtonWheelUp:
		m.panel.Step(panel.DirectionUp)
		return
	case tea.MouseButtonWheelDown:
		m.panel.Step(panel.DirectionDown)
		return
	}
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return
	}
	now := m.now()
	y := float64(msg.Y*rowHeight + rowHeight/2)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Y >= m.sheetTop() {
			m.recognizer.Press(now, y)
		}
	case tea.MouseActionMotion:
		m.recognizer.Move(now, y, m.panel)
	case tea.MouseActionRelease:
		m.recognizer.Release(now, y, m.panel)
	}
}

func (m *Model) applyConfig(msg ConfigMsg) {
	if msg.Err != nil {
		m.report(msg.Err)
		return
	}
	if err := msg.Config.Panel.Apply(m.panel); err != nil {
		m.report(err)
		return
	}
	m.driver.SetEasing(msg.Config.Panel.EasingFunc())
	m.cfg.Panel = msg.Config.Panel
	m.cfg.Keybinds = msg.Config.Keybinds
	m.lastErr = ""
}

func (m *Model) report(err error) {
	if err != nil {
		m.lastErr = err.Error()
	}
}

// frameCmd schedules the next frame while an animation run is active. At most
// one frame is in flight.
func (m *Model) frameCmd() tea.Cmd {
	if m.ticking || !m.driver.Active() {
		return nil
	}
	m.ticking = true
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// sheetTop is the first terminal row covered by the foreground panel.
func (m Model) sheetTop() int {
	return int(m.panel.CurrentOffset()+rowHeight/2) / rowHeight
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	background := m.backgroundLines()
	sheet := m.sheetLines()
	top := m.sheetTop()
	body, handle := sheetStyles(float64(top) / float64(m.height))

	rows := make([]string, m.height)
	for i := range rows {
		switch {
		case i < top:
			rows[i] = lineAt(background, i, backgroundStyle, m.width)
		case i == top:
			rows[i] = handle.Width(m.width).Align(lipgloss.Center).Render(m.status())
		default:
			rows[i] = lineAt(sheet, i-top-1, body, m.width)
		}
	}
	if m.lastErr != "" {
		rows[m.height-1] = errorStyle.Render(fit(m.lastErr, m.width))
	}
	return strings.Join(rows, "\n")
}

func lineAt(lines []string, i int, style lipgloss.Style, width int) string {
	s := ""
	if i >= 0 && i < len(lines) {
		s = lines[i]
	}
	return style.Render(fit(s, width))
}

func (m Model) backgroundLines() []string {
	kb := m.cfg.Keybinds
	return []string{
		" Background",
		"",
		fmt.Sprintf(" [%s] expanded   [%s] anchored", kb.Expanded, kb.Anchored),
		fmt.Sprintf(" [%s] collapsed  [%s] hidden", kb.Collapsed, kb.Hidden),
		fmt.Sprintf(" [%s] toggle drag   [q] quit", kb.ToggleDrag),
		" [up/down] step between anchors",
	}
}

func (m Model) sheetLines() []string {
	p := m.panel.Progress()
	drag := "on"
	if !m.panel.Enabled() {
		drag = "off"
	}
	return []string{
		"",
		" Sliding panel",
		"",
		fmt.Sprintf(" offset   %.0f px", m.panel.CurrentOffset()),
		fmt.Sprintf(" between  %s .. %s (%.0f%%)", p.From, p.To, p.Fraction*100),
		fmt.Sprintf(" drag     %s", drag),
		"",
		" Drag this panel with the mouse.",
	}
}

func (m Model) status() string {
	if s, ok := m.panel.CurrentState(); ok {
		return "━━━  " + s.String() + "  ━━━"
	}
	return fmt.Sprintf("━━━  %s -> %s  ━━━", m.panel.Phase(), m.panel.TargetState())
}
