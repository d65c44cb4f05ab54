package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/slidingpanel/internal/config"
	"github.com/depeter/slidingpanel/internal/panel"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return nm, cmd
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// newSized returns a model laid out on an 80x50 terminal, so the panel spans
// 800 px.
func newSized(t *testing.T) Model {
	t.Helper()
	m, err := New(config.DefaultConfig())
	require.NoError(t, err)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 50})
	return m
}

func runFrames(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for i := 0; cmd != nil; i++ {
		require.Less(t, i, 120, "animation never finished")
		m, cmd = update(t, m, FrameMsg(time.Now()))
	}
	return m
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Panel.CollapsedRatio = 2
	_, err := New(cfg)
	assert.ErrorIs(t, err, panel.ErrInvalidConfiguration)
}

func TestWindowSizeConfiguresGeometry(t *testing.T) {
	m := newSized(t)
	assert.Equal(t, 800, m.Panel().Geometry().ScreenHeight())
	assert.Equal(t, 600.0, m.Panel().CurrentOffset())
	assert.Equal(t, 38, m.sheetTop())
}

func TestKeyAnimatesToState(t *testing.T) {
	m := newSized(t)

	m, cmd := update(t, m, key("1"))
	require.NotNil(t, cmd, "animation should schedule a frame")
	assert.True(t, m.Panel().IsAnimating())

	m = runFrames(t, m, cmd)
	s, ok := m.Panel().CurrentState()
	require.True(t, ok)
	assert.Equal(t, panel.Expanded, s)
	assert.Equal(t, 0.0, m.Panel().CurrentOffset())
}

func TestOneFrameInFlight(t *testing.T) {
	m := newSized(t)
	m, cmd := update(t, m, key("2"))
	require.NotNil(t, cmd)

	// input while a frame is pending does not schedule a second one
	_, cmd = update(t, m, key("x"))
	assert.Nil(t, cmd)
}

func TestToggleDrag(t *testing.T) {
	m := newSized(t)
	m, _ = update(t, m, key("d"))
	assert.False(t, m.Panel().Enabled())
	m, _ = update(t, m, key("D"))
	assert.True(t, m.Panel().Enabled())
}

func TestQuit(t *testing.T) {
	m := newSized(t)
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestMouseFling(t *testing.T) {
	m := newSized(t)
	clock := time.Unix(0, 0)
	m.now = func() time.Time { return clock }

	mouse := func(action tea.MouseAction, y int) {
		m, _ = update(t, m, tea.MouseMsg{X: 10, Y: y, Action: action, Button: tea.MouseButtonLeft})
		clock = clock.Add(10 * time.Millisecond)
	}
	mouse(tea.MouseActionPress, 40)
	mouse(tea.MouseActionMotion, 35)
	mouse(tea.MouseActionMotion, 30)
	mouse(tea.MouseActionMotion, 25)
	mouse(tea.MouseActionRelease, 25)

	assert.True(t, m.Panel().IsAnimating())
	assert.Equal(t, panel.Anchored, m.Panel().TargetState())
}

func TestMousePressAboveSheetIgnored(t *testing.T) {
	m := newSized(t)
	m, _ = update(t, m, tea.MouseMsg{Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	assert.Equal(t, panel.PhaseIdle, m.Panel().Phase())
	assert.Equal(t, 600.0, m.Panel().CurrentOffset())
}

func TestConfigMsg(t *testing.T) {
	m := newSized(t)

	next := config.DefaultConfig()
	next.Panel.CollapsedRatio = 0.5
	next.Keybinds.Expanded = "e"
	m, _ = update(t, m, ConfigMsg{Config: next})
	assert.Equal(t, 400.0, m.Panel().CurrentOffset())

	m, _ = update(t, m, key("e"))
	assert.Equal(t, panel.Expanded, m.Panel().TargetState())

	m, _ = update(t, m, ConfigMsg{Err: errors.New("parse failed")})
	assert.Contains(t, m.View(), "parse failed")
}

func TestView(t *testing.T) {
	m, err := New(config.DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, m.View(), "nothing to draw before the first size")

	m = newSized(t)
	view := m.View()
	assert.Len(t, strings.Split(view, "\n"), 50)
	assert.Contains(t, view, "collapsed")
	assert.Contains(t, view, "Sliding panel")
	assert.Contains(t, view, "toggle drag")
}

func TestSheetColorBlends(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#3d8bfd"), sheetColor(0))
	assert.Equal(t, lipgloss.Color("#1d3557"), sheetColor(1))
	assert.Equal(t, sheetColor(1), sheetColor(3), "fraction is clamped")
	assert.NotEqual(t, sheetColor(0), sheetColor(0.5))
}

func TestFit(t *testing.T) {
	assert.Equal(t, "abc  ", fit("abc", 5))
	assert.Equal(t, "abcde", fit("abcdefgh", 5))
}

func TestArrowAndWheelStep(t *testing.T) {
	m := newSized(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, panel.Anchored, m.Panel().TargetState())

	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, panel.Collapsed, m.Panel().TargetState())
}
