package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/slidingpanel/internal/config"
	"github.com/depeter/slidingpanel/internal/panel"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.UI.Height = 1000
	g, err := NewGame(cfg)
	require.NoError(t, err)
	return g
}

func TestNewGame_RestsAtInitialState(t *testing.T) {
	g := newTestGame(t)
	s, ok := g.Panel.CurrentState()
	require.True(t, ok)
	assert.Equal(t, panel.Collapsed, s)
	assert.Equal(t, 750.0, g.Panel.CurrentOffset())
	assert.Len(t, g.view.Foreground.Buttons, len(panel.States)+1)
}

func TestNewGame_InvalidRatios(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Panel.AnchoredRatio = 0.9
	_, err := NewGame(cfg)
	assert.ErrorIs(t, err, panel.ErrInvalidConfiguration)
}

func TestDefaultKeybindsParse(t *testing.T) {
	kb := config.DefaultConfig().Keybinds
	got := kb.StateKeys()
	require.Len(t, got, len(panel.States))
	for i, s := range panel.States {
		assert.Equal(t, s, got[i].State)
		_, ok := parseKey(got[i].Key)
		assert.True(t, ok, "default key %q for %s should parse", got[i].Key, s)
	}
	for _, k := range []string{kb.ToggleDrag, kb.Fullscreen} {
		_, ok := parseKey(k)
		assert.True(t, ok, "default key %q should parse", k)
	}
}

func TestParseKey_CaseInsensitive(t *testing.T) {
	a, ok := parseKey("D")
	require.True(t, ok)
	b, _ := parseKey("d")
	assert.Equal(t, a, b)

	_, ok = parseKey("hyper")
	assert.False(t, ok)
}

func TestButtonClickAnimates(t *testing.T) {
	g := newTestGame(t)
	g.view.Layout(g.Panel.CurrentOffset())

	// first background button is EXPANDED
	b := g.view.Background.Buttons[0]
	require.True(t, g.view.Background.Click(int(b.Rect.X)+1, int(b.Rect.Y)+1))

	assert.True(t, g.Panel.IsAnimating())
	assert.Equal(t, panel.Expanded, g.Panel.TargetState())
	assert.Equal(t, "animating -> expanded", stateLabel(g.Panel))
}

func TestToggleDrag(t *testing.T) {
	g := newTestGame(t)
	g.toggleDrag()
	assert.False(t, g.Panel.Enabled())
	g.toggleDrag()
	assert.True(t, g.Panel.Enabled())
}

func TestApplyConfig(t *testing.T) {
	g := newTestGame(t)

	next := config.DefaultConfig()
	next.Panel.AnchoredRatio = 0.1
	next.Panel.CollapsedRatio = 0.5
	next.Panel.VelocityThreshold = 100
	next.Panel.Enabled = false
	g.ApplyConfig(next, nil)
	require.NoError(t, g.Inbox.Drain(g.Panel))

	assert.Equal(t, 500.0, g.Panel.CurrentOffset())
	assert.Equal(t, 100.0, g.Panel.VelocityThreshold())
	assert.False(t, g.Panel.Enabled())
	assert.Equal(t, 0.1, g.Config.Panel.AnchoredRatio)
}

func TestApplyConfig_LoadError(t *testing.T) {
	g := newTestGame(t)
	loadErr := errors.New("bad toml")

	g.ApplyConfig(nil, loadErr)
	err := g.Inbox.Drain(g.Panel)
	assert.ErrorIs(t, err, loadErr)
	assert.Equal(t, 750.0, g.Panel.CurrentOffset())
}

func TestLayout_QueuesHeightChange(t *testing.T) {
	g := newTestGame(t)

	w, h := g.Layout(400, 2000)
	assert.Equal(t, 400, w)
	assert.Equal(t, 2000, h)
	assert.Equal(t, 1, g.Inbox.Pending())

	// same size again queues nothing
	g.Layout(400, 2000)
	assert.Equal(t, 1, g.Inbox.Pending())

	require.NoError(t, g.Inbox.Drain(g.Panel))
	assert.Equal(t, 1500.0, g.Panel.CurrentOffset())
}
