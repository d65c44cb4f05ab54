package app

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/slidingpanel/internal/panel"
	"github.com/depeter/slidingpanel/internal/ui"
)

// keyMap maps config key names to ebiten keys.
var keyMap = map[string]ebiten.Key{
	"space":  ebiten.KeySpace,
	"enter":  ebiten.KeyEnter,
	"return": ebiten.KeyEnter,
	"tab":    ebiten.KeyTab,
	"up":     ebiten.KeyArrowUp,
	"down":   ebiten.KeyArrowDown,
	"home":   ebiten.KeyHome,
	"end":    ebiten.KeyEnd,
	"pageup": ebiten.KeyPageUp,
	"pagedn": ebiten.KeyPageDown,
	"a":      ebiten.KeyA,
	"c":      ebiten.KeyC,
	"d":      ebiten.KeyD,
	"e":      ebiten.KeyE,
	"f":      ebiten.KeyF,
	"h":      ebiten.KeyH,
	"0":      ebiten.KeyDigit0,
	"1":      ebiten.KeyDigit1,
	"2":      ebiten.KeyDigit2,
	"3":      ebiten.KeyDigit3,
	"4":      ebiten.KeyDigit4,
	"5":      ebiten.KeyDigit5,
	"6":      ebiten.KeyDigit6,
	"7":      ebiten.KeyDigit7,
	"8":      ebiten.KeyDigit8,
	"9":      ebiten.KeyDigit9,
}

// parseKey converts a config key name to an ebiten.Key.
func parseKey(name string) (ebiten.Key, bool) {
	k, ok := keyMap[strings.ToLower(name)]
	return k, ok
}

// keyJustPressed checks if the key named by the config string was just pressed.
func keyJustPressed(name string) bool {
	if k, ok := parseKey(name); ok {
		return inpututil.IsKeyJustPressed(k)
	}
	return false
}

// handleKeys applies keyboard shortcuts: one key per panel state, a drag
// toggle and fullscreen.
func (g *Game) handleKeys() {
	kb := g.Config.Keybinds
	for _, b := range kb.StateKeys() {
		if keyJustPressed(b.Key) {
			g.animateTo(b.State)
			return
		}
	}
	if dir := ui.StepInput(); dir != panel.DirectionNone {
		g.Panel.Step(dir)
	}
	if keyJustPressed(kb.ToggleDrag) {
		g.toggleDrag()
	}
	if keyJustPressed(kb.Fullscreen) && !ui.IsModifierPressed() {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
}

// handlePointer routes the primary pointer. Presses on a button click it;
// presses anywhere else on the foreground panel may become a drag.
func (g *Game) handlePointer() {
	p := ui.PollPointer()
	now := g.now()
	y := float64(p.Y)

	if p.JustPressed {
		switch {
		case g.errors.HandleClick(p.X, p.Y):
		case g.view.InForeground(p.Y, g.Panel.CurrentOffset()):
			if !g.view.Foreground.Click(p.X, p.Y) {
				g.recognizer.Press(now, y)
			}
		default:
			g.view.Background.Click(p.X, p.Y)
		}
	}

	switch {
	case p.JustReleased:
		g.recognizer.Release(now, y, g.Panel)
	case p.Pressed:
		g.recognizer.Move(now, y, g.Panel)
	}
}
