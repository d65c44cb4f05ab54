package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ErrorDisplay shows the last rejected configuration as a banner with a
// dismiss button. Call Draw each frame and HandleClick in Update.
type ErrorDisplay struct {
	Text string

	dismissRect ButtonRect
}

// Show replaces the banner text.
func (ed *ErrorDisplay) Show(text string) {
	ed.Text = text
}

// Draw renders the banner along the bottom edge. Returns the height used.
func (ed *ErrorDisplay) Draw(dst *ebiten.Image) float64 {
	if ed.Text == "" {
		ed.dismissRect = ButtonRect{}
		return 0
	}

	w := float64(dst.Bounds().Dx())
	h := float64(dst.Bounds().Dy())
	bannerH := float64(FontSizeSmall + 20)
	y := h - bannerH

	vector.DrawFilledRect(dst, 0, float32(y), float32(w), float32(bannerH), ColorOverlay, false)
	DrawText(dst, ed.Text, PanelPadding, y+8, FontSizeSmall, ColorError)

	btnW := 24.0
	ed.dismissRect = ButtonRect{X: w - btnW - PanelPadding/2, Y: y + (bannerH-btnW)/2, W: btnW, H: btnW}
	r := ed.dismissRect
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, ColorTextMuted, false)
	DrawTextCentered(dst, "x", r.X+r.W/2, r.Y+r.H/2, FontSizeSmall, ColorTextSecondary)

	return bannerH
}

// HandleClick dismisses the banner when its button is hit. Returns true if
// the click was consumed.
func (ed *ErrorDisplay) HandleClick(mx, my int) bool {
	if ed.Text == "" {
		return false
	}
	if ed.dismissRect.Contains(mx, my) {
		ed.Text = ""
		return true
	}
	return false
}
