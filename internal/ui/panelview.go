package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/slidingpanel/internal/panel"
)

// PanelStatus is what the view needs from the controller for one frame.
type PanelStatus struct {
	Offset  float64
	State   string
	Enabled bool
	Anchors []panel.Anchor
}

// PanelView draws a full-screen background panel and a foreground panel of
// the same size pushed down by the current offset. Each panel carries its own
// button column.
type PanelView struct {
	Background *ButtonColumn
	Foreground *ButtonColumn

	BackgroundTitle string
	ForegroundTitle string
}

// Layout places both button columns for the given foreground offset.
func (v *PanelView) Layout(offset float64) {
	top := float64(PanelPadding + PanelTitleH)
	if v.Background != nil {
		v.Background.Layout(PanelPadding, top)
	}
	if v.Foreground != nil {
		v.Foreground.Layout(PanelPadding, offset+top)
	}
}

// InForeground reports whether y lands on the foreground panel.
func (v *PanelView) InForeground(y int, offset float64) bool {
	return float64(y) >= offset
}

func (v *PanelView) Draw(dst *ebiten.Image, st PanelStatus, cursorX, cursorY int) {
	w := float64(dst.Bounds().Dx())
	h := float64(dst.Bounds().Dy())

	// Background panel
	dst.Fill(ColorBackground)
	DrawTextCentered(dst, v.BackgroundTitle, w/2, PanelPadding+PanelTitleH/2, FontSizeTitle, ColorAccent)
	if v.Background != nil {
		v.Background.Draw(dst, cursorX, cursorY)
	}
	v.drawAnchorTicks(dst, st.Anchors, w)

	// Foreground panel
	y := st.Offset
	if y >= h {
		return
	}
	vector.DrawFilledRect(dst, 0, float32(y), float32(w), float32(h-y), ColorSurface, false)
	vector.StrokeLine(dst, 0, float32(y), float32(w), float32(y), 1, ColorBorder, false)
	handleX := (w - HandleWidth) / 2
	vector.DrawFilledRect(dst, float32(handleX), float32(y+HandleTopMargin), HandleWidth, HandleHeight, ColorTextMuted, false)

	DrawTextCentered(dst, v.ForegroundTitle, w/2, y+PanelPadding+PanelTitleH/2, FontSizeTitle, ColorPrimary)
	if v.Foreground != nil {
		v.Foreground.Draw(dst, cursorX, cursorY)
	}

	label := fmt.Sprintf("%s  offset %.0f", st.State, st.Offset)
	if !st.Enabled {
		label += "  (drag off)"
	}
	lw, _ := MeasureText(label, FontSizeSmall)
	DrawText(dst, label, w-lw-PanelPadding, y+PanelPadding, FontSizeSmall, ColorTextSecondary)
}

// drawAnchorTicks marks each anchor on the right edge of the background.
func (v *PanelView) drawAnchorTicks(dst *ebiten.Image, anchors []panel.Anchor, w float64) {
	for _, a := range anchors {
		y := float32(a.Offset)
		vector.StrokeLine(dst, float32(w-AnchorTickW), y, float32(w), y, 2, ColorAccent, false)
		DrawText(dst, a.State.String(), w-AnchorTickW-80, a.Offset+2, FontSizeCaption, ColorTextSecondary)
	}
}
