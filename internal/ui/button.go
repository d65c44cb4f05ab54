package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type ButtonRect struct {
	X, Y, W, H float64
}

func (r ButtonRect) Contains(px, py int) bool {
	return PointInRect(px, py, r.X, r.Y, r.W, r.H)
}

type Button struct {
	Label   string
	Rect    ButtonRect
	OnClick func()
}

// ButtonColumn stacks buttons vertically from a top-left corner.
type ButtonColumn struct {
	Buttons []*Button
}

func NewButtonColumn(buttons ...*Button) *ButtonColumn {
	return &ButtonColumn{Buttons: buttons}
}

// Layout positions the buttons starting at (x, y).
func (bc *ButtonColumn) Layout(x, y float64) {
	for i, b := range bc.Buttons {
		b.Rect = ButtonRect{
			X: x,
			Y: y + float64(i)*(ButtonHeight+ButtonGap),
			W: ButtonWidth,
			H: ButtonHeight,
		}
	}
}

// HitTest returns the button under (px, py), or nil.
func (bc *ButtonColumn) HitTest(px, py int) *Button {
	for _, b := range bc.Buttons {
		if b.Rect.Contains(px, py) {
			return b
		}
	}
	return nil
}

// Click runs the handler of the button under (px, py). Returns true if a
// button was hit.
func (bc *ButtonColumn) Click(px, py int) bool {
	b := bc.HitTest(px, py)
	if b == nil {
		return false
	}
	if b.OnClick != nil {
		b.OnClick()
	}
	return true
}

// Draw renders the column; the button under the cursor is highlighted.
func (bc *ButtonColumn) Draw(dst *ebiten.Image, cursorX, cursorY int) {
	for _, b := range bc.Buttons {
		r := b.Rect
		fill := ColorPrimaryDark
		if r.Contains(cursorX, cursorY) {
			fill = ColorPrimary
		}
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill, false)
		vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, ColorBorder, false)
		DrawTextCentered(dst, b.Label, r.X+r.W/2, r.Y+r.H/2, FontSizeBody, ColorBorder)
	}
}
