package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState is the primary pointer for one frame: the first active touch
// on touch screens, the left mouse button otherwise.
type PointerState struct {
	X, Y         int
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

var (
	activeTouch   ebiten.TouchID
	touchTracking bool
)

// PollPointer reads the primary pointer. Call once per Update.
func PollPointer() PointerState {
	if p, ok := pollTouch(); ok {
		return p
	}
	x, y := ebiten.CursorPosition()
	return PointerState{
		X:            x,
		Y:            y,
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
}

func pollTouch() (PointerState, bool) {
	if !touchTracking {
		ids := inpututil.AppendJustPressedTouchIDs(nil)
		if len(ids) == 0 {
			return PointerState{}, false
		}
		activeTouch = ids[0]
		touchTracking = true
		x, y := ebiten.TouchPosition(activeTouch)
		return PointerState{X: x, Y: y, Pressed: true, JustPressed: true}, true
	}
	if inpututil.IsTouchJustReleased(activeTouch) {
		touchTracking = false
		x, y := inpututil.TouchPositionInPreviousTick(activeTouch)
		return PointerState{X: x, Y: y, JustReleased: true}, true
	}
	x, y := ebiten.TouchPosition(activeTouch)
	return PointerState{X: x, Y: y, Pressed: true}, true
}

// IsModifierPressed reports whether any modifier key (Alt, Ctrl, Shift, Meta) is held.
func IsModifierPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyAlt) ||
		ebiten.IsKeyPressed(ebiten.KeyControl) ||
		ebiten.IsKeyPressed(ebiten.KeyShift) ||
		ebiten.IsKeyPressed(ebiten.KeyMeta)
}

// PointInRect returns true if point (px, py) is inside the rectangle (rx, ry, rw, rh).
func PointInRect(px, py int, rx, ry, rw, rh float64) bool {
	return float64(px) >= rx && float64(px) <= rx+rw &&
		float64(py) >= ry && float64(py) <= ry+rh
}
