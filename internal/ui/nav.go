package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/slidingpanel/internal/panel"
)

// StepInput returns the direction the panel should step this frame: the up
// and down arrows with key repeat, or the mouse wheel.
func StepInput() panel.Direction {
	switch {
	case inputRepeating(ebiten.KeyArrowUp):
		return panel.DirectionUp
	case inputRepeating(ebiten.KeyArrowDown):
		return panel.DirectionDown
	}
	// wheel up pulls the panel up
	_, wy := ebiten.Wheel()
	switch {
	case wy > 0:
		return panel.DirectionUp
	case wy < 0:
		return panel.DirectionDown
	}
	return panel.DirectionNone
}

// UpdateInputState must be called at the end of each Update() to track key state.
func UpdateInputState() {
	for _, k := range repeatKeys {
		if ebiten.IsKeyPressed(k) {
			keyHoldFrames[k]++
		} else {
			delete(keyHoldFrames, k)
		}
	}
}

var (
	repeatKeys    = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyArrowDown}
	keyHoldFrames = make(map[ebiten.Key]int)
)

const (
	repeatDelay    = 18 // frames before repeat starts (~300ms at 60fps)
	repeatInterval = 8  // frames between repeats, about one snap animation
)

func inputRepeating(key ebiten.Key) bool {
	if !ebiten.IsKeyPressed(key) {
		return false
	}
	return shouldRepeat(keyHoldFrames[key])
}

// shouldRepeat reports whether a key held for frames previous frames fires.
func shouldRepeat(frames int) bool {
	if frames == 0 {
		return true // just pressed this frame
	}
	return frames >= repeatDelay && (frames-repeatDelay)%repeatInterval == 0
}
