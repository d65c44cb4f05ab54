package panel

import (
	"math"
	"time"
)

// DragTarget receives recognized drags. *Controller implements it.
type DragTarget interface {
	DragStart() bool
	DragDelta(dy float64) float64
	DragEnd(velocity float64) (State, bool)
}

// DragRecognizer turns raw pointer positions into drag start, delta and end
// calls with a release velocity. A press only becomes a drag once it moves
// further than Slop, so taps on buttons inside the panel stay taps.
type DragRecognizer struct {
	Slop float64

	tracking bool
	dragging bool
	originY  float64
	lastY    float64
	velocity VelocityTracker
}

// Press starts tracking a pointer that went down on the draggable area.
func (r *DragRecognizer) Press(t time.Time, y float64) {
	r.tracking = true
	r.dragging = false
	r.originY = y
	r.lastY = y
	r.velocity.Reset()
	r.velocity.AddPosition(t, y)
}

// Move feeds the pointer position while it is held down.
func (r *DragRecognizer) Move(t time.Time, y float64, target DragTarget) {
	if !r.tracking {
		return
	}
	r.velocity.AddPosition(t, y)
	if !r.dragging {
		if math.Abs(y-r.originY) <= r.Slop {
			return
		}
		if !target.DragStart() {
			r.tracking = false
			return
		}
		r.dragging = true
	}
	if dy := y - r.lastY; dy != 0 {
		target.DragDelta(dy)
	}
	r.lastY = y
}

// Release ends tracking. It reports whether the press had become a drag.
func (r *DragRecognizer) Release(t time.Time, y float64, target DragTarget) bool {
	if !r.tracking {
		return false
	}
	r.Move(t, y, target)
	r.tracking = false
	if !r.dragging {
		return false
	}
	r.dragging = false
	target.DragEnd(r.velocity.Velocity())
	return true
}

// Cancel abandons the gesture, releasing an active drag with no velocity.
func (r *DragRecognizer) Cancel(target DragTarget) {
	if r.dragging {
		target.DragEnd(0)
	}
	r.tracking = false
	r.dragging = false
}

// Tracking reports whether a press is being followed.
func (r *DragRecognizer) Tracking() bool { return r.tracking }

// Dragging reports whether the press has become a drag.
func (r *DragRecognizer) Dragging() bool { return r.dragging }

// Velocity is the current pointer velocity estimate in px/s.
func (r *DragRecognizer) Velocity() float64 { return r.velocity.Velocity() }
