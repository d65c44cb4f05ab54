package panel

import (
	"time"

	"github.com/google/uuid"
)

// AnimationRequest asks the host to animate the panel from one offset to
// another. The host reports progress back with the request ID.
type AnimationRequest struct {
	ID       uuid.UUID
	From     float64
	To       float64
	Target   State
	Duration time.Duration
}

// Interpolate returns the offset at progress p, clamped to [0,1].
func (r AnimationRequest) Interpolate(p float64) float64 {
	p = clampUnit(p)
	return r.From + (r.To-r.From)*p
}

// AnimationDriver owns the animation clock. It must deliver ticks then
// exactly one end for each request it accepts.
type AnimationDriver interface {
	RequestAnimation(req AnimationRequest)
}

// AnimationCanceler is implemented by drivers that can stop a run early.
// The controller ignores stale ticks either way.
type AnimationCanceler interface {
	CancelAnimation(id uuid.UUID)
}

// AnimationSink receives progress for a run. Controller implements it.
type AnimationSink interface {
	AnimationTick(id uuid.UUID, progress float64) bool
	AnimationEnd(id uuid.UUID) bool
}

// AnimationDriverFunc adapts a function to AnimationDriver.
type AnimationDriverFunc func(req AnimationRequest)

func (f AnimationDriverFunc) RequestAnimation(req AnimationRequest) { f(req) }

func clampUnit(p float64) float64 {
	switch {
	case p != p, p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}
