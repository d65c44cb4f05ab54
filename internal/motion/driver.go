package motion

import (
	"time"

	"github.com/google/uuid"

	"github.com/depeter/slidingpanel/internal/panel"
)

type run struct {
	req     panel.AnimationRequest
	elapsed time.Duration
}

// Driver is a frame-clocked panel.AnimationDriver. The host calls Advance
// once per frame; each call emits one tick and, when the run's duration has
// elapsed, the single end event.
type Driver struct {
	easing Easing
	run    *run
}

// NewDriver creates a driver using easing, or FastOutSlowIn when nil.
func NewDriver(easing Easing) *Driver {
	if easing == nil {
		easing = FastOutSlowIn
	}
	return &Driver{easing: easing}
}

// SetEasing changes the curve for subsequent frames.
func (d *Driver) SetEasing(e Easing) {
	if e != nil {
		d.easing = e
	}
}

// RequestAnimation starts req, replacing any active run.
func (d *Driver) RequestAnimation(req panel.AnimationRequest) {
	d.run = &run{req: req}
}

// CancelAnimation drops the run if it is still active.
func (d *Driver) CancelAnimation(id uuid.UUID) {
	if d.run != nil && d.run.req.ID == id {
		d.run = nil
	}
}

// Active reports whether a run is in flight.
func (d *Driver) Active() bool { return d.run != nil }

// Advance moves the active run forward by dt and reports to sink.
func (d *Driver) Advance(dt time.Duration, sink panel.AnimationSink) {
	r := d.run
	if r == nil {
		return
	}
	r.elapsed += dt
	t := 1.0
	if r.req.Duration > 0 {
		t = min(float64(r.elapsed)/float64(r.req.Duration), 1)
	}
	sink.AnimationTick(r.req.ID, d.easing(t))
	if t < 1 {
		return
	}
	// Clear before End: settling may start a new run on this driver.
	if d.run == r {
		d.run = nil
	}
	sink.AnimationEnd(r.req.ID)
}
