package panel

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

const (
	velocityHorizon    = 100 * time.Millisecond
	velocityMaxSamples = 20
	// samples older than this relative to the newest one mean the pointer
	// stopped before release
	velocityStopGap = 40 * time.Millisecond
)

type velocitySample struct {
	at time.Time
	y  float64
}

// VelocityTracker estimates release velocity from pointer positions.
// Hosts that only report positions feed it during a drag and read Velocity
// at release.
type VelocityTracker struct {
	samples []velocitySample
}

// AddPosition records the pointer position y at time t.
func (v *VelocityTracker) AddPosition(t time.Time, y float64) {
	if n := len(v.samples); n > 0 && t.Before(v.samples[n-1].at) {
		v.samples = v.samples[:0]
	}
	v.samples = append(v.samples, velocitySample{at: t, y: y})
	if len(v.samples) > velocityMaxSamples {
		v.samples = v.samples[len(v.samples)-velocityMaxSamples:]
	}
}

// Velocity returns the estimated speed in px/s, positive downward. It fits a
// line through the samples within the last 100ms of the newest sample.
func (v *VelocityTracker) Velocity() float64 {
	n := len(v.samples)
	if n < 2 {
		return 0
	}
	newest := v.samples[n-1]
	if newest.at.Sub(v.samples[n-2].at) > velocityStopGap {
		return 0
	}
	var xs, ys []float64
	for _, s := range v.samples {
		age := newest.at.Sub(s.at)
		if age > velocityHorizon {
			continue
		}
		xs = append(xs, -age.Seconds())
		ys = append(ys, s.y)
	}
	if len(xs) < 2 || xs[0] == xs[len(xs)-1] {
		return 0
	}
	_, slope := stat.LinearRegression(xs, ys, nil, false)
	return slope
}

// Reset clears all samples.
func (v *VelocityTracker) Reset() {
	v.samples = v.samples[:0]
}
