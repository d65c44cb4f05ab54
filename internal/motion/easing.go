package motion

import (
	"math"
	"strings"
)

// Easing maps linear time progress in [0,1] to animation progress.
type Easing func(t float64) float64

// Linear progresses at constant speed.
func Linear(t float64) float64 { return t }

// EaseOutCubic decelerates toward the end.
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// FastOutSlowIn is the cubic-bezier(0.4, 0, 0.2, 1) curve used by material
// motion for elements moving between two on-screen positions.
var FastOutSlowIn = CubicBezier(0.4, 0, 0.2, 1)

// CubicBezier returns a CSS-style timing curve through (0,0), (x1,y1),
// (x2,y2), (1,1).
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	bez := func(t, p1, p2 float64) float64 {
		u := 1 - t
		return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
	}
	slope := func(t, p1, p2 float64) float64 {
		u := 1 - t
		return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
	}
	return func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		if x >= 1 {
			return 1
		}
		// Newton first, bisection when the slope flattens out.
		t := x
		for i := 0; i < 8; i++ {
			d := slope(t, x1, x2)
			if math.Abs(d) < 1e-6 {
				break
			}
			err := bez(t, x1, x2) - x
			if math.Abs(err) < 1e-7 {
				return bez(t, y1, y2)
			}
			t -= err / d
		}
		lo, hi := 0.0, 1.0
		t = x
		for i := 0; i < 40; i++ {
			v := bez(t, x1, x2)
			if math.Abs(v-x) < 1e-7 {
				break
			}
			if v < x {
				lo = t
			} else {
				hi = t
			}
			t = (lo + hi) / 2
		}
		return bez(t, y1, y2)
	}
}

var easings = map[string]Easing{
	"linear":           Linear,
	"ease_out_cubic":   EaseOutCubic,
	"fast_out_slow_in": FastOutSlowIn,
}

// EasingByName looks up a curve by its config name.
func EasingByName(name string) (Easing, bool) {
	e, ok := easings[strings.ToLower(strings.TrimSpace(name))]
	return e, ok
}
