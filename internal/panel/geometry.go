package panel

import (
	"fmt"
	"math"
)

// Default ratios of the screen height for the two intermediate states.
const (
	DefaultAnchoredRatio  = 0.25
	DefaultCollapsedRatio = 0.75
)

// Anchor pairs a resting offset with its state.
type Anchor struct {
	Offset float64
	State  State
}

// Direction of a drag or fling along the vertical axis.
type Direction int

const (
	DirectionNone Direction = iota
	// DirectionUp moves toward Expanded (decreasing offset).
	DirectionUp
	// DirectionDown moves toward Hidden (increasing offset).
	DirectionDown
)

// DirectionOf returns the direction of a signed velocity or delta.
func DirectionOf(v float64) Direction {
	switch {
	case v > 0:
		return DirectionDown
	case v < 0:
		return DirectionUp
	default:
		return DirectionNone
	}
}

// Geometry maps panel states to vertical offsets for one screen height.
// It is immutable; build a new one when the screen height or ratios change.
type Geometry struct {
	screenHeight   int
	anchoredRatio  float64
	collapsedRatio float64
	anchors        []Anchor
}

// NewGeometry validates the configuration and computes the anchors.
func NewGeometry(screenHeight int, anchoredRatio, collapsedRatio float64) (Geometry, error) {
	if screenHeight < 0 {
		return Geometry{}, fmt.Errorf("%w: screen height %d is negative", ErrInvalidConfiguration, screenHeight)
	}
	if !validRatio(anchoredRatio) {
		return Geometry{}, fmt.Errorf("%w: anchored ratio %v not in [0,1]", ErrInvalidConfiguration, anchoredRatio)
	}
	if !validRatio(collapsedRatio) {
		return Geometry{}, fmt.Errorf("%w: collapsed ratio %v not in [0,1]", ErrInvalidConfiguration, collapsedRatio)
	}
	if anchoredRatio > collapsedRatio {
		return Geometry{}, fmt.Errorf("%w: anchored ratio %v exceeds collapsed ratio %v",
			ErrInvalidConfiguration, anchoredRatio, collapsedRatio)
	}

	g := Geometry{
		screenHeight:   screenHeight,
		anchoredRatio:  anchoredRatio,
		collapsedRatio: collapsedRatio,
	}
	// Already sorted: the ratio checks above guarantee monotonic offsets and
	// the enum order breaks ties.
	g.anchors = make([]Anchor, 0, len(States))
	for _, s := range States {
		g.anchors = append(g.anchors, Anchor{Offset: g.OffsetOf(s), State: s})
	}
	return g, nil
}

// NewDefaultGeometry uses DefaultAnchoredRatio and DefaultCollapsedRatio.
func NewDefaultGeometry(screenHeight int) (Geometry, error) {
	return NewGeometry(screenHeight, DefaultAnchoredRatio, DefaultCollapsedRatio)
}

func validRatio(r float64) bool {
	return !math.IsNaN(r) && r >= 0 && r <= 1
}

// ScreenHeight returns the height the geometry was built for.
func (g Geometry) ScreenHeight() int { return g.screenHeight }

// Ratios returns the anchored and collapsed ratios.
func (g Geometry) Ratios() (anchored, collapsed float64) {
	return g.anchoredRatio, g.collapsedRatio
}

// OffsetOf returns the resting offset of s. Unknown states map to the
// nearest boundary so the function stays total.
func (g Geometry) OffsetOf(s State) float64 {
	h := float64(g.screenHeight)
	switch s {
	case Expanded:
		return 0
	case Anchored:
		return h * g.anchoredRatio
	case Collapsed:
		return h * g.collapsedRatio
	case Hidden:
		return h
	}
	if s < Expanded {
		return 0
	}
	return h
}

// Anchors returns the anchors in ascending offset order. Equal offsets keep
// enum order, so Anchored precedes Collapsed when their ratios match.
func (g Geometry) Anchors() []Anchor {
	out := make([]Anchor, len(g.anchors))
	copy(out, g.anchors)
	return out
}

// MinOffset is the offset of Expanded.
func (g Geometry) MinOffset() float64 { return 0 }

// MaxOffset is the offset of Hidden.
func (g Geometry) MaxOffset() float64 { return float64(g.screenHeight) }

// Clamp limits offset to [MinOffset, MaxOffset].
func (g Geometry) Clamp(offset float64) float64 {
	if math.IsNaN(offset) {
		return g.MinOffset()
	}
	return math.Max(g.MinOffset(), math.Min(g.MaxOffset(), offset))
}

// NearestState returns the state whose anchor is closest to offset. When two
// anchors are equally close the one with the smaller offset wins.
func (g Geometry) NearestState(offset float64) State {
	best := Expanded
	bestDist := math.Inf(1)
	for _, a := range g.anchors {
		if d := math.Abs(offset - a.Offset); d < bestDist {
			best, bestDist = a.State, d
		}
	}
	return best
}

// StateAt returns the first state anchored exactly at offset.
func (g Geometry) StateAt(offset float64) (State, bool) {
	for _, a := range g.anchors {
		if a.Offset == offset {
			return a.State, true
		}
	}
	return Expanded, false
}

// NextState returns the first anchor strictly beyond offset in dir. When no
// anchor lies in that direction the boundary state (Expanded or Hidden) is
// returned. DirectionNone falls back to NearestState.
func (g Geometry) NextState(offset float64, dir Direction) State {
	switch dir {
	case DirectionDown:
		for _, a := range g.anchors {
			if a.Offset > offset {
				return g.firstAt(a.Offset)
			}
		}
		return Hidden
	case DirectionUp:
		for i := len(g.anchors) - 1; i >= 0; i-- {
			if a := g.anchors[i]; a.Offset < offset {
				return g.firstAt(a.Offset)
			}
		}
		return Expanded
	}
	return g.NearestState(offset)
}

func (g Geometry) firstAt(offset float64) State {
	s, _ := g.StateAt(offset)
	return s
}

// Bracket returns the adjacent anchors surrounding offset and the fraction
// of the way from lower to upper. At the bottom both ends are the same anchor.
func (g Geometry) Bracket(offset float64) (lower, upper Anchor, fraction float64) {
	if len(g.anchors) == 0 {
		return Anchor{}, Anchor{}, 0
	}
	offset = g.Clamp(offset)
	lower = g.anchors[0]
	for _, a := range g.anchors {
		if a.Offset <= offset && a.Offset > lower.Offset {
			lower = Anchor{Offset: a.Offset, State: g.firstAt(a.Offset)}
		}
	}
	upper = lower
	for _, a := range g.anchors {
		if a.Offset > offset {
			upper = a
			break
		}
	}
	if span := upper.Offset - lower.Offset; span > 0 {
		fraction = (offset - lower.Offset) / span
	}
	return lower, upper, fraction
}

// Equal reports whether both geometries describe the same anchors.
func (g Geometry) Equal(o Geometry) bool {
	return g.screenHeight == o.screenHeight &&
		g.anchoredRatio == o.anchoredRatio &&
		g.collapsedRatio == o.collapsedRatio
}

func (g Geometry) String() string {
	return fmt.Sprintf("Geometry{h=%d expanded=0 anchored=%.1f collapsed=%.1f hidden=%d}",
		g.screenHeight, g.OffsetOf(Anchored), g.OffsetOf(Collapsed), g.screenHeight)
}
