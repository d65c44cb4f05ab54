package panel

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultVelocityThreshold is the release speed in px/s above which a
	// drag end commits to the next anchor in its direction.
	DefaultVelocityThreshold = 400.0
	// DefaultAnimationDuration is the length of a snap animation.
	DefaultAnimationDuration = 300 * time.Millisecond
	// DefaultInitialState matches where the panel rests on first mount.
	DefaultInitialState = Collapsed
)

// Phase is the controller's interaction state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseAnimating
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseAnimating:
		return "animating"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Progress describes where the panel sits between two adjacent anchors.
type Progress struct {
	From     State
	To       State
	Fraction float64
}

// Option configures a Controller.
type Option func(*Controller)

// WithInitialState sets the state the panel rests at when created.
func WithInitialState(s State) Option {
	return func(c *Controller) { c.settled = s }
}

// WithVelocityThreshold sets the fling threshold in px/s.
func WithVelocityThreshold(v float64) Option {
	return func(c *Controller) { c.velocityThreshold = v }
}

// WithAnimationDuration sets the duration passed with each animation request.
func WithAnimationDuration(d time.Duration) Option {
	return func(c *Controller) { c.duration = d }
}

// WithAnimationDriver sets the host animation driver. Without one every
// transition settles immediately.
func WithAnimationDriver(d AnimationDriver) Option {
	return func(c *Controller) { c.driver = d }
}

// WithEnabled sets whether drag gestures are honored.
func WithEnabled(enabled bool) Option {
	return func(c *Controller) { c.enabled = enabled }
}

// WithStateListener registers fn to be called whenever the panel comes to
// rest at a state.
func WithStateListener(fn func(State)) Option {
	return func(c *Controller) { c.onSettle = fn }
}

// WithLogger enables transition logging.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// Controller owns the live offset of one panel. It is not safe for
// concurrent use: all calls must come from the goroutine that owns the panel,
// or be funneled through an Inbox.
type Controller struct {
	geometry Geometry
	offset   float64
	phase    Phase
	settled  State
	run      *AnimationRequest
	enabled  bool

	velocityThreshold float64
	duration          time.Duration
	driver            AnimationDriver
	onSettle          func(State)
	logger            *log.Logger
}

// NewController creates a controller resting at the initial state's anchor.
func NewController(g Geometry, opts ...Option) (*Controller, error) {
	c := &Controller{
		geometry:          g,
		settled:           DefaultInitialState,
		enabled:           true,
		velocityThreshold: DefaultVelocityThreshold,
		duration:          DefaultAnimationDuration,
	}
	for _, opt := range opts {
		opt(c)
	}
	if !c.settled.Valid() {
		return nil, fmt.Errorf("initial state: %w: %d", ErrInvalidState, int(c.settled))
	}
	if math.IsNaN(c.velocityThreshold) || c.velocityThreshold < 0 {
		return nil, fmt.Errorf("%w: velocity threshold %v is negative", ErrInvalidConfiguration, c.velocityThreshold)
	}
	if c.duration < 0 {
		return nil, fmt.Errorf("%w: animation duration %v is negative", ErrInvalidConfiguration, c.duration)
	}
	c.offset = g.OffsetOf(c.settled)
	return c, nil
}

// Geometry returns the active geometry.
func (c *Controller) Geometry() Geometry { return c.geometry }

// Phase returns the interaction state.
func (c *Controller) Phase() Phase { return c.phase }

// CurrentOffset is the offset the foreground panel should be drawn at.
func (c *Controller) CurrentOffset() float64 { return c.offset }

// CurrentState returns the resting state. ok is false while dragging or
// animating.
func (c *Controller) CurrentState() (s State, ok bool) {
	if c.phase != PhaseIdle {
		return 0, false
	}
	return c.settled, true
}

// TargetState is the state the panel is heading to: the resting state when
// idle, the animation target when animating, and the nearest anchor while
// dragging.
func (c *Controller) TargetState() State {
	switch c.phase {
	case PhaseAnimating:
		return c.run.Target
	case PhaseDragging:
		return c.geometry.NearestState(c.offset)
	}
	return c.settled
}

// Progress reports the position between the surrounding anchors.
func (c *Controller) Progress() Progress {
	lower, upper, f := c.geometry.Bracket(c.offset)
	return Progress{From: lower.State, To: upper.State, Fraction: f}
}

// Enabled reports whether drag gestures are honored.
func (c *Controller) Enabled() bool { return c.enabled }

// IsAnimating reports whether an animation run is in flight.
func (c *Controller) IsAnimating() bool { return c.phase == PhaseAnimating }

// VelocityThreshold returns the fling threshold in px/s.
func (c *Controller) VelocityThreshold() float64 { return c.velocityThreshold }

// SetVelocityThreshold changes the fling threshold for later releases.
func (c *Controller) SetVelocityThreshold(v float64) error {
	if math.IsNaN(v) || v < 0 {
		return fmt.Errorf("%w: velocity threshold %v is negative", ErrInvalidConfiguration, v)
	}
	c.velocityThreshold = v
	return nil
}

// SetAnimationDuration changes the duration of later animation requests.
func (c *Controller) SetAnimationDuration(d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("%w: animation duration %v is negative", ErrInvalidConfiguration, d)
	}
	c.duration = d
	return nil
}

// Configure rebuilds the geometry, for example after a rotation. On error
// the previous geometry is kept.
func (c *Controller) Configure(screenHeight int, anchoredRatio, collapsedRatio float64) error {
	g, err := NewGeometry(screenHeight, anchoredRatio, collapsedRatio)
	if err != nil {
		c.logf("configure rejected: %v", err)
		return err
	}
	c.SetGeometry(g)
	return nil
}

// SetGeometry swaps in an already validated geometry.
func (c *Controller) SetGeometry(g Geometry) {
	c.geometry = g
	switch c.phase {
	case PhaseIdle:
		c.offset = g.OffsetOf(c.settled)
	case PhaseDragging:
		c.offset = g.Clamp(c.offset)
	case PhaseAnimating:
		c.offset = g.Clamp(c.offset)
		c.startAnimation(c.run.Target)
	}
}

// SetEnabled toggles drag handling. Disabling mid-drag releases the drag
// with zero velocity.
func (c *Controller) SetEnabled(enabled bool) {
	if c.enabled == enabled {
		return
	}
	c.enabled = enabled
	if !enabled && c.phase == PhaseDragging {
		c.startAnimation(c.geometry.NearestState(c.offset))
	}
}

// DragStart begins a drag. An in-flight animation is cancelled and the drag
// continues from its current interpolated offset.
func (c *Controller) DragStart() bool {
	if !c.enabled || c.phase == PhaseDragging {
		return false
	}
	c.cancelRun()
	c.phase = PhaseDragging
	return true
}

// DragDelta moves the panel by dy, clamped to the screen. It returns the
// distance actually moved.
func (c *Controller) DragDelta(dy float64) float64 {
	if !c.enabled || c.phase != PhaseDragging {
		return 0
	}
	before := c.offset
	c.offset = c.geometry.Clamp(c.offset + dy)
	return c.offset - before
}

// DragEnd releases the drag and starts the snap animation. A release faster
// than the velocity threshold commits to the next anchor in the direction of
// motion; a slower one snaps to the nearest anchor.
func (c *Controller) DragEnd(velocity float64) (State, bool) {
	if !c.enabled || c.phase != PhaseDragging {
		return 0, false
	}
	target := c.resolve(velocity)
	c.startAnimation(target)
	return target, true
}

func (c *Controller) resolve(velocity float64) State {
	if math.Abs(velocity) > c.velocityThreshold {
		return c.geometry.NextState(c.offset, DirectionOf(velocity))
	}
	return c.geometry.NearestState(c.offset)
}

// AnimateTo animates to s regardless of the enabled flag. Asking for the
// state the panel already rests at, or is already animating to, does nothing.
func (c *Controller) AnimateTo(s State) error {
	if !s.Valid() {
		return fmt.Errorf("animate to: %w: %d", ErrInvalidState, int(s))
	}
	switch {
	case c.phase == PhaseIdle && c.settled == s:
		return nil
	case c.phase == PhaseAnimating && c.run.Target == s:
		return nil
	}
	c.startAnimation(s)
	return nil
}

// Step animates to the next anchor above or below the state the panel rests
// at or is heading to. At the last anchor in that direction it does nothing.
func (c *Controller) Step(dir Direction) State {
	target := c.TargetState()
	if dir == DirectionNone {
		return target
	}
	next := c.geometry.NextState(c.geometry.OffsetOf(target), dir)
	if next != target {
		c.startAnimation(next)
	}
	return next
}

// SnapTo moves to s immediately without animating.
func (c *Controller) SnapTo(s State) error {
	if !s.Valid() {
		return fmt.Errorf("snap to: %w: %d", ErrInvalidState, int(s))
	}
	c.cancelRun()
	c.settle(s)
	return nil
}

// AnimationTick applies progress for run id. Ticks for any run other than
// the active one are ignored.
func (c *Controller) AnimationTick(id uuid.UUID, progress float64) bool {
	if !c.activeRun(id) {
		return false
	}
	c.offset = c.geometry.Clamp(c.run.Interpolate(progress))
	return true
}

// AnimationEnd completes run id, placing the panel exactly on its target.
func (c *Controller) AnimationEnd(id uuid.UUID) bool {
	if !c.activeRun(id) {
		return false
	}
	c.settle(c.run.Target)
	return true
}

func (c *Controller) activeRun(id uuid.UUID) bool {
	return c.phase == PhaseAnimating && c.run != nil && c.run.ID == id
}

func (c *Controller) startAnimation(target State) {
	c.cancelRun()
	to := c.geometry.OffsetOf(target)
	if c.offset == to || c.driver == nil {
		c.settle(target)
		return
	}
	req := AnimationRequest{
		ID:       uuid.New(),
		From:     c.offset,
		To:       to,
		Target:   target,
		Duration: c.duration,
	}
	c.run = &req
	c.phase = PhaseAnimating
	c.logf("animating %.1f -> %.1f (%s) run %s", req.From, req.To, target, req.ID)
	c.driver.RequestAnimation(req)
}

func (c *Controller) cancelRun() {
	if c.run == nil {
		return
	}
	id := c.run.ID
	c.run = nil
	if c.phase == PhaseAnimating {
		c.phase = PhaseIdle
	}
	if canceler, ok := c.driver.(AnimationCanceler); ok {
		canceler.CancelAnimation(id)
	}
}

func (c *Controller) settle(s State) {
	c.run = nil
	c.phase = PhaseIdle
	c.settled = s
	c.offset = c.geometry.OffsetOf(s)
	c.logf("settled at %s (%.1f)", s, c.offset)
	if c.onSettle != nil {
		c.onSettle(s)
	}
}

func (c *Controller) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}
