package motion

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/slidingpanel/internal/panel"
)

const frame = time.Second / 60

func newController(t *testing.T, d *Driver, opts ...panel.Option) *panel.Controller {
	t.Helper()
	g, err := panel.NewDefaultGeometry(1000)
	require.NoError(t, err)
	c, err := panel.NewController(g, append([]panel.Option{panel.WithAnimationDriver(d)}, opts...)...)
	require.NoError(t, err)
	return c
}

func TestDriver_RunsToCompletion(t *testing.T) {
	d := NewDriver(Linear)
	c := newController(t, d, panel.WithAnimationDuration(100*time.Millisecond))

	require.NoError(t, c.AnimateTo(panel.Hidden))
	require.True(t, d.Active())

	prev := c.CurrentOffset()
	frames := 0
	for d.Active() {
		d.Advance(frame, c)
		frames++
		assert.GreaterOrEqual(t, c.CurrentOffset(), prev)
		prev = c.CurrentOffset()
		require.Less(t, frames, 100, "animation never finished")
	}

	assert.Equal(t, 7, frames, "100ms at 60 frames per second")
	s, ok := c.CurrentState()
	assert.True(t, ok)
	assert.Equal(t, panel.Hidden, s)
	assert.Equal(t, 1000.0, c.CurrentOffset())
}

func TestDriver_ZeroDurationEndsOnFirstFrame(t *testing.T) {
	d := NewDriver(nil)
	c := newController(t, d, panel.WithAnimationDuration(0))

	require.NoError(t, c.AnimateTo(panel.Expanded))
	d.Advance(frame, c)
	assert.False(t, d.Active())
	assert.Equal(t, 0.0, c.CurrentOffset())
}

func TestDriver_DragCancelsRun(t *testing.T) {
	d := NewDriver(Linear)
	c := newController(t, d, panel.WithAnimationDuration(time.Second))

	require.NoError(t, c.AnimateTo(panel.Expanded))
	d.Advance(500*time.Millisecond, c)
	assert.Equal(t, 375.0, c.CurrentOffset())

	c.DragStart()
	assert.False(t, d.Active())
	d.Advance(frame, c)
	assert.Equal(t, 375.0, c.CurrentOffset())
}

// recordingSink counts ticks and ends for one id.
type recordingSink struct {
	ticks []float64
	ends  int
}

func (r *recordingSink) AnimationTick(_ uuid.UUID, p float64) bool {
	r.ticks = append(r.ticks, p)
	return true
}

func (r *recordingSink) AnimationEnd(uuid.UUID) bool {
	r.ends++
	return true
}

func TestDriver_ExactlyOneEnd(t *testing.T) {
	d := NewDriver(Linear)
	d.RequestAnimation(panel.AnimationRequest{ID: uuid.New(), From: 0, To: 10, Duration: 3 * frame})

	var sink recordingSink
	for i := 0; i < 10; i++ {
		d.Advance(frame, &sink)
	}
	assert.Equal(t, 1, sink.ends)
	require.Len(t, sink.ticks, 3)
	assert.InDelta(t, 1.0, sink.ticks[2], 1e-9)
}

func TestDriver_CancelIgnoresOtherIDs(t *testing.T) {
	d := NewDriver(Linear)
	id := uuid.New()
	d.RequestAnimation(panel.AnimationRequest{ID: id, Duration: time.Second})

	d.CancelAnimation(uuid.New())
	assert.True(t, d.Active())
	d.CancelAnimation(id)
	assert.False(t, d.Active())
}
