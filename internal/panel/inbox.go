package panel

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Event is one host event applied to a Controller.
type Event interface {
	apply(c *Controller) error
}

// EventFunc lets hosts run their own code on the goroutine that owns the
// controller, for example to update host state alongside a reconfigure.
type EventFunc func(c *Controller) error

func (f EventFunc) apply(c *Controller) error { return f(c) }

// ConfigureEvent rebuilds the controller geometry.
func ConfigureEvent(screenHeight int, anchoredRatio, collapsedRatio float64) Event {
	return EventFunc(func(c *Controller) error {
		return c.Configure(screenHeight, anchoredRatio, collapsedRatio)
	})
}

// RatiosEvent rebuilds the geometry with new ratios at the current height.
func RatiosEvent(anchoredRatio, collapsedRatio float64) Event {
	return EventFunc(func(c *Controller) error {
		return c.Configure(c.Geometry().ScreenHeight(), anchoredRatio, collapsedRatio)
	})
}

// HeightEvent rebuilds the geometry for a new screen height, keeping the
// current ratios. Hosts post it on layout or orientation changes.
func HeightEvent(screenHeight int) Event {
	return EventFunc(func(c *Controller) error {
		a, cr := c.Geometry().Ratios()
		return c.Configure(screenHeight, a, cr)
	})
}

// DragStartEvent begins a drag.
func DragStartEvent() Event {
	return EventFunc(func(c *Controller) error {
		c.DragStart()
		return nil
	})
}

// DragDeltaEvent moves an in-progress drag.
func DragDeltaEvent(dy float64) Event {
	return EventFunc(func(c *Controller) error {
		c.DragDelta(dy)
		return nil
	})
}

// DragEndEvent releases a drag with the given velocity.
func DragEndEvent(velocity float64) Event {
	return EventFunc(func(c *Controller) error {
		c.DragEnd(velocity)
		return nil
	})
}

// AnimateToEvent requests a programmatic transition.
func AnimateToEvent(s State) Event {
	return EventFunc(func(c *Controller) error {
		return c.AnimateTo(s)
	})
}

// SetEnabledEvent toggles drag handling.
func SetEnabledEvent(enabled bool) Event {
	return EventFunc(func(c *Controller) error {
		c.SetEnabled(enabled)
		return nil
	})
}

// TickEvent delivers animation progress.
func TickEvent(id uuid.UUID, progress float64) Event {
	return EventFunc(func(c *Controller) error {
		c.AnimationTick(id, progress)
		return nil
	})
}

// EndEvent completes an animation run.
func EndEvent(id uuid.UUID) Event {
	return EventFunc(func(c *Controller) error {
		c.AnimationEnd(id)
		return nil
	})
}

// ErrInboxFull is returned by TryPost when the queue has no room.
var ErrInboxFull = errors.New("panel inbox full")

// Inbox serializes events from several producers so that only the owning
// goroutine touches the Controller.
type Inbox struct {
	events chan Event
}

// NewInbox creates an inbox holding up to size pending events.
func NewInbox(size int) *Inbox {
	if size < 1 {
		size = 1
	}
	return &Inbox{events: make(chan Event, size)}
}

// Post queues ev, blocking until there is room or ctx is done.
func (in *Inbox) Post(ctx context.Context, ev Event) error {
	select {
	case in.events <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryPost queues ev without blocking.
func (in *Inbox) TryPost(ev Event) error {
	select {
	case in.events <- ev:
		return nil
	default:
		return ErrInboxFull
	}
}

// Pending returns the number of queued events.
func (in *Inbox) Pending() int { return len(in.events) }

// Drain applies the events queued at the time of the call to c in arrival
// order. Errors from individual events are joined; one failing event does not
// stop the rest.
func (in *Inbox) Drain(c *Controller) error {
	var errs []error
	for n := len(in.events); n > 0; n-- {
		ev := <-in.events
		if err := ev.apply(c); err != nil {
			errs = append(errs, fmt.Errorf("inbox: %w", err))
		}
	}
	return errors.Join(errs...)
}
