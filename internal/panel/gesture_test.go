package panel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recordingTarget struct {
	starts   int
	deltas   []float64
	ends     []float64
	disabled bool
}

func (r *recordingTarget) DragStart() bool {
	if r.disabled {
		return false
	}
	r.starts++
	return true
}

func (r *recordingTarget) DragDelta(dy float64) float64 {
	r.deltas = append(r.deltas, dy)
	return dy
}

func (r *recordingTarget) DragEnd(v float64) (State, bool) {
	r.ends = append(r.ends, v)
	return Collapsed, true
}

func TestDragRecognizer_TapIsNotADrag(t *testing.T) {
	r := DragRecognizer{Slop: 8}
	var target recordingTarget
	now := time.Unix(0, 0)

	r.Press(now, 500)
	r.Move(now.Add(16*time.Millisecond), 503, &target)
	if r.Release(now.Add(32*time.Millisecond), 504, &target) {
		t.Error("Release() = true for a tap")
	}
	if target.starts != 0 || len(target.ends) != 0 {
		t.Errorf("tap reached the target: %+v", target)
	}
}

func TestDragRecognizer_Drag(t *testing.T) {
	r := DragRecognizer{Slop: 8}
	var target recordingTarget
	now := time.Unix(0, 0)

	r.Press(now, 500)
	y := 500.0
	for i := 1; i <= 5; i++ {
		y -= 20
		r.Move(now.Add(time.Duration(i)*10*time.Millisecond), y, &target)
	}
	if !r.Dragging() {
		t.Fatal("Dragging() = false after moving past slop")
	}
	if !r.Release(now.Add(60*time.Millisecond), y-20, &target) {
		t.Fatal("Release() = false after a drag")
	}

	if target.starts != 1 {
		t.Errorf("starts = %d, want 1", target.starts)
	}
	var total float64
	for _, d := range target.deltas {
		total += d
	}
	if total != -120 {
		t.Errorf("summed deltas = %v, want -120", total)
	}
	if len(target.ends) != 1 || target.ends[0] > -1900 || target.ends[0] < -2100 {
		t.Errorf("release velocity = %v, want about -2000", target.ends)
	}
	if r.Tracking() || r.Dragging() {
		t.Error("recognizer still active after release")
	}
}

func TestDragRecognizer_DisabledTarget(t *testing.T) {
	r := DragRecognizer{Slop: 4}
	target := recordingTarget{disabled: true}
	now := time.Unix(0, 0)

	r.Press(now, 100)
	r.Move(now.Add(10*time.Millisecond), 150, &target)
	if r.Tracking() {
		t.Error("recognizer should stop tracking when the target refuses the drag")
	}
	if len(target.deltas) != 0 {
		t.Errorf("deltas delivered to disabled target: %v", target.deltas)
	}
}

func TestDragRecognizer_Cancel(t *testing.T) {
	r := DragRecognizer{Slop: 0}
	var target recordingTarget
	now := time.Unix(0, 0)

	r.Press(now, 100)
	r.Move(now.Add(10*time.Millisecond), 140, &target)
	r.Cancel(&target)
	if len(target.ends) != 1 || target.ends[0] != 0 {
		t.Errorf("Cancel ends = %v, want [0]", target.ends)
	}
}

func TestDragRecognizer_DrivesController(t *testing.T) {
	c, d := newTestController(t, 1000)
	r := DragRecognizer{Slop: 8}
	now := time.Unix(0, 0)

	// quick upward swipe from the collapsed anchor
	r.Press(now, 800)
	y := 800.0
	for i := 1; i <= 6; i++ {
		y -= 15
		r.Move(now.Add(time.Duration(i)*10*time.Millisecond), y, c)
	}
	r.Release(now.Add(70*time.Millisecond), y, c)

	req := d.last(t)
	assert.Equal(t, Anchored, req.Target)
	assert.Equal(t, 660.0, req.From)
}
