package ui

import (
	"testing"
)

func TestButtonColumn_HitTest(t *testing.T) {
	clicked := ""
	bc := NewButtonColumn(
		&Button{Label: "A", OnClick: func() { clicked = "A" }},
		&Button{Label: "B", OnClick: func() { clicked = "B" }},
	)
	bc.Layout(10, 100)

	if !bc.Click(20, 100+ButtonHeight+ButtonGap+5) {
		t.Fatal("Click missed the second button")
	}
	if clicked != "B" {
		t.Errorf("clicked = %q, want B", clicked)
	}
	if bc.Click(5, 100) {
		t.Error("Click left of the column should miss")
	}
	if bc.HitTest(20, 100+ButtonHeight+1) != nil {
		t.Error("gap between buttons should not hit")
	}
}

func TestPanelView_Layout(t *testing.T) {
	v := PanelView{
		Background: NewButtonColumn(&Button{Label: "bg"}),
		Foreground: NewButtonColumn(&Button{Label: "fg"}),
	}
	v.Layout(300)

	bg := v.Background.Buttons[0].Rect
	fg := v.Foreground.Buttons[0].Rect
	if fg.Y-bg.Y != 300 {
		t.Errorf("foreground buttons offset by %v, want 300", fg.Y-bg.Y)
	}
	if !v.InForeground(300, 300) || v.InForeground(299, 300) {
		t.Error("InForeground boundary wrong")
	}
}

func TestShouldRepeat(t *testing.T) {
	tests := []struct {
		frames int
		want   bool
	}{
		{0, true},
		{1, false},
		{repeatDelay - 1, false},
		{repeatDelay, true},
		{repeatDelay + 1, false},
		{repeatDelay + repeatInterval, true},
	}
	for _, tt := range tests {
		if got := shouldRepeat(tt.frames); got != tt.want {
			t.Errorf("shouldRepeat(%d) = %v, want %v", tt.frames, got, tt.want)
		}
	}
}
