package panel

import (
	"errors"
	"testing"
)

func TestParseState(t *testing.T) {
	tests := []struct {
		input   string
		want    State
		wantErr bool
	}{
		{"expanded", Expanded, false},
		{"Anchored", Anchored, false},
		{" COLLAPSED ", Collapsed, false},
		{"hidden", Hidden, false},
		{"peek", Expanded, true},
		{"", Expanded, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseState(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidState) {
					t.Errorf("ParseState(%q) error = %v, want ErrInvalidState", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseState(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseState(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestState_Valid(t *testing.T) {
	for _, s := range States {
		if !s.Valid() {
			t.Errorf("%s.Valid() = false", s)
		}
	}
	if State(-1).Valid() || State(4).Valid() {
		t.Error("out of range states should not be valid")
	}
	if got := State(7).String(); got != "State(7)" {
		t.Errorf("State(7).String() = %q", got)
	}
}

func TestState_TextRoundTrip(t *testing.T) {
	var s State
	if err := s.UnmarshalText([]byte("anchored")); err != nil {
		t.Fatal(err)
	}
	if s != Anchored {
		t.Errorf("got %s, want anchored", s)
	}
	if _, err := State(9).MarshalText(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("MarshalText on invalid state error = %v", err)
	}
}
