package panel

import (
	"fmt"
	"strings"
)

// State is one of the four resting positions of the panel.
// Values are ordered by offset: Expanded sits at the top of the screen and
// Hidden at the bottom.
type State int

const (
	Expanded State = iota
	Anchored
	Collapsed
	Hidden
)

// States lists every valid State in offset order.
var States = []State{Expanded, Anchored, Collapsed, Hidden}

var stateNames = map[State]string{
	Expanded:  "expanded",
	Anchored:  "anchored",
	Collapsed: "collapsed",
	Hidden:    "hidden",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Valid reports whether s is one of the four defined states.
func (s State) Valid() bool {
	return s >= Expanded && s <= Hidden
}

// ParseState converts a state name (case-insensitive) to a State.
func ParseState(name string) (State, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for s, n := range stateNames {
		if n == key {
			return s, nil
		}
	}
	return Expanded, fmt.Errorf("%w: %q", ErrInvalidState, name)
}

// MarshalText implements encoding.TextMarshaler so states can live in config files.
func (s State) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidState, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	parsed, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
