package panel

import "errors"

var (
	// ErrInvalidConfiguration is returned for a negative screen height or
	// ratios that are out of range or out of order.
	ErrInvalidConfiguration = errors.New("invalid panel configuration")

	// ErrInvalidState is returned when a value outside the four panel states
	// is used as a target.
	ErrInvalidState = errors.New("invalid panel state")
)
