package types

import "errors"

var (
	// ErrFlightUnsupported is returned by a Flyer that cannot fly at all.
	ErrFlightUnsupported = errors.New("flight unsupported")

	// ErrUnknownBird is returned when a bird kind is not registered.
	ErrUnknownBird = errors.New("unknown bird")

	// ErrInvalidAmount is returned when an amount cannot be parsed.
	ErrInvalidAmount = errors.New("invalid amount")
)
