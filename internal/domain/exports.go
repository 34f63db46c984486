package domain

import (
	interfaces "solid/internal/domain/interfaces"
	types "solid/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Amount   = types.Amount
	BirdKind = types.BirdKind
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Worker    = interfaces.Worker
	Eater     = interfaces.Eater
	WorkEater = interfaces.WorkEater
	Flyer     = interfaces.Flyer
	Discount  = interfaces.Discount
)

const (
	BirdKindBird    = types.BirdKindBird
	BirdKindEagle   = types.BirdKindEagle
	BirdKindPenguin = types.BirdKindPenguin
)

var (
	ErrFlightUnsupported = types.ErrFlightUnsupported
	ErrUnknownBird       = types.ErrUnknownBird
	ErrInvalidAmount     = types.ErrInvalidAmount

	NewAmount     = types.NewAmount
	ParseAmount   = types.ParseAmount
	ParseBirdKind = types.ParseBirdKind
)
