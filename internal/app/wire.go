package app

import (
	"fmt"
	"log/slog"

	"solid/internal/domain"
	"solid/internal/logging"
	"solid/internal/services/discount"
	"solid/internal/services/segregation"
	"solid/internal/services/substitution"
)

// Wire bundles the logger, actors and strategies used by the demos.
// Demo-specific settings such as the bird or the amount are resolved by
// the demo that uses them, not here.
type Wire struct {
	Logger    *slog.Logger
	Robot     *segregation.Robot
	Trainer   *substitution.Trainer
	Aviary    *substitution.Aviary
	Discounts []domain.Discount
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	logger, err := logging.New(cfg.Err, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	return &Wire{
		Logger:    logger,
		Robot:     segregation.NewRobot(cfg.Out),
		Trainer:   substitution.NewTrainer(cfg.Out, logger),
		Aviary:    substitution.NewAviary(cfg.Out),
		Discounts: discount.Catalogue(),
	}, nil
}

// parseAmount resolves the configured discount input.
func parseAmount(s string) (domain.Amount, error) {
	amount, err := domain.ParseAmount(s)
	if err != nil {
		return domain.Amount{}, fmt.Errorf("%w %q: %v", domain.ErrInvalidAmount, s, err)
	}
	return amount, nil
}

// flyer resolves the configured bird through the aviary.
func (w *Wire) flyer(name string) (domain.Flyer, error) {
	kind, ok := domain.ParseBirdKind(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownBird, name)
	}
	return w.Aviary.Get(kind)
}
