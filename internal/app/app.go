package app

import (
	"solid/internal/services/discount"
	"solid/internal/services/segregation"
)

// App runs the demos against a Wire.
type App struct {
	wire *Wire
	cfg  Config
}

// New returns an App writing demo output to cfg.Out.
func New(cfg Config, w *Wire) *App {
	return &App{wire: w, cfg: cfg}
}

// Validate checks the settings of every demo. Single demos check only
// their own settings when they run.
func (a *App) Validate() error {
	if _, err := parseAmount(a.cfg.Amount); err != nil {
		return err
	}
	_, err := a.wire.flyer(a.cfg.Bird)
	return err
}

// InterfaceSegregation makes the robot do its one job.
func (a *App) InterfaceSegregation() error {
	a.wire.Logger.Debug("demo.start", "demo", "interface-segregation")
	segregation.Run(a.wire.Robot)
	if err := a.wire.Robot.Err(); err != nil {
		return err
	}
	a.wire.Logger.Debug("demo.done", "demo", "interface-segregation")
	return nil
}

// LiskovSubstitution trains the configured bird.
func (a *App) LiskovSubstitution() error {
	bird, err := a.wire.flyer(a.cfg.Bird)
	if err != nil {
		return err
	}
	a.wire.Logger.Debug("demo.start", "demo", "liskov-substitution", "bird", a.cfg.Bird)
	if err := a.wire.Trainer.Train(bird); err != nil {
		return err
	}
	a.wire.Logger.Debug("demo.done", "demo", "liskov-substitution")
	return nil
}

// OpenClosed applies every catalogued discount to the configured amount.
func (a *App) OpenClosed() error {
	amount, err := parseAmount(a.cfg.Amount)
	if err != nil {
		return err
	}
	a.wire.Logger.Debug("demo.start", "demo", "open-closed",
		"amount", amount.String(), "strategies", len(a.wire.Discounts))
	if err := discount.Apply(a.cfg.Out, amount, a.wire.Discounts...); err != nil {
		return err
	}
	a.wire.Logger.Debug("demo.done", "demo", "open-closed")
	return nil
}
