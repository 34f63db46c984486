package substitution

import (
	"fmt"
	"io"
	"log/slog"

	"solid/internal/domain"
)

// Trainer trains any Flyer without knowing which specialization it is.
type Trainer struct {
	out    io.Writer
	logger *slog.Logger
}

// NewTrainer returns a trainer that announces training on out.
// A nil logger discards log output.
func NewTrainer(out io.Writer, logger *slog.Logger) *Trainer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Trainer{out: out, logger: logger}
}

// Train announces the session and asks f to fly. The Flyer's error is
// returned wrapped, after which nothing else is printed.
func (t *Trainer) Train(f domain.Flyer) error {
	if _, err := fmt.Fprintln(t.out, "Training bird to fly..."); err != nil {
		return err
	}
	if err := f.Fly(); err != nil {
		t.logger.Debug("trainer.fly_failed", "flyer", fmt.Sprintf("%T", f), "err", err)
		return fmt.Errorf("train: %w", err)
	}
	t.logger.Debug("trainer.fly_ok", "flyer", fmt.Sprintf("%T", f))
	return nil
}

// Aviary builds Flyers by kind.
type Aviary struct {
	out io.Writer
}

// NewAviary returns an aviary whose birds write to out.
func NewAviary(out io.Writer) *Aviary { return &Aviary{out: out} }

// Get returns the Flyer registered under kind.
func (a *Aviary) Get(kind domain.BirdKind) (domain.Flyer, error) {
	switch kind {
	case domain.BirdKindBird:
		return NewBird(a.out), nil
	case domain.BirdKindEagle:
		return NewEagle(a.out), nil
	case domain.BirdKindPenguin:
		return NewPenguin(), nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownBird, kind)
}
