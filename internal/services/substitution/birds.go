package substitution

import (
	"fmt"
	"io"

	"solid/internal/domain"
)

// Bird is the plain flying behaviour every specialization is measured against.
type Bird struct {
	out io.Writer
}

// NewBird returns a generic bird writing to out.
func NewBird(out io.Writer) *Bird { return &Bird{out: out} }

// Fly prints that the bird is flying.
func (b *Bird) Fly() error {
	_, err := fmt.Fprintln(b.out, "Bird is Flying")
	return err
}

// Eagle flies the way the base behaviour promises.
type Eagle struct {
	out io.Writer
}

// NewEagle returns an eagle writing to out.
func NewEagle(out io.Writer) *Eagle { return &Eagle{out: out} }

// Fly prints that the eagle is flying.
func (e *Eagle) Fly() error {
	_, err := fmt.Fprintln(e.out, "Eagle is Flying")
	return err
}

// Penguin satisfies Flyer by signature only.
type Penguin struct{}

// NewPenguin returns a penguin.
func NewPenguin() *Penguin { return &Penguin{} }

// Fly always fails.
func (*Penguin) Fly() error {
	return fmt.Errorf("penguins can't fly: %w", domain.ErrFlightUnsupported)
}

var (
	_ domain.Flyer = (*Bird)(nil)
	_ domain.Flyer = (*Eagle)(nil)
	_ domain.Flyer = (*Penguin)(nil)
)
