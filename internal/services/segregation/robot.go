package segregation

import (
	"fmt"
	"io"

	"solid/internal/domain"
)

// Robot is a Worker that cannot eat.
type Robot struct {
	out io.Writer
	err error
}

// NewRobot returns a robot that reports its work to out.
func NewRobot(out io.Writer) *Robot { return &Robot{out: out} }

// Work prints a single line announcing the robot's work. Worker.Work has
// no error result, so a failed write is kept for Err.
func (r *Robot) Work() {
	if _, err := fmt.Fprintln(r.out, "Robot work"); err != nil && r.err == nil {
		r.err = err
	}
}

// Err returns the first write error seen by Work, if any.
func (r *Robot) Err() error { return r.err }

// Run asks w to perform its one capability once. Write failures are not
// reported here; callers holding a *Robot check Err.
func Run(w domain.Worker) {
	w.Work()
}

// Compile-time assertion that Robot implements domain.Worker.
var _ domain.Worker = (*Robot)(nil)
