package interfaces

// Flyer is the base flying behaviour. Callers such as a trainer assume
// every Flyer actually flies; an implementation returning an error for
// every call breaks that assumption.
type Flyer interface {
	Fly() error
}
