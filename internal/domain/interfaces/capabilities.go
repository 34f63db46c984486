package interfaces

// Worker can perform work.
type Worker interface {
	Work()
}

// Eater can eat.
type Eater interface {
	Eat()
}

// WorkEater is the broad contract that bundles both capabilities. Actors
// should not be made to implement it when they can honour only one half.
type WorkEater interface {
	Worker
	Eater
}
