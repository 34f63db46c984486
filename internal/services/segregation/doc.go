// Package segregation holds the interface segregation demo.
//
// Robot implements domain.Worker and nothing else. It is never forced to
// provide Eat just because some other actor can both work and eat.
package segregation
