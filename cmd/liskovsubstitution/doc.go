// Package main runs the Liskov substitution demo on its own.
//
// With no flags it trains an eagle and prints
//
//	Training bird to fly...
//	Eagle is Flying
//
// --bird penguin shows the broken substitution: the program stops after the
// first line and exits 1 with the "flight unsupported" error.
package main
