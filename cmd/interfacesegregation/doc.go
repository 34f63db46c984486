// Package main runs the interface segregation demo on its own. It prints
// "Robot work" and exits.
package main
