// Package main runs the open/closed demo on its own. It applies each
// discount strategy to 100 (or --amount) and prints 90 and 80.
package main
