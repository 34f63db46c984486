// Package app wires the demos for the CLI.
//
// Config is loaded through viper (defaults, SOLID_* environment variables
// and bound flags). NewWire turns it into the logger, actors and
// strategies, and App runs each demo against that wiring.
package app
