// Package commands defines the solid CLI and wires dependencies for subcommands.
//
// Commands
//
//   - isp   Interface segregation: a robot that only works
//   - lsp   Liskov substitution: a trainer that trusts any bird to fly
//   - ocp   Open/closed: discount strategies applied to one amount
//   - all   Run the three demos in order
//
// # Implementation
//
// Every demo command owns a viper instance seeded with defaults and SOLID_*
// environment lookups, binds its flags to it, and builds the app wiring
// when it runs. The standalone binaries under cmd/ execute the same
// constructors as the root command's subcommands.
package commands
