package main

import (
	"os"

	"solid/cmd/solid/commands"
)

func main() {
	cmd := commands.NewLiskovSubstitutionCmd()
	cmd.Use = "liskovsubstitution"
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
