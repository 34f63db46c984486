package main

import (
	"os"

	"solid/cmd/solid/commands"
)

func main() {
	cmd := commands.NewOpenClosedCmd()
	cmd.Use = "openclosed"
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
