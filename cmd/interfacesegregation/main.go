package main

import (
	"os"

	"solid/cmd/solid/commands"
)

func main() {
	cmd := commands.NewInterfaceSegregationCmd()
	cmd.Use = "interfacesegregation"
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
