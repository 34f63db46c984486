package commands

import (
	"github.com/spf13/cobra"

	"solid/internal/app"
)

// NewOpenClosedCmd prints each discount strategy's result, one per line.
func NewOpenClosedCmd() *cobra.Command {
	return newDemoCmd(
		"ocp",
		"Open/closed: apply each discount strategy",
		bindAmount,
		(*app.App).OpenClosed,
	)
}
