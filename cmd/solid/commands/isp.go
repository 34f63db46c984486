package commands

import (
	"github.com/spf13/cobra"

	"solid/internal/app"
)

// NewInterfaceSegregationCmd prints "Robot work".
func NewInterfaceSegregationCmd() *cobra.Command {
	return newDemoCmd(
		"isp",
		"Interface segregation: a robot that only works",
		nil,
		(*app.App).InterfaceSegregation,
	)
}
