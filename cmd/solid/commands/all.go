package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"solid/internal/app"
)

func newAllCmd() *cobra.Command {
	return newDemoCmd(
		"all",
		"Run every demo in order",
		func(cmd *cobra.Command, v *viper.Viper) {
			bindBird(cmd, v)
			bindAmount(cmd, v)
		},
		func(a *app.App) error {
			if err := a.Validate(); err != nil {
				return err
			}
			for _, run := range []func() error{
				a.InterfaceSegregation,
				a.LiskovSubstitution,
				a.OpenClosed,
			} {
				if err := run(); err != nil {
					return err
				}
			}
			return nil
		},
	)
}
