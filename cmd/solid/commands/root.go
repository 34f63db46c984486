package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"solid/internal/app"
	"solid/internal/logging"
)

// Execute runs the solid root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd returns the solid command with every demo registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "solid",
		Short:        "Small demos of SOLID design principles",
		SilenceUsage: true,
	}
	root.AddCommand(
		NewInterfaceSegregationCmd(),
		NewLiskovSubstitutionCmd(),
		NewOpenClosedCmd(),
		newAllCmd(),
	)
	return root
}

// newDemoCmd builds a no-argument command that loads config from v, wires
// the app and hands it to run. bind may register extra flags on v.
func newDemoCmd(
	use, short string,
	bind func(cmd *cobra.Command, v *viper.Viper),
	run func(a *app.App) error,
) *cobra.Command {
	v := app.NewViper()
	cmd := &cobra.Command{
		Use:          use,
		Short:        short,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.LoadConfig(v, cmd.OutOrStdout(), cmd.ErrOrStderr())
			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			return run(app.New(cfg, w))
		},
	}

	cmd.Flags().String("log-level", logging.DefaultLevel, "log level: debug, info, warn or error")
	cobra.CheckErr(v.BindPFlag(app.KeyLogLevel, cmd.Flags().Lookup("log-level")))
	if bind != nil {
		bind(cmd, v)
	}
	return cmd
}

func bindBird(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().String("bird", app.DefaultBird, "bird to train: eagle, bird or penguin")
	cobra.CheckErr(v.BindPFlag(app.KeyBird, cmd.Flags().Lookup("bird")))
}

func bindAmount(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().String("amount", app.DefaultAmount, "amount to discount")
	cobra.CheckErr(v.BindPFlag(app.KeyAmount, cmd.Flags().Lookup("amount")))
}
