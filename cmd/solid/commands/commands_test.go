package commands_test

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solid/cmd/solid/commands"
	"solid/internal/domain"
)

func execute(cmd *cobra.Command, args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_Subcommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "isp", args: []string{"isp"}, want: "Robot work\n"},
		{name: "lsp", args: []string{"lsp"}, want: "Training bird to fly...\nEagle is Flying\n"},
		{name: "lsp base bird", args: []string{"lsp", "--bird", "bird"}, want: "Training bird to fly...\nBird is Flying\n"},
		{name: "ocp", args: []string{"ocp"}, want: "90\n80\n"},
		{name: "ocp amount", args: []string{"ocp", "--amount", "30"}, want: "20\n10\n"},
		{
			name: "all",
			args: []string{"all"},
			want: "Robot work\nTraining bird to fly...\nEagle is Flying\n90\n80\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(commands.NewRootCmd(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestStandalone_Idempotent(t *testing.T) {
	for _, build := range []func() *cobra.Command{
		commands.NewInterfaceSegregationCmd,
		commands.NewLiskovSubstitutionCmd,
		commands.NewOpenClosedCmd,
	} {
		first, _, err := execute(build())
		require.NoError(t, err)
		second, _, err := execute(build())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestLiskov_Penguin_Fails(t *testing.T) {
	out, _, err := execute(commands.NewLiskovSubstitutionCmd(), "--bird", "penguin")

	assert.ErrorIs(t, err, domain.ErrFlightUnsupported)
	assert.Equal(t, "Training bird to fly...\n", out)
}

func TestLiskov_BirdFromEnv(t *testing.T) {
	t.Setenv("SOLID_BIRD", "bird")

	out, _, err := execute(commands.NewLiskovSubstitutionCmd())
	require.NoError(t, err)
	assert.Equal(t, "Training bird to fly...\nBird is Flying\n", out)
}

func TestDemo_UserErrors(t *testing.T) {
	_, _, err := execute(commands.NewOpenClosedCmd(), "--amount", "lots")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, _, err = execute(commands.NewLiskovSubstitutionCmd(), "--bird", "dodo")
	assert.ErrorIs(t, err, domain.ErrUnknownBird)

	_, _, err = execute(commands.NewInterfaceSegregationCmd(), "extra")
	assert.Error(t, err)
}

func TestDemo_OtherDemoSettingsIgnored(t *testing.T) {
	t.Setenv("SOLID_AMOUNT", "lots")
	t.Setenv("SOLID_BIRD", "dodo")

	out, _, err := execute(commands.NewInterfaceSegregationCmd())
	require.NoError(t, err)
	assert.Equal(t, "Robot work\n", out)
}

func TestOpenClosed_IgnoresBird(t *testing.T) {
	t.Setenv("SOLID_BIRD", "dodo")

	out, _, err := execute(commands.NewOpenClosedCmd())
	require.NoError(t, err)
	assert.Equal(t, "90\n80\n", out)
}

func TestLiskov_IgnoresAmount(t *testing.T) {
	t.Setenv("SOLID_AMOUNT", "lots")

	out, _, err := execute(commands.NewLiskovSubstitutionCmd())
	require.NoError(t, err)
	assert.Equal(t, "Training bird to fly...\nEagle is Flying\n", out)
}

func TestAll_BadInputFailsBeforeOutput(t *testing.T) {
	out, _, err := execute(commands.NewRootCmd(), "all", "--amount", "lots")

	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	assert.Empty(t, out)
}
