package commands

import (
	"github.com/spf13/cobra"

	"solid/internal/app"
)

// NewLiskovSubstitutionCmd trains a bird. The default eagle flies; the
// penguin fails and the command exits non-zero.
func NewLiskovSubstitutionCmd() *cobra.Command {
	return newDemoCmd(
		"lsp",
		"Liskov substitution: train a bird to fly",
		bindBird,
		(*app.App).LiskovSubstitution,
	)
}
