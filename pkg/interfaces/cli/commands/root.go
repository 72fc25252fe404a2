package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the mrpnet root command, grounded on
// acdtunes-spacetraders's NewRootCommand composition shape.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "mrpnet",
		Short: "MRP Net — material requirements planning engine",
		Long: `mrpnet computes net shortfalls across a multi-level bill of materials,
generates planned orders respecting lot sizing, shrinkage, and lead time,
and explodes dependent demand top-down by low-level code.`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	root.AddCommand(NewRunCommand())
	root.AddCommand(NewValidateConfigCommand())
	root.AddCommand(NewLevelsCommand())

	return root
}
