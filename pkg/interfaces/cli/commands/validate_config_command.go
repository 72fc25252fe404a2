package commands

import (
	"fmt"

	"github.com/devkrishnan/mrpnet/pkg/config"
	"github.com/spf13/cobra"
)

// NewValidateConfigCommand builds the "validate-config" subcommand: load
// and validate configuration without running the engine, so an operator can
// check a scenario's setup before committing to a full pass.
func NewValidateConfigCommand() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "validate-config",
		Short: "Validate configuration without running the engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			fmt.Println("✅ configuration is valid")
			fmt.Println(cfg.Describe())
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "config", "", "Path to config file")
	return cmd
}
