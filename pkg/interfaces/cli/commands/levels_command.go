package commands

import (
	"fmt"
	"sort"

	"github.com/devkrishnan/mrpnet/pkg/config"
	"github.com/devkrishnan/mrpnet/pkg/domain/entities"
	"github.com/devkrishnan/mrpnet/pkg/domain/services/leveler"
	"github.com/spf13/cobra"
)

// NewLevelsCommand builds the "levels" subcommand: load the BOM and item
// master and print each part's resolved low-level code, without running
// the full netting pass. Useful for sanity-checking a BOM before a run.
func NewLevelsCommand() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "levels",
		Short: "Print the resolved low-level code for every part",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			reader, err := loadSourceReader(cfg)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			bomEdges, err := reader.GetBOMEdges(ctx)
			if err != nil {
				return err
			}
			items, err := reader.GetItemMaster(ctx)
			if err != nil {
				return err
			}

			parts := make([]entities.Part, 0, len(items))
			for _, item := range items {
				parts = append(parts, item.Part)
			}

			llc, err := leveler.AssignLevels(bomEdges, parts)
			if err != nil {
				return err
			}

			ordered := make([]entities.Part, 0, len(llc))
			for part := range llc {
				ordered = append(ordered, part)
			}
			sort.Slice(ordered, func(i, j int) bool {
				if llc[ordered[i]] != llc[ordered[j]] {
					return llc[ordered[i]] < llc[ordered[j]]
				}
				return ordered[i] < ordered[j]
			})

			fmt.Printf("%-20s %s\n", "Part", "LLC")
			for _, part := range ordered {
				fmt.Printf("%-20s %d\n", part, llc[part])
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "config", "", "Path to config file")
	return cmd
}
