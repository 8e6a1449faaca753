package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the meetgrid command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "meetgrid",
		Short:         "Find a shared meeting time from weekly availability grids",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newServeCommand(), newConsolidateCommand(), newHeatmapCommand())
	return root
}
