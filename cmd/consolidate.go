package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"meetgrid/solution"
	"meetgrid/util"
)

func newConsolidateCommand() *cobra.Command {
	var (
		file   string
		users  int
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "consolidate",
		Short: "Merge solver records from a JSON file into candidate windows",
		RunE: func(cmd *cobra.Command, args []string) error {
			if users <= 0 {
				return fmt.Errorf("--users must be positive, got %d", users)
			}
			resp, err := util.ReadSolutionResponseFromJSON(file)
			if err != nil {
				return err
			}

			windows := solution.Consolidate(resp.Solution, users)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(windows)
			}
			util.PrintMergedWindows(cmd.OutOrStdout(), windows)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "solution response JSON file")
	cmd.Flags().IntVar(&users, "users", 0, "number of participants in the room")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print windows as JSON")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("users")
	return cmd
}
