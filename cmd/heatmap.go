package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"meetgrid/util"
)

func newHeatmapCommand() *cobra.Command {
	var (
		file  string
		out   string
		title string
	)
	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Render a heatmap JSON file to an HTML chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := util.ReadHeatmapResponseFromJSON(file)
			if err != nil {
				return err
			}
			if err := util.RenderHeatmapFile(out, title, *resp); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "heatmap response JSON file")
	cmd.Flags().StringVar(&out, "out", "heatmap.html", "output HTML file")
	cmd.Flags().StringVar(&title, "title", "Availability", "chart title")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
