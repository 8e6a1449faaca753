package cmd

import (
	"github.com/spf13/cobra"

	"meetgrid/config"
	"meetgrid/di"
)

func newServeCommand() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTPAddr = addr
			}

			container, err := di.NewContainer(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return container.MeetGridHttpServer.Start()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides MEETGRID_HTTP_ADDR")
	return cmd
}
