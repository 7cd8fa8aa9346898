package main

import (
	"github.com/spf13/cobra"
)

func newServeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the resolution daemon on a unix socket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.log.Info("Starting daemon",
				"socket", c.app.Config.GetSocketPath(),
				"command_timeout", c.app.Config.GetCommandTimeout().String())
			return c.app.Serve(cmd.Context())
		},
	}
}
