package main

import (
	"github.com/spf13/cobra"

	"deskresolve/internal/ipc"
)

func newBackendCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "backend",
		Short: "Show which window backend the current session selects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if c.daemon {
				resp, err := c.app.Client().Send(cmd.Context(), ipc.Request{Command: ipc.CmdBackend})
				if err != nil {
					return err
				}
				name = resp.Backend
			} else {
				backend, err := c.app.Windows.Backend()
				if err != nil {
					return err
				}
				name = backend.Name()
			}
			return c.print(map[string]string{"backend": name})
		},
	}
}
