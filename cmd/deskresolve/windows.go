package main

import (
	"github.com/spf13/cobra"

	"deskresolve/internal/ipc"
	"deskresolve/internal/wm"
)

func newWindowsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "windows",
		Aliases: []string{"list"},
		Short:   "List open windows with their icons",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var windows []wm.Window
			if c.daemon {
				resp, err := c.app.Client().Send(cmd.Context(), ipc.Request{Command: ipc.CmdListWindows})
				if err != nil {
					return err
				}
				windows = resp.Windows
			} else {
				var err error
				windows, err = c.app.Windows.ListWindows(cmd.Context())
				if err != nil {
					return err
				}
			}
			if windows == nil {
				windows = []wm.Window{}
			}
			return c.print(windows)
		},
	}
}
