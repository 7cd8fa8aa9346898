package main

import (
	"github.com/spf13/cobra"

	"deskresolve/internal/ipc"
)

// focusResult is the output of a successful focus.
type focusResult struct {
	OK      bool   `yaml:"ok" json:"ok"`
	Address string `yaml:"address" json:"address"`
}

func newFocusCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "focus <address>",
		Short: "Bring the window with the given address to the foreground",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address := args[0]
			if c.daemon {
				req := ipc.Request{Command: ipc.CmdFocusWindow, Address: address}
				if _, err := c.app.Client().Send(cmd.Context(), req); err != nil {
					return err
				}
			} else if err := c.app.Windows.FocusWindow(cmd.Context(), address); err != nil {
				return err
			}
			return c.print(focusResult{OK: true, Address: address})
		},
	}
}
