package main

import (
	"github.com/spf13/cobra"

	"deskresolve/internal/ipc"
)

type iconResult struct {
	Token string `yaml:"token" json:"token"`
	Found bool   `yaml:"found" json:"found"`
	Path  string `yaml:"path,omitempty" json:"path,omitempty"`
}

func newIconCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "icon <token>...",
		Short: "Resolve icon names to files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]iconResult, 0, len(args))
			for _, token := range args {
				r := iconResult{Token: token}
				if c.daemon {
					resp, err := c.app.Client().Send(cmd.Context(), ipc.Request{Command: ipc.CmdResolveIcon, Token: token})
					if err != nil {
						return err
					}
					r.Path, r.Found = resp.Icon, resp.Found
				} else {
					r.Path, r.Found = c.app.Icons.Resolve(token)
				}
				results = append(results, r)
			}
			return c.print(results)
		},
	}
}
