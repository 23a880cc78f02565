package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/modfind/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <specifier...>",
		Short: "Resolve specifiers again whenever the candidate directories change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			round := 0
			return c.app.Watch(cmd.Context(), args, opts, func(results []app.Result, err error) {
				if round > 0 {
					_, _ = fmt.Fprintln(out, "---")
				}
				round++
				printResults(out, results)
				if err != nil {
					c.logger.Error(err)
				}
			})
		},
	}
	addResolveFlags(cmd)
	return cmd
}
