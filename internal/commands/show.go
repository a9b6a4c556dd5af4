package commands

import (
	"github.com/spf13/cobra"

	"github.com/stahnma/github-explorer/internal/explorer"
	"github.com/stahnma/github-explorer/internal/format"
)

func (a *App) newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <owner/name>",
		Short: "Show a repository's counters and open issues",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureClient(); err != nil {
				return err
			}
			ctx := a.context(cmd)

			detail := explorer.NewDetail(a.GHClient)
			select {
			case <-detail.Load(ctx, args[0]):
			case <-ctx.Done():
				return ctx.Err()
			}
			format.WriteDetail(cmd.OutOrStdout(), detail.State())
			return nil
		},
	}
}
