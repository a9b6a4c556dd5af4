package commands

import (
	"github.com/spf13/cobra"

	"github.com/stahnma/github-explorer/internal/explorer"
	"github.com/stahnma/github-explorer/internal/tui"
)

func (a *App) newBrowseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureClient(); err != nil {
				return err
			}
			if err := a.ensureStore(); err != nil {
				return err
			}
			ctx := a.context(cmd)
			dashboard := explorer.NewDashboard(ctx, a.GHClient, a.Lists)
			return tui.Run(ctx, dashboard, explorer.NewDetail(a.GHClient))
		},
	}
}
