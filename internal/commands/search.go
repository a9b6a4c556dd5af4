package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stahnma/github-explorer/internal/explorer"
)

func (a *App) newSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <owner/name>",
		Short: "Look up a repository and add it to the saved list",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			identifier := ""
			if len(args) == 1 {
				identifier = args[0]
			}
			return a.runSearch(cmd, identifier)
		},
	}
}

func (a *App) runSearch(cmd *cobra.Command, identifier string) error {
	if err := a.ensureClient(); err != nil {
		return err
	}
	if err := a.ensureStore(); err != nil {
		return err
	}
	ctx := a.context(cmd)

	dashboard := explorer.NewDashboard(ctx, a.GHClient, a.Lists)
	if err := dashboard.SubmitSearch(ctx, identifier); err != nil {
		a.Logger.Debug("search failed", "identifier", identifier, "error", err)
		return err
	}

	added := dashboard.Repositories[len(dashboard.Repositories)-1]
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%d saved)\n", added.FullName, len(dashboard.Repositories))
	return nil
}
