package commands

import (
	"github.com/spf13/cobra"

	"github.com/stahnma/github-explorer/internal/format"
)

func (a *App) newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [flags]",
		Short: "Show the saved repositories",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			list := a.Lists.Load(a.context(cmd))
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return format.WriteJSON(cmd.OutOrStdout(), list)
			}
			format.WriteRepositories(cmd.OutOrStdout(), list)
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Print the list as JSON")
	return cmd
}
