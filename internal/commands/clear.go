package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget all saved repositories",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			if err := a.Lists.Clear(a.context(cmd)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Saved repositories cleared.")
			return nil
		},
	}
}
