package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) versionString() string {
	sha := a.GitSHA
	if sha == "" {
		sha = "unknown"
	}
	if a.GitDirty != "" {
		sha += " (dirty)"
	}
	return "github-explorer " + sha
}

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the build and the configured backends",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, a.versionString())
			fmt.Fprintf(w, "API:     %s\n", a.Config.APIBaseURL)
			fmt.Fprintf(w, "Storage: %s (%s)\n", a.Config.StorageType, a.Config.StoragePath)
			return nil
		},
	}
}
