package commands

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/stahnma/github-explorer/internal/format"
	ghub "github.com/stahnma/github-explorer/internal/github"
)

// Export is the document written by the export command.
type Export struct {
	Date         string                   `json:"date"`
	Repositories []ghub.RepositorySummary `json:"repositories"`
}

func (a *App) newExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export the saved repositories in JSON format",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ExportJSON(a.context(cmd), cmd.OutOrStdout())
		},
	}
}

// ExportJSON writes the saved list, dated today, as JSON to w.
func (a *App) ExportJSON(ctx context.Context, w io.Writer) error {
	if err := a.ensureStore(); err != nil {
		return err
	}
	return format.WriteJSON(w, Export{
		Date:         time.Now().Format("2006-Jan-02"),
		Repositories: a.Lists.Load(ctx),
	})
}
