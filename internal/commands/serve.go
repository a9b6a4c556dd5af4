package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stahnma/github-explorer/internal/explorer"
	"github.com/stahnma/github-explorer/internal/web"
)

func (a *App) newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [flags]",
		Short: "Serve the dashboard and repository pages over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureClient(); err != nil {
				return err
			}
			if err := a.ensureStore(); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(a.context(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			dashboard := explorer.NewDashboard(ctx, a.GHClient, a.Lists)
			handler := web.NewHandler(dashboard, a.GHClient, a.Logger)
			return web.Serve(ctx, a.Config.ListenAddr, handler, a.Logger)
		},
	}
	cmd.Flags().StringVar(&a.Config.ListenAddr, "addr", a.Config.ListenAddr, "Address to listen on")
	return cmd
}
