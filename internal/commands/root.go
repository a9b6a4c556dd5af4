package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/stahnma/github-explorer/internal/config"
	ghub "github.com/stahnma/github-explorer/internal/github"
	"github.com/stahnma/github-explorer/internal/repolist"
	"github.com/stahnma/github-explorer/internal/storage"
	"github.com/stahnma/github-explorer/internal/storage/file"
	"github.com/stahnma/github-explorer/internal/storage/sqlite"
)

// App holds shared application state.
type App struct {
	Config   config.Config
	Store    storage.Store
	Lists    *repolist.Service
	GHClient ghub.Client
	Logger   *slog.Logger
	GitSHA   string
	GitDirty string
}

// NewApp creates a new App from the given configuration. The store and the
// API client are opened on first use so that command-line flags can still
// change the configuration.
func NewApp(cfg config.Config, gitSHA, gitDirty string) *App {
	return &App{
		Config:   cfg,
		Logger:   newLogger(cfg.DebugMode),
		GitSHA:   gitSHA,
		GitDirty: gitDirty,
	}
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// ensureClient creates the GitHub client if it doesn't exist.
func (a *App) ensureClient() error {
	if a.GHClient != nil {
		return nil
	}
	client, err := ghub.NewClient(a.Config.APIBaseURL, a.Config.GitHubToken)
	if err != nil {
		return fmt.Errorf("creating GitHub client: %w", err)
	}
	a.GHClient = client
	return nil
}

// ensureStore opens the configured store if it isn't open yet.
func (a *App) ensureStore() error {
	if a.Lists != nil {
		return nil
	}
	if a.Store == nil {
		store, err := openStore(a.Config)
		if err != nil {
			return err
		}
		a.Store = store
	}
	a.Lists = repolist.NewService(a.Store)
	return nil
}

func openStore(cfg config.Config) (storage.Store, error) {
	switch cfg.StorageType {
	case config.StorageSQLite:
		s, err := sqlite.NewSQLiteStorage(cfg.StoragePath)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store %s: %w", cfg.StoragePath, err)
		}
		return s, nil
	default:
		s, err := file.NewFileStorage(cfg.StoragePath)
		if err != nil {
			return nil, fmt.Errorf("opening file store %s: %w", cfg.StoragePath, err)
		}
		return s, nil
	}
}

// Close releases the store, if one was opened.
func (a *App) Close() error {
	if a.Store == nil {
		return nil
	}
	return a.Store.Close()
}

// NewRootCommand creates the root cobra command with all subcommands.
func (a *App) NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "github-explorer",
		Short: "Explore GitHub repositories and keep a list of the ones you searched.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.applyFlags(cmd)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.Config.StorageType, "storage", a.Config.StorageType, "Storage backend: file or sqlite")
	flags.StringVar(&a.Config.StoragePath, "storage-path", a.Config.StoragePath, "Location of the saved repository store")
	flags.StringVar(&a.Config.APIBaseURL, "api-url", a.Config.APIBaseURL, "GitHub API base URL")
	flags.BoolVar(&a.Config.DebugMode, "debug", a.Config.DebugMode, "Enable debug logging")

	rootCmd.AddCommand(a.newSearchCommand())
	rootCmd.AddCommand(a.newListCommand())
	rootCmd.AddCommand(a.newShowCommand())
	rootCmd.AddCommand(a.newBrowseCommand())
	rootCmd.AddCommand(a.newServeCommand())
	rootCmd.AddCommand(a.newExportCommand())
	rootCmd.AddCommand(a.newClearCommand())
	rootCmd.AddCommand(a.newVersionCommand())

	return rootCmd
}

func (a *App) applyFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if flags.Changed("storage") && !flags.Changed("storage-path") && os.Getenv("STORAGE_PATH") == "" {
		a.Config.StoragePath = config.DefaultStoragePath(a.Config.StorageType)
	}
	if flags.Changed("debug") {
		a.Logger = newLogger(a.Config.DebugMode)
	}
	if a.Logger == nil {
		a.Logger = newLogger(a.Config.DebugMode)
	}
	slog.SetDefault(a.Logger)
	return a.Config.Validate()
}

func (a *App) context(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
