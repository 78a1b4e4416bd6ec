// Package main implements the entry point for the exercise tracker API
// server. It loads configuration, sets up logging and storage, and serves
// HTTP until it receives SIGINT or SIGTERM.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/exercise-tracker/internal/config"
	"github.com/phrazzld/exercise-tracker/internal/platform/logger"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Running the binary with no
// subcommand starts the server.
func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:          "exercise-tracker",
		Short:        "Exercise tracker HTTP API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configFile)
		},
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "path to a YAML config file")

	root.AddCommand(
		newServeCmd(&configFile),
		newMigrateCmd(&configFile),
	)
	return root
}

func newServeCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), *configFile)
		},
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp(configFile string) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver)

	return cfg, log, nil
}

// runServe wires the application and serves until ctx is cancelled.
func runServe(ctx context.Context, configFile string) error {
	cfg, log, err := initializeApp(configFile)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}

	app, err := newApplication(ctx, cfg, log, db)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
