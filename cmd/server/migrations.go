package main

import (
	"fmt"

	"github.com/phrazzld/exercise-tracker/internal/config"
	"github.com/phrazzld/exercise-tracker/internal/platform/postgres"
	"github.com/spf13/cobra"
)

func newMigrateCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate [up|down|status|version]",
		Short: "Run database migrations",
		Long: "Apply, roll back or inspect the embedded database migrations. " +
			"With no argument, all pending migrations are applied.",
		ValidArgs: []string{
			postgres.MigrateUp,
			postgres.MigrateDown,
			postgres.MigrateStatus,
			postgres.MigrateVersion,
		},
		Args: cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			command := postgres.MigrateUp
			if len(args) == 1 {
				command = args[0]
			}

			cfg, log, err := initializeApp(*configFile)
			if err != nil {
				return err
			}
			if cfg.Database.Driver != config.DriverPostgres {
				return fmt.Errorf("migrations require the %q database driver, got %q",
					config.DriverPostgres, cfg.Database.Driver)
			}

			db, err := setupAppDatabase(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(); err != nil {
					log.Error("Error closing database connection", "error", err)
				}
			}()

			log.Info("Executing migrations", "command", command)
			return postgres.Migrate(cmd.Context(), db, command, log)
		},
	}
}
