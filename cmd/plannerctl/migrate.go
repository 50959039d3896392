package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"productivity-planner/config"
	pg "productivity-planner/config/postgre"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database tables and indexes",
		Long: `Create the tasks, habits and habit_logs tables when missing.

The database is read from config.yaml or the DATABASE_* environment
variables. Running it again is a no-op.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			ctx := cmd.Context()
			db, err := pg.Connect(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer pg.Disconnect(ctx, db)

			if err := pg.Migrate(ctx, db); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Migrated %s database\n", cfg.Database.Driver)
			return nil
		},
	}
}
