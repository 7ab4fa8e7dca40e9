package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/initia-labs/bridgeinfo/config"
	"github.com/initia-labs/bridgeinfo/log"
	"github.com/initia-labs/bridgeinfo/orm"
	"github.com/initia-labs/bridgeinfo/types"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Long: `
Apply pending database migrations.

This command applies the migrations in DB_MIGRATION_DIR to DB_DSN using Atlas.
Use "migrate diff" to generate a new migration file from the GORM models.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.GetConfig()
			if err != nil {
				return err
			}

			dbCfg := *cfg.GetDBConfig()
			dbCfg.AutoMigrate = true
			if err := dbCfg.Validate(); err != nil {
				return types.NewConfigError("invalid database config", err)
			}

			logger := log.NewLogger(cfg)
			db, err := orm.OpenDB(&dbCfg, logger)
			if err != nil {
				return err
			}
			defer db.Close() //nolint:errcheck

			if err := db.Migrate(cmd.Context()); err != nil {
				return err
			}
			logger.Info("migrations applied", "dir", dbCfg.MigrationDir)
			return nil
		},
	}

	cmd.AddCommand(migrateDiffCmd())

	return cmd
}

func migrateDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Generate a new database migration file",
		Long: `
Generate a new database migration file.

This command generates a new database migration file using GORM and Atlas.
DB_DSN must point at a disposable dev database.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.GetConfig()
			if err != nil {
				return err
			}
			dsn := cfg.GetDBConfig().DSN
			migrationDir := fmt.Sprintf("file://%s", cfg.GetDBConfig().MigrationDir)

			// #nosec G204
			rawCmd := exec.CommandContext(context.Background(), "atlas", "migrate", "diff",
				"migration",
				"--env", "gorm",
				"--dev-url", dsn,
				"--dir", migrationDir,
			)
			rawCmd.Stdout = os.Stdout
			rawCmd.Stderr = os.Stderr

			return rawCmd.Run()
		},
	}

	return cmd
}
