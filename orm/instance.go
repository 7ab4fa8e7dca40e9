package orm

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"ariga.io/atlas-go-sdk/atlasexec"
	sloggorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/initia-labs/bridgeinfo/orm/config"
	"github.com/initia-labs/bridgeinfo/orm/plugins"
)

type Database struct {
	*gorm.DB
	config *config.Config
}

func OpenDB(config *config.Config, logger *slog.Logger) (*Database, error) {
	gormcfg := &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
		PrepareStmt:    true,
		Logger:         sloggorm.New(sloggorm.WithHandler(logger.Handler())),
	}

	instance, err := gorm.Open(postgres.Open(config.DSN), gormcfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := instance.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(config.MaxConns)
	sqlDB.SetMaxIdleConns(config.IdleConns)

	if err := instance.Use(plugins.NewMetricsPlugin()); err != nil {
		return nil, err
	}

	return &Database{DB: instance, config: config}, nil
}

// NewDatabase wraps an already opened gorm instance.
func NewDatabase(db *gorm.DB, config *config.Config) *Database {
	return &Database{DB: db, config: config}
}

// Migrate applies pending migrations from the migration dir when auto-migrate
// is enabled.
func (d Database) Migrate(ctx context.Context) error {
	if d.config == nil || !d.config.AutoMigrate {
		return nil
	}

	workDir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(
			os.DirFS(d.config.MigrationDir),
		),
	)
	if err != nil {
		return err
	}
	defer func() { _ = workDir.Close() }()

	client, err := atlasexec.NewClient(workDir.Path(), "atlas")
	if err != nil {
		return err
	}

	if _, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL: d.config.DSN,
	}); err != nil {
		return err
	}

	return nil
}

func (d Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetDBStats returns database connection pool statistics
func (d Database) GetDBStats() (*sql.DBStats, error) {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return nil, err
	}

	stats := sqlDB.Stats()
	return &stats, nil
}
