package testutil

import (
	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/initia-labs/bridgeinfo/orm"
	"github.com/initia-labs/bridgeinfo/orm/plugins"
)

// NewMockDB returns a gorm-backed Database whose SQL is served by sqlmock.
// Queries are matched as regular expressions.
func NewMockDB() (*orm.Database, sqlmock.Sqlmock, error) {
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		return nil, nil, err
	}

	gormcfg := &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
		PrepareStmt:    false,
		Logger:         logger.Discard,
	}

	instance, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), gormcfg)
	if err != nil {
		return nil, nil, err
	}

	if err := instance.Use(plugins.NewMetricsPlugin()); err != nil {
		return nil, nil, err
	}

	return orm.NewDatabase(instance, nil), mock, nil
}
