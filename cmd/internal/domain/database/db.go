package database

import (
	"fmt"
	"strings"
	"time"

	"brainagro/cmd/internal/domain/entity"
	"brainagro/cmd/internal/domain/graph"

	"github.com/glebarez/sqlite"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	DefaultSQLitePath = "database.db"
	sqliteFKPragma    = "_pragma=foreign_keys(1)"
)

type Config struct {
	Driver     string
	DSN        string
	SeedStates bool
}

func Init(cfg Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err = Migrate(db); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if cfg.Driver == DriverSQLite || cfg.Driver == "" {
		// SQLite only handles one writer, and in-memory databases live per connection
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	if cfg.SeedStates {
		inserted, err := SeedStates(db)
		if err != nil {
			return nil, fmt.Errorf("seeding states: %w", err)
		}
		if inserted > 0 {
			log.Infof("seeded %d states", inserted)
		}
	}
	return db, nil
}

// Migrate creates or updates every table, unique index and foreign key.
func Migrate(db *gorm.DB) error {
	models := append(graph.Models(), &entity.Registration{})
	return db.AutoMigrate(models...)
}

func dialectorFor(cfg Config) (gorm.Dialector, error) {
	switch cfg.Driver {
	case DriverSQLite, "":
		return sqlite.Open(sqliteDSN(cfg.DSN)), nil
	case DriverPostgres:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("database: postgres driver requires a DSN")
		}
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("database: unsupported driver %q", cfg.Driver)
	}
}

// sqliteDSN makes sure foreign keys are enforced, SQLite ships with them off.
func sqliteDSN(dsn string) string {
	if dsn == "" {
		dsn = DefaultSQLitePath
	}

	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}

	if strings.Contains(dsn, "?") {
		return dsn + "&" + sqliteFKPragma
	}
	return dsn + "?" + sqliteFKPragma
}
