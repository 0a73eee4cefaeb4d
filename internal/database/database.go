// Package database opens the relational store backing creatures and users
package database

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/KirkDiggler/creature-forge/internal/errors"
)

// Config controls how the database is opened
type Config struct {
	// DSN is a SQLite path or URI. ":memory:" opens a private in-memory database.
	DSN string
	// SlowQuery is the threshold above which queries are logged as slow
	SlowQuery time.Duration
	// LogQueries logs every statement at debug level
	LogQueries bool
	Logger     *slog.Logger
}

// Migrator creates or updates the tables one repository owns
type Migrator func(db *gorm.DB) error

// Open connects to the database and runs the given migrations
func Open(cfg *Config, migrations ...Migrator) (*gorm.DB, error) {
	if cfg == nil || cfg.DSN == "" {
		return nil, errors.InvalidArgument("database DSN is required")
	}

	if err := ensureDir(cfg.DSN); err != nil {
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(cfg.DSN), &gorm.Config{
		Logger:         newLogger(cfg),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database %s", cfg.DSN)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get database handle")
	}
	// SQLite allows a single writer; in-memory databases are per connection.
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, errors.Wrap(err, "failed to enable foreign keys")
	}

	for _, migrate := range migrations {
		if err := migrate(db); err != nil {
			return nil, errors.Wrap(err, "failed to migrate schema")
		}
	}

	return db, nil
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get database handle")
	}
	return sqlDB.Close()
}

func ensureDir(dsn string) error {
	if dsn == ":memory:" || strings.HasPrefix(dsn, "file:") {
		return nil
	}
	dir := filepath.Dir(dsn)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create database directory %s", dir)
	}
	return nil
}

func newLogger(cfg *Config) logger.Interface {
	base := cfg.Logger
	if base == nil {
		base = slog.Default()
	}

	level := logger.Warn
	if cfg.LogQueries {
		level = logger.Info
	}
	slowQuery := cfg.SlowQuery
	if slowQuery == 0 {
		slowQuery = 200 * time.Millisecond
	}

	return logger.New(
		slog.NewLogLogger(base.With("component", "gorm").Handler(), slog.LevelDebug),
		logger.Config{
			SlowThreshold:             slowQuery,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
