package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/katalog/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the SQLite file at dbPath and makes sure the schema exists.
// The pool is limited to a single connection which is held for the lifetime
// of the process.
func NewDatabase(dbPath string, logLevel logger.LogLevel) (*Database, error) {
	if err := ensureDataDir(dbPath); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.New(log.Default(), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)

	database := &Database{DB: db}
	if err := database.Migrate(); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

// Migrate creates missing tables. Safe to call on every startup.
func (d *Database) Migrate() error {
	if err := d.DB.AutoMigrate(&entities.Book{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ParseLogLevel maps a config value to a gorm log level, defaulting to warn.
func ParseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func ensureDataDir(dbPath string) error {
	if dbPath == "" || strings.HasPrefix(dbPath, ":memory:") || strings.HasPrefix(dbPath, "file:") {
		return nil
	}
	return os.MkdirAll(filepath.Dir(dbPath), 0o755)
}
