package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ferroxide/chatstore/config"
	"github.com/ferroxide/chatstore/internal/model"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const appDirName = ".chatstore"

// Open connects to the configured engine and tunes the connection pool.
// It retries briefly so a containerized database has time to come up.
//
// Referential integrity must stay active for every connection for the whole
// process lifetime: cascading deletion is the only thing keeping dependent
// rows from being orphaned. Postgres enforces foreign keys unconditionally;
// for SQLite the foreign_keys pragma is forced into the DSN so each pooled
// connection gets it.
func Open(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverPostgres:
		dsn := BuildPostgresDSN(cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName)
		dialector = postgres.Open(dsn)
	case DriverSQLite, "":
		path := cfg.SQLitePath
		if path == "" {
			var err error
			path, err = DefaultSQLitePath()
			if err != nil {
				return nil, err
			}
		}
		dialector = sqlite.Open(sqliteDSN(path))
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}

	var db *gorm.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = gorm.Open(dialector, &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err == nil {
			break
		}
		time.Sleep(time.Duration(500+i*200) * time.Millisecond)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.Driver == DriverPostgres {
		sqlDB.SetMaxIdleConns(orDefault(cfg.MaxIdleConns, 5))
		sqlDB.SetMaxOpenConns(orDefault(cfg.MaxOpenConns, 20))
		sqlDB.SetConnMaxLifetime(time.Hour)
	} else {
		// One connection only: the SQLite driver allows a single writer, and
		// an in-memory database exists per connection.
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// Migrate creates or updates the schema for all persisted entities,
// including the foreign keys that drive cascading deletion.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Room{},
		&model.Membership{},
		&model.Message{},
	)
}

// BuildPostgresDSN assembles a Postgres DSN from its parts.
func BuildPostgresDSN(host, port, user, password, dbname string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)
}

// DefaultSQLitePath returns the database file under the per-user application
// directory ($HOME/.chatstore), creating the directory if needed.
func DefaultSQLitePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	dir := filepath.Join(home, appDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create application directory: %w", err)
	}
	return filepath.Join(dir, "chatstore.db"), nil
}

// sqliteDSN appends the foreign_keys pragma unless the caller already set it.
func sqliteDSN(path string) string {
	if strings.Contains(path, "_pragma=foreign_keys") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)"
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
