package db

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"canteen/internal/model"
)

// Open returns a connected GORM DB instance for the named driver.
func Open(driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case "mysql":
		return NewMySQL(dsn)
	case "postgres":
		return NewPostgres(dsn)
	case "sqlite":
		return NewSQLite(dsn)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}
}

// NewMySQL returns a connected GORM DB instance.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// NewPostgres returns a connected GORM DB instance.
func NewPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return db, nil
}

// NewSQLite opens a file-backed (or ":memory:") SQLite database,
// creating the parent directory of the file if needed.
func NewSQLite(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); path != ":memory:" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect sqlite: %w", err)
	}
	return db, nil
}

// Models lists every table the application owns, in creation order.
func Models() []interface{} {
	return []interface{}{
		&model.User{},
		&model.MenuItem{},
		&model.QueueEntry{},
	}
}

// Migrate creates or updates all tables. When reset is set the tables are
// dropped first.
func Migrate(db *gorm.DB, reset bool) error {
	if reset {
		if err := db.Migrator().DropTable(Models()...); err != nil {
			return fmt.Errorf("drop tables: %w", err)
		}
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
