package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// dsnPragmas are appended to the DSN so the driver applies them to every
// connection the pool opens, not just the first one handed out. Foreign key
// enforcement is off by default in SQLite and has to be switched on per
// connection.
const dsnPragmas = "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

// Open opens (creating if needed) the SQLite database at path with the
// engine pragmas set. The parent directory is created if absent.
func Open(path string, gormConfig *gorm.Config) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	if gormConfig == nil {
		gormConfig = &gorm.Config{}
	}

	db, err := gorm.Open(sqlite.Open(path+dsnPragmas), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return db, nil
}

// Transaction runs fn inside a database transaction bound to ctx.
func Transaction(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn)
}
