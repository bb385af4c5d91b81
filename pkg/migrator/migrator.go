// Package migrator applies goose SQL migrations at process startup, so the
// api and worker binaries never run against a stale schema.
package migrator

import (
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// RunMigrations opens its own short-lived connection to dbURL and applies
// every pending migration found in files. The FS is expected to be rooted at
// the directory holding the .sql files (see the embed directive in
// migrations/product/run.go).
func RunMigrations(dbURL string, files fs.FS) error {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return fmt.Errorf("migrator: open database: %w", err)
	}
	defer db.Close() //nolint:errcheck

	goose.SetBaseFS(files)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("migrator: set dialect: %w", err)
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migrator: apply migrations: %w", err)
	}
	return nil
}
