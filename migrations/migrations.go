// Package migrations embeds the database schema and applies it with
// golang-migrate.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var FS embed.FS

const dir = "sql"

// Up applies every pending migration to a Postgres database.
func Up(db *sql.DB) error {
	src, err := iofs.New(FS, dir)
	if err != nil {
		return fmt.Errorf("open migration source: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("open migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// UpStatements returns the statements of every up migration in version order.
// It is used to build the schema on engines golang-migrate is not wired for.
func UpStatements() ([]string, error) {
	entries, err := fs.ReadDir(FS, dir)
	if err != nil {
		return nil, err
	}

	var stmts []string
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".up.sql") {
			continue
		}
		body, err := fs.ReadFile(FS, dir+"/"+entry.Name())
		if err != nil {
			return nil, err
		}
		for _, stmt := range strings.Split(string(body), ";") {
			if stmt = strings.TrimSpace(stmt); stmt != "" {
				stmts = append(stmts, stmt)
			}
		}
	}
	return stmts, nil
}
