// Package migration applies the embedded schema migrations with golang-migrate.
package migration

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

// Source returns the embedded migrations as a golang-migrate source.
func Source() (source.Driver, error) {
	return iofs.New(migrationsFS, "sql")
}

// EnsureMigrated brings the schema up to the latest embedded version. An
// already current schema is not an error. The migrate instance is left open
// because closing it would close db.
func EnsureMigrated(ctx context.Context, db *sql.DB, log zerolog.Logger, dbHost string) error {
	start := time.Now()
	log = log.With().Str("component", "database").Str("db_host", dbHost).Logger()
	log.Info().Str("event", "db_migration_start").Str("status", "in_progress").Msg("applying schema migrations")

	m, err := newMigrate(db, log)
	if err != nil {
		log.Error().Err(err).Str("event", "db_migration_failed").Str("status", "error").Msg("migration setup failed")
		return err
	}

	done := make(chan error, 1)
	go func() { done <- m.Up() }()

	select {
	case err = <-done:
	case <-ctx.Done():
		m.GracefulStop <- true
		err = <-done
		if err == nil || errors.Is(err, migrate.ErrNoChange) {
			err = ctx.Err()
		}
	}

	switch {
	case errors.Is(err, migrate.ErrNoChange):
		log.Info().Str("event", "db_migration_skip").Str("status", "success").
			Int64("duration_ms", time.Since(start).Milliseconds()).Msg("schema already up to date")
		return nil
	case err != nil:
		log.Error().Err(err).Str("event", "db_migration_failed").Str("status", "error").
			Int64("duration_ms", time.Since(start).Milliseconds()).Msg("migration failed")
		return fmt.Errorf("migration up failed: %w", err)
	}

	version, dirty, _ := m.Version()
	log.Info().Str("event", "db_migration_success").Str("status", "success").
		Uint("version", version).Bool("dirty", dirty).
		Int64("duration_ms", time.Since(start).Milliseconds()).Msg("schema migrated")
	return nil
}

func newMigrate(db *sql.DB, log zerolog.Logger) (*migrate.Migrate, error) {
	src, err := Source()
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}
	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		return nil, fmt.Errorf("create pgx migrate driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		return nil, fmt.Errorf("create migrate instance: %w", err)
	}
	m.Log = migrateLogger{log: log}
	return m, nil
}

// migrateLogger adapts zerolog to migrate.Logger.
type migrateLogger struct {
	log zerolog.Logger
}

func (l migrateLogger) Printf(format string, v ...interface{}) {
	l.log.Info().Str("event", "db_migration_step").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l migrateLogger) Verbose() bool {
	return false
}
