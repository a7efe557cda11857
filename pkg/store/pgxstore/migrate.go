package pgxstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver for database/sql
	"github.com/juliaogris/jobrunner/pkg/store/pgxstore/migrations"
)

// Migrate applies all pending schema migrations to the database at dsn.
// golang-migrate takes a PostgreSQL advisory lock, so concurrent server
// instances do not race.
func Migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("%w: cannot open database: %w", ErrMigrate, err)
	}
	defer db.Close() //nolint:errcheck // the migrate instance is the only user

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: cannot ping database: %w", ErrMigrate, err)
	}
	m, err := newMigrate(db)
	if err != nil {
		return err
	}
	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		slog.Debug("no migrations to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMigrate, err)
	}
	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("%w: cannot read schema version: %w", ErrMigrate, err)
	}
	slog.Info("applied migrations", "version", version, "dirty", dirty)
	return nil
}

func newMigrate(db *sql.DB) (*migrate.Migrate, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{MigrationsTable: "schema_migrations"})
	if err != nil {
		return nil, fmt.Errorf("%w: cannot create postgres driver: %w", ErrMigrate, err)
	}
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: cannot create source driver: %w", ErrMigrate, err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot create migrate instance: %w", ErrMigrate, err)
	}
	return m, nil
}
