// Package pgxstore provides a PostgreSQL store backend using a native pgx
// connection pool. The schema is managed by embedded golang-migrate
// migrations, applied on connect when enabled.
package pgxstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/juliaogris/jobrunner/pkg/store"
)

// Sentinel Errors returned by the pgxstore package.
var (
	ErrConfig  = errors.New("invalid pgx store configuration")
	ErrMigrate = errors.New("migration error")
	ErrSchema  = errors.New("schema not migrated")
)

// Config contains the pgx store configuration.
type Config struct {
	// DSN is a PostgreSQL connection string in URL or keyword/value format.
	DSN string
	// MaxConns is the maximum pool size; zero keeps the pgxpool default.
	MaxConns int32
	// Migrate applies pending migrations on connect. Without it, Connect
	// fails with ErrSchema if the jobs table does not exist.
	Migrate bool
}

// Connector opens pgx pool sessions.
type Connector struct {
	config Config
}

// New creates a Connector for the given configuration.
func New(config Config) *Connector {
	return &Connector{config: config}
}

// Connect creates the connection pool, verifies the database is reachable
// and optionally runs migrations.
func (c *Connector) Connect(ctx context.Context) (store.Session, error) {
	if c.config.DSN == "" {
		return nil, fmt.Errorf("%w: DSN is required", ErrConfig)
	}
	poolConfig, err := pgxpool.ParseConfig(c.config.DSN)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if c.config.MaxConns > 0 {
		poolConfig.MaxConns = c.config.MaxConns
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("cannot create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("cannot reach database: %w", err)
	}
	if c.config.Migrate {
		if err := Migrate(ctx, c.config.DSN); err != nil {
			pool.Close()
			return nil, err
		}
	}
	if err := checkSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &session{pool: pool}, nil
}

// checkSchema fails if the jobs table does not exist, so an unmigrated
// database is reported on connect rather than on the first request.
func checkSchema(ctx context.Context, pool *pgxpool.Pool) error {
	var exists bool
	if err := pool.QueryRow(ctx, "SELECT to_regclass('jobs') IS NOT NULL").Scan(&exists); err != nil {
		return fmt.Errorf("cannot check schema: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: jobs table missing, enable migrations", ErrSchema)
	}
	return nil
}

// session is safe for concurrent use; pgxpool hands out a connection per
// query.
type session struct {
	pool *pgxpool.Pool
}

func (s *session) WriteOne(ctx context.Context, r store.Record) error {
	if _, err := s.pool.Exec(ctx, "INSERT INTO jobs (name) VALUES ($1)", r.Name); err != nil {
		return fmt.Errorf("cannot insert job: %w", err)
	}
	return nil
}

func (s *session) ReadAll(ctx context.Context) ([]store.Job, error) {
	rows, err := s.pool.Query(ctx, "SELECT id, name FROM jobs ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("cannot query jobs: %w", err)
	}
	jobs, err := pgx.CollectRows(rows, pgx.RowToStructByPos[store.Job])
	if err != nil {
		return nil, fmt.Errorf("cannot scan jobs: %w", err)
	}
	return jobs, nil
}

func (s *session) Close() error {
	s.pool.Close()
	return nil
}
