// Package gormstore provides a store backend on top of GORM. It supports
// SQLite (single node, default) and PostgreSQL through the same code.
//
// The jobs table is created with GORM AutoMigrate on connect.
package gormstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/juliaogris/jobrunner/pkg/store"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialect selects the database behind GORM.
type Dialect string

const (
	// DialectSQLite uses a SQLite file.
	DialectSQLite Dialect = "sqlite"

	// DialectPostgres uses PostgreSQL.
	DialectPostgres Dialect = "postgres"
)

// ErrConfig is returned for invalid configurations.
var ErrConfig = errors.New("invalid gorm store configuration")

// Config contains the database configuration.
type Config struct {
	Dialect Dialect
	// DSN is the SQLite file path or the PostgreSQL connection string.
	DSN string

	MaxOpenConns int
	MaxIdleConns int
}

// ApplyDefaults fills in missing configuration with default values.
func (c *Config) ApplyDefaults() {
	if c.Dialect == "" {
		c.Dialect = DialectSQLite
	}
	if c.Dialect == DialectSQLite && c.DSN == "" {
		c.DSN = "jobrunner.db"
	}
	if c.MaxOpenConns == 0 {
		c.MaxOpenConns = 25
	}
	if c.MaxIdleConns == 0 {
		c.MaxIdleConns = 5
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Dialect {
	case DialectSQLite, DialectPostgres:
	default:
		return fmt.Errorf("%w: unsupported dialect %q", ErrConfig, c.Dialect)
	}
	if c.DSN == "" {
		return fmt.Errorf("%w: %s DSN is required", ErrConfig, c.Dialect)
	}
	return nil
}

// jobRow is the database representation of a job.
type jobRow struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName overrides GORM's default "job_rows".
func (jobRow) TableName() string {
	return "jobs"
}

// Connector opens GORM sessions.
type Connector struct {
	config Config
}

// New creates a Connector for the given configuration. The configuration is
// validated on Connect.
func New(config Config) *Connector {
	config.ApplyDefaults()
	return &Connector{config: config}
}

// Connect opens the database, verifies it is reachable and migrates the
// jobs table.
func (c *Connector) Connect(ctx context.Context) (store.Session, error) {
	if err := c.config.Validate(); err != nil {
		return nil, err
	}
	dialector, err := c.dialector()
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("cannot open %s database: %w", c.config.Dialect, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("cannot get underlying database: %w", err)
	}
	sqlDB.SetMaxOpenConns(c.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(c.config.MaxIdleConns)
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("cannot reach %s database: %w", c.config.Dialect, err)
	}
	if err := db.WithContext(ctx).AutoMigrate(&jobRow{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("cannot migrate jobs table: %w", err)
	}
	return &session{db: db}, nil
}

func (c *Connector) dialector() (gorm.Dialector, error) {
	switch c.config.Dialect {
	case DialectSQLite:
		if err := os.MkdirAll(filepath.Dir(c.config.DSN), 0o750); err != nil {
			return nil, fmt.Errorf("cannot create database directory: %w", err)
		}
		// WAL allows concurrent readers next to a single writer; busy_timeout
		// makes writers wait for the lock instead of failing.
		dsn := c.config.DSN
		if !strings.Contains(dsn, "?") {
			dsn += "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
		}
		return sqlite.Open(dsn), nil
	case DialectPostgres:
		return postgres.Open(c.config.DSN), nil
	default:
		return nil, fmt.Errorf("%w: unsupported dialect %q", ErrConfig, c.config.Dialect)
	}
}

// session is safe for concurrent use; *gorm.DB manages a connection pool.
type session struct {
	db *gorm.DB
}

func (s *session) WriteOne(ctx context.Context, r store.Record) error {
	row := jobRow{Name: r.Name}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("cannot insert job: %w", err)
	}
	return nil
}

func (s *session) ReadAll(ctx context.Context) ([]store.Job, error) {
	var rows []jobRow
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("cannot query jobs: %w", err)
	}
	jobs := make([]store.Job, len(rows))
	for i, row := range rows {
		jobs[i] = store.Job{ID: row.ID, Name: row.Name}
	}
	return jobs, nil
}

func (s *session) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("cannot get underlying database: %w", err)
	}
	return sqlDB.Close()
}
