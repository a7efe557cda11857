package main

import (
	"errors"
	"fmt"

	"github.com/juliaogris/jobrunner/pkg/store"
	"github.com/juliaogris/jobrunner/pkg/store/badgerstore"
	"github.com/juliaogris/jobrunner/pkg/store/gormstore"
	"github.com/juliaogris/jobrunner/pkg/store/memstore"
	"github.com/juliaogris/jobrunner/pkg/store/pgxstore"
)

var errStoreKind = errors.New("unknown store")

const (
	defaultBadgerDir = "jobrunner.badger"
	badgerInMemory   = ":memory:"
)

// newConnector returns the connector for the store kind. The meaning of dsn
// depends on the kind: a file for sqlite, a directory (or ":memory:") for
// badger and a connection string for postgres and pgx.
func newConnector(kind, dsn string, migrate bool) (store.Connector, error) {
	switch kind {
	case "memory":
		return memstore.Connector{}, nil
	case "sqlite":
		return gormstore.New(gormstore.Config{Dialect: gormstore.DialectSQLite, DSN: dsn}), nil
	case "postgres":
		return gormstore.New(gormstore.Config{Dialect: gormstore.DialectPostgres, DSN: dsn}), nil
	case "pgx":
		return pgxstore.New(pgxstore.Config{DSN: dsn, Migrate: migrate}), nil
	case "badger":
		if dsn == badgerInMemory {
			return badgerstore.New(badgerstore.Config{InMemory: true}), nil
		}
		if dsn == "" {
			dsn = defaultBadgerDir
		}
		return badgerstore.New(badgerstore.Config{Dir: dsn}), nil
	}
	return nil, fmt.Errorf("%w %q", errStoreKind, kind)
}
