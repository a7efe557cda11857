package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/juliaogris/jobrunner/pkg/store"
	"github.com/juliaogris/jobrunner/pkg/store/badgerstore"
	"github.com/juliaogris/jobrunner/pkg/store/gormstore"
	"github.com/juliaogris/jobrunner/pkg/store/memstore"
	"github.com/juliaogris/jobrunner/pkg/store/pgxstore"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	a := parse(t, nil)
	require.Equal(t, "127.0.0.1:5050", a.Address)
	require.Equal(t, "sqlite", a.Store)
	require.Equal(t, 10*time.Second, a.DrainTimeout)
	require.Zero(t, a.ConnectRetries)
	require.Equal(t, "info", a.LogLevel)
}

func TestEnv(t *testing.T) {
	t.Setenv("JOBRUNNER_ADDRESS", "127.0.0.1:6060")
	t.Setenv("JOBRUNNER_STORE", "badger")
	t.Setenv("JOBRUNNER_STORE_DSN", "/var/lib/jobrunner")
	t.Setenv("JOBRUNNER_DRAIN_TIMEOUT", "3s")
	t.Setenv("JOBRUNNER_CLIENT_CA_CERT", "client-ca.crt")
	a := parse(t, nil)
	require.Equal(t, "127.0.0.1:6060", a.Address)
	require.Equal(t, "badger", a.Store)
	require.Equal(t, "/var/lib/jobrunner", a.StoreDSN)
	require.Equal(t, 3*time.Second, a.DrainTimeout)

	config := a.lifecycleConfig(memstore.Connector{})
	require.Equal(t, "client-ca.crt", config.TLS.CAFile)
	require.Equal(t, 3*time.Second, config.DrainTimeout)
}

func TestBadStoreFlag(t *testing.T) {
	parser, err := kong.New(&app{}, kong.Exit(func(int) { t.Fatal("unexpected exit by arg parser") }))
	require.NoError(t, err)
	_, err = parser.Parse([]string{"--store", "mongo"})
	require.Error(t, err)
}

func TestNewConnector(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		kind string
		dsn  string
		want store.Connector
	}{
		"memory":          {kind: "memory", want: memstore.Connector{}},
		"sqlite":          {kind: "sqlite", dsn: "jobs.db", want: gormstore.New(gormstore.Config{Dialect: gormstore.DialectSQLite, DSN: "jobs.db"})},
		"postgres":        {kind: "postgres", dsn: "postgres://db", want: gormstore.New(gormstore.Config{Dialect: gormstore.DialectPostgres, DSN: "postgres://db"})},
		"pgx":             {kind: "pgx", dsn: "postgres://db", want: pgxstore.New(pgxstore.Config{DSN: "postgres://db", Migrate: true})},
		"badger":          {kind: "badger", want: badgerstore.New(badgerstore.Config{Dir: defaultBadgerDir})},
		"badger-inmemory": {kind: "badger", dsn: ":memory:", want: badgerstore.New(badgerstore.Config{InMemory: true})},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := newConnector(tc.kind, tc.dsn, true)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
	_, err := newConnector("mongo", "", false)
	require.ErrorIs(t, err, errStoreKind)
}

func TestRunUntilCancelled(t *testing.T) {
	logs := &bytes.Buffer{}
	a := parse(t, []string{
		"--address", "127.0.0.1:0",
		"--store-dsn", filepath.Join(t.TempDir(), "jobs.db"),
		"--log-format", "json",
		"--drain-timeout", "1s",
	})
	a.logOutput = logs
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, a.run(ctx))
	require.Contains(t, logs.String(), `"msg":"serving"`)
	require.Contains(t, logs.String(), `"msg":"store closed"`)
	require.Contains(t, logs.String(), `"msg":"shutdown complete"`)
}

func TestRunConnectFailure(t *testing.T) {
	a := parse(t, []string{"--address", "127.0.0.1:0", "--store", "postgres"})
	a.logOutput = &bytes.Buffer{}
	err := a.run(context.Background())
	require.ErrorIs(t, err, store.ErrConnection)
	require.ErrorIs(t, err, gormstore.ErrConfig)
}

func parse(t *testing.T, args []string) *app {
	t.Helper()
	a := &app{}
	parser, err := kong.New(a, kong.Exit(func(int) { t.Fatal("unexpected exit by arg parser") }))
	require.NoError(t, err)
	_, err = parser.Parse(args)
	require.NoError(t, err)
	return a
}
