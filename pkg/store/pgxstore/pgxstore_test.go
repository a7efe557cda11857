package pgxstore_test

import (
	"context"
	"testing"

	"github.com/juliaogris/jobrunner/pkg/store"
	"github.com/juliaogris/jobrunner/pkg/store/pgxstore"
	"github.com/stretchr/testify/require"
)

func TestConnectConfigErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, err := store.Connect(ctx, pgxstore.New(pgxstore.Config{}))
	require.ErrorIs(t, err, store.ErrConnection)
	require.ErrorIs(t, err, pgxstore.ErrConfig)

	_, err = store.Connect(ctx, pgxstore.New(pgxstore.Config{DSN: "postgres://%zz"}))
	require.ErrorIs(t, err, store.ErrConnection)
	require.ErrorIs(t, err, pgxstore.ErrConfig)
}

func TestConnectUnreachable(t *testing.T) {
	t.Parallel()
	dsn := "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1"
	_, err := store.Connect(context.Background(), pgxstore.New(pgxstore.Config{DSN: dsn}))
	require.ErrorIs(t, err, store.ErrConnection)
	require.NotErrorIs(t, err, pgxstore.ErrConfig)
}
