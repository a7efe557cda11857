package memstore_test

import (
	"context"
	"testing"

	"github.com/juliaogris/jobrunner/pkg/store"
	"github.com/juliaogris/jobrunner/pkg/store/memstore"
	"github.com/stretchr/testify/require"
)

func TestSessionSimple(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, err := memstore.Connector{}.Connect(ctx)
	require.NoError(t, err)

	require.NoError(t, s.WriteOne(ctx, store.Record{Name: "a"}))
	require.NoError(t, s.WriteOne(ctx, store.Record{Name: "b"}))
	jobs, err := s.ReadAll(ctx)
	require.NoError(t, err)
	require.Equal(t, []store.Job{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}, jobs)

	// the returned slice is a copy
	jobs[0].Name = "changed"
	jobs, err = s.ReadAll(ctx)
	require.NoError(t, err)
	require.Equal(t, "a", jobs[0].Name)

	require.NoError(t, s.Close())
	require.ErrorIs(t, s.WriteOne(ctx, store.Record{Name: "c"}), memstore.ErrSessionClosed)
	_, err = s.ReadAll(ctx)
	require.ErrorIs(t, err, memstore.ErrSessionClosed)
}

func TestSessionsAreIndependent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s1, err := memstore.Connector{}.Connect(ctx)
	require.NoError(t, err)
	s2, err := memstore.Connector{}.Connect(ctx)
	require.NoError(t, err)
	require.NoError(t, s1.WriteOne(ctx, store.Record{Name: "only-in-s1"}))
	jobs, err := s2.ReadAll(ctx)
	require.NoError(t, err)
	require.Empty(t, jobs)
}

func TestCancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := memstore.Connector{}.Connect(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
