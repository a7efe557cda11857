//go:build integration

package pgxstore_test

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/juliaogris/jobrunner/pkg/store"
	"github.com/juliaogris/jobrunner/pkg/store/pgxstore"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// IntegrationTestSuite runs the pgx store against a PostgreSQL container.
type IntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	dsn       string
	handle    *store.Handle
}

func TestIntegration(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}

func (s *IntegrationTestSuite) SetupSuite() {
	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("jobrunner"),
		postgres.WithUsername("jobrunner"),
		postgres.WithPassword("jobrunner"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container
	s.dsn, err = container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.handle, err = store.Connect(ctx, pgxstore.New(pgxstore.Config{DSN: s.dsn, Migrate: true}))
	s.Require().NoError(err)

	// migrations are idempotent
	s.Require().NoError(pgxstore.Migrate(ctx, s.dsn))
}

func (s *IntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	conn, err := pgx.Connect(ctx, s.dsn)
	s.Require().NoError(err)
	defer func() { s.Require().NoError(conn.Close(ctx)) }()
	_, err = conn.Exec(ctx, "TRUNCATE TABLE jobs RESTART IDENTITY")
	s.Require().NoError(err)
}

func (s *IntegrationTestSuite) TearDownSuite() {
	if s.handle != nil {
		s.Require().NoError(s.handle.Close())
	}
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *IntegrationTestSuite) TestWriteThenRead() {
	ctx := context.Background()
	s.Require().NoError(s.handle.WriteOne(ctx, store.Record{Name: "build-report"}))
	s.Require().NoError(s.handle.WriteOne(ctx, store.Record{Name: ""}))
	jobs, err := s.handle.ReadAll(ctx)
	s.Require().NoError(err)
	s.Require().Equal([]store.Job{{ID: 1, Name: "build-report"}, {ID: 2, Name: ""}}, jobs)
}

func (s *IntegrationTestSuite) TestConcurrentWrites() {
	ctx := context.Background()
	count := 30
	var wg sync.WaitGroup
	for i := range count {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.NoError(s.handle.WriteOne(ctx, store.Record{Name: fmt.Sprintf("job-%d", i)}))
		}()
	}
	wg.Wait()
	jobs, err := s.handle.ReadAll(ctx)
	s.Require().NoError(err)
	s.Require().Len(jobs, count)
}

func (s *IntegrationTestSuite) TestConnectWithoutMigrate() {
	ctx := context.Background()
	h, err := store.Connect(ctx, pgxstore.New(pgxstore.Config{DSN: s.dsn}))
	s.Require().NoError(err)
	s.Require().NoError(h.Close())
}

func (s *IntegrationTestSuite) TestConnectUnmigrated() {
	ctx := context.Background()
	conn, err := pgx.Connect(ctx, s.dsn)
	s.Require().NoError(err)
	defer func() { s.Require().NoError(conn.Close(ctx)) }()
	_, err = conn.Exec(ctx, "CREATE DATABASE unmigrated")
	s.Require().NoError(err)

	u, err := url.Parse(s.dsn)
	s.Require().NoError(err)
	u.Path = "/unmigrated"
	_, err = store.Connect(ctx, pgxstore.New(pgxstore.Config{DSN: u.String()}))
	s.Require().ErrorIs(err, store.ErrConnection)
	s.Require().ErrorIs(err, pgxstore.ErrSchema)

	h, err := store.Connect(ctx, pgxstore.New(pgxstore.Config{DSN: u.String(), Migrate: true}))
	s.Require().NoError(err)
	defer func() { s.Require().NoError(h.Close()) }()
	jobs, err := h.ReadAll(ctx)
	s.Require().NoError(err)
	s.Require().Empty(jobs)
}
