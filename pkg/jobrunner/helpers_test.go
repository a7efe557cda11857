package jobrunner_test

import (
	"context"
	"errors"
	"net"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/juliaogris/jobrunner/pkg/jobrunner"
	"github.com/juliaogris/jobrunner/pkg/store"
	"github.com/stretchr/testify/require"
)

var errTestStore = errors.New("test store failure")

// gateSession is a store session whose writes block until the gate is
// opened or the request context is done. It records how many calls were
// active when Close was called.
type gateSession struct {
	entered chan struct{}
	gate    chan struct{}
	open    sync.Once

	active        atomic.Int64
	closes        atomic.Int64
	activeAtClose atomic.Int64

	mutex sync.Mutex
	jobs  []store.Job
}

func newGateSession() *gateSession {
	return &gateSession{
		entered: make(chan struct{}, 100),
		gate:    make(chan struct{}),
	}
}

func (s *gateSession) openGate() {
	s.open.Do(func() { close(s.gate) })
}

func (s *gateSession) WriteOne(ctx context.Context, r store.Record) error {
	s.active.Add(1)
	defer s.active.Add(-1)
	s.entered <- struct{}{}
	select {
	case <-s.gate:
	case <-ctx.Done():
		return ctx.Err()
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.jobs = append(s.jobs, store.Job{ID: int64(len(s.jobs) + 1), Name: r.Name})
	return nil
}

func (s *gateSession) ReadAll(_ context.Context) ([]store.Job, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return append([]store.Job(nil), s.jobs...), nil
}

func (s *gateSession) Close() error {
	s.activeAtClose.Store(s.active.Load())
	s.closes.Add(1)
	return nil
}

func (s *gateSession) connector() store.Connector {
	return store.ConnectorFunc(func(context.Context) (store.Session, error) {
		return s, nil
	})
}

// failingStore fails every call and counts writes that reached it.
type failingStore struct {
	writes atomic.Int64
}

func (s *failingStore) WriteOne(context.Context, store.Record) error {
	s.writes.Add(1)
	return errTestStore
}

func (s *failingStore) ReadAll(context.Context) ([]store.Job, error) {
	return nil, errTestStore
}

// writeFailingStore passes reads through to a real store and fails every
// write before it reaches it.
type writeFailingStore struct {
	store.ReadWriter
}

func (writeFailingStore) WriteOne(context.Context, store.Record) error {
	return errTestStore
}

func newTestServer(t *testing.T, rw store.ReadWriter, opts ...jobrunner.ServerOption) (*jobrunner.Server, string) {
	t.Helper()
	server, err := jobrunner.NewServer(rw, opts...)
	require.NoError(t, err)
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		if err := server.Serve(lis); err != nil {
			t.Errorf("cannot start test server %v", err)
		}
	}()
	return server, lis.Addr().String()
}

func newTestClient(t *testing.T, address string) *jobrunner.Client {
	t.Helper()
	client, err := jobrunner.NewClient(address, jobrunner.TLSConfig{})
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, client.Close()) })
	return client
}
