// Package memstore provides a volatile in-memory store backend. Jobs are lost
// when the session is closed. It is useful for local runs and tests.
package memstore

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/juliaogris/jobrunner/pkg/store"
)

// ErrSessionClosed is returned by sessions used after Close.
var ErrSessionClosed = errors.New("memory session closed")

// Connector creates independent in-memory sessions.
type Connector struct{}

// Connect returns a new, empty in-memory session.
func (Connector) Connect(ctx context.Context) (store.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &session{}, nil
}

type session struct {
	mutex  sync.Mutex
	jobs   []store.Job
	maxID  int64
	closed bool
}

func (s *session) WriteOne(ctx context.Context, r store.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.maxID++
	s.jobs = append(s.jobs, store.Job{ID: s.maxID, Name: r.Name})
	return nil
}

func (s *session) ReadAll(ctx context.Context) ([]store.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.closed {
		return nil, ErrSessionClosed
	}
	return slices.Clone(s.jobs), nil
}

func (s *session) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.closed = true
	s.jobs = nil
	return nil
}
