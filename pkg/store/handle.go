// Package store provides the store handle shared by the jobrunner service and
// the interfaces implemented by the store backends.
//
// A [Handle] owns exactly one [Session] to a backing store. It is created in
// the connected state by [Connect] and can be closed exactly once; there is
// no reconnect path.
//
// ## Concurrency:
// WriteOne and ReadAll may be called concurrently. Close waits for store
// calls that are already inside the handle before closing the session. The
// handle provides no cross-call transactional isolation; that is left to the
// backing store.
package store

import (
	"context"
	"fmt"
	"sync"
)

// Handle is a connected store session with an explicit lifecycle state.
type Handle struct {
	mutex   sync.RWMutex // write-locked by Close only
	state   State
	session Session
}

var _ ReadWriter = (*Handle)(nil)

// Connect establishes a session with the given connector and returns a
// connected handle. It must be called once per handle. Failures wrap
// [ErrConnection].
func Connect(ctx context.Context, c Connector) (*Handle, error) {
	session, err := c.Connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}
	return &Handle{state: StateConnected, session: session}, nil
}

// WriteOne persists one job row. Failures wrap [ErrStore]; calls after
// Close fail with [ErrClosed].
func (h *Handle) WriteOne(ctx context.Context, r Record) error {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	if h.state != StateConnected {
		return fmt.Errorf("%w: write: %w", ErrStore, ErrClosed)
	}
	if err := h.session.WriteOne(ctx, r); err != nil {
		return fmt.Errorf("%w: write %q: %w", ErrStore, r.Name, err)
	}
	return nil
}

// ReadAll returns all persisted jobs. Failures wrap [ErrStore]; calls after
// Close fail with [ErrClosed].
func (h *Handle) ReadAll(ctx context.Context) ([]Job, error) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	if h.state != StateConnected {
		return nil, fmt.Errorf("%w: read: %w", ErrStore, ErrClosed)
	}
	jobs, err := h.session.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: read: %w", ErrStore, err)
	}
	return jobs, nil
}

// Close releases the session and moves the handle to the terminal closed
// state. The state changes even if the session fails to close. Calls after
// the first return [ErrAlreadyClosed].
func (h *Handle) Close() error {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if h.state == StateClosed {
		return fmt.Errorf("%w: %w", ErrStore, ErrAlreadyClosed)
	}
	h.state = StateClosed
	if err := h.session.Close(); err != nil {
		return fmt.Errorf("%w: close: %w", ErrStore, err)
	}
	return nil
}

// State returns the current state of the handle.
func (h *Handle) State() State {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.state
}
