package store

import (
	"context"
	"errors"
)

// Sentinel Errors returned by the store package.
//
// ErrClosed and ErrAlreadyClosed are refinements of ErrStore, so
// errors.Is(err, ErrStore) holds for both.
var (
	ErrConnection    = errors.New("store connection error")
	ErrStore         = errors.New("store error")
	ErrClosed        = errors.New("store closed")
	ErrAlreadyClosed = errors.New("store already closed")
)

// Job is a persisted job. The ID is assigned by the backing store, never by
// the client.
type Job struct {
	ID   int64
	Name string
}

// Record is the input for a single job write.
type Record struct {
	Name string
}

// ReadWriter is the shared view of a store that request handlers use. It
// has no Close method: closing is reserved for the owner of the
// [Handle].
type ReadWriter interface {
	// WriteOne persists one job row. It does not return the assigned ID.
	WriteOne(ctx context.Context, r Record) error
	// ReadAll returns all persisted jobs. It performs a full scan.
	ReadAll(ctx context.Context) ([]Job, error)
}

// Session is a live connection to a backing store, as returned by a
// [Connector]. Implementations must be safe for concurrent use by multiple
// goroutines.
type Session interface {
	ReadWriter
	Close() error
}

// Connector establishes a [Session] to a backing store.
type Connector interface {
	Connect(ctx context.Context) (Session, error)
}

// ConnectorFunc adapts a function to the [Connector] interface.
type ConnectorFunc func(ctx context.Context) (Session, error)

// Connect calls f(ctx).
func (f ConnectorFunc) Connect(ctx context.Context) (Session, error) {
	return f(ctx)
}

// State is the connection state of a store handle.
type State int

// States of a store handle. A [Handle] can only be obtained through
// [Connect], so an existing handle is either connected or closed.
const (
	StateUnconnected State = iota
	StateConnected
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUnconnected:
		return "unconnected"
	case StateConnected:
		return "connected"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}
