// Package badgerstore provides an embedded key-value store backend using
// BadgerDB.
//
// Jobs are stored under the "job:" prefix keyed by their big-endian ID, so a
// prefix scan returns them in ID order. IDs come from a badger sequence;
// leased but unused IDs are skipped after a restart, so IDs are increasing
// but not necessarily contiguous.
package badgerstore

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"

	badgerdb "github.com/dgraph-io/badger/v4"
	"github.com/juliaogris/jobrunner/pkg/store"
)

// ErrConfig is returned for invalid configurations.
var ErrConfig = errors.New("invalid badger store configuration")

const (
	prefixJob     = "job:"
	keyJobSeq     = "seq:job"
	seqBandwidth  = 100
	jobKeyIDBytes = 8
)

// Config contains the badger store configuration.
type Config struct {
	// Dir is the database directory. It must be empty when InMemory is set.
	Dir      string
	InMemory bool
}

// Connector opens badger sessions.
type Connector struct {
	config Config
}

// New creates a Connector for the given configuration.
func New(config Config) *Connector {
	return &Connector{config: config}
}

// Connect opens the database and leases the job ID sequence.
func (c *Connector) Connect(ctx context.Context) (store.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.config.InMemory == (c.config.Dir != "") {
		return nil, fmt.Errorf("%w: exactly one of directory or in-memory is required", ErrConfig)
	}
	opts := badgerdb.DefaultOptions(c.config.Dir).
		WithInMemory(c.config.InMemory).
		WithLogger(slogLogger{slog.Default().With("component", "badger")})
	db, err := badgerdb.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("cannot open badger database: %w", err)
	}
	seq, err := db.GetSequence([]byte(keyJobSeq), seqBandwidth)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("cannot lease job sequence: %w", err)
	}
	return &session{db: db, seq: seq}, nil
}

// session is safe for concurrent use: badger transactions are independent
// and the sequence is internally synchronized.
type session struct {
	db  *badgerdb.DB
	seq *badgerdb.Sequence
}

func (s *session) WriteOne(ctx context.Context, r store.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n, err := s.seq.Next()
	if err != nil {
		return fmt.Errorf("cannot allocate job ID: %w", err)
	}
	// badger sequences start at 0, job IDs at 1.
	id := int64(n) + 1 //nolint:gosec // G115: sequence stays far below MaxInt64
	return s.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Set(jobKey(id), []byte(r.Name))
	})
}

func (s *session) ReadAll(ctx context.Context) ([]store.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var jobs []store.Job
	err := s.db.View(func(txn *badgerdb.Txn) error {
		prefix := []byte(prefixJob)
		opts := badgerdb.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			id, err := jobID(item.Key())
			if err != nil {
				return err
			}
			name, err := item.ValueCopy(nil)
			if err != nil {
				return fmt.Errorf("cannot read job %d: %w", id, err)
			}
			jobs = append(jobs, store.Job{ID: id, Name: string(name)})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *session) Close() error {
	var errs []error
	if err := s.seq.Release(); err != nil {
		errs = append(errs, fmt.Errorf("cannot release job sequence: %w", err))
	}
	if err := s.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("cannot close badger database: %w", err))
	}
	return errors.Join(errs...)
}

func jobKey(id int64) []byte {
	key := make([]byte, len(prefixJob)+jobKeyIDBytes)
	copy(key, prefixJob)
	binary.BigEndian.PutUint64(key[len(prefixJob):], uint64(id)) //nolint:gosec // G115: IDs are positive
	return key
}

func jobID(key []byte) (int64, error) {
	if len(key) != len(prefixJob)+jobKeyIDBytes {
		return 0, fmt.Errorf("malformed job key %q", key)
	}
	return int64(binary.BigEndian.Uint64(key[len(prefixJob):])), nil //nolint:gosec // G115: written by jobKey
}

// slogLogger bridges badger's logger to slog. Badger is chatty at info
// level, so its info messages are logged at debug level.
type slogLogger struct {
	logger *slog.Logger
}

func (l slogLogger) Errorf(format string, args ...any) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l slogLogger) Warningf(format string, args ...any) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l slogLogger) Infof(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l slogLogger) Debugf(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}
