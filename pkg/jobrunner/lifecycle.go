package jobrunner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/juliaogris/jobrunner/pkg/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// DefaultDrainTimeout is used when Config.DrainTimeout is zero.
const DefaultDrainTimeout = 10 * time.Second

const opsShutdownTimeout = 5 * time.Second

// State is the server lifecycle state.
type State int

// Lifecycle states, in the only order they are entered.
const (
	StateInit State = iota
	StateConnecting
	StateServing
	StateShuttingDown
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateConnecting:
		return "connecting"
	case StateServing:
		return "serving"
	case StateShuttingDown:
		return "shutting down"
	case StateStopped:
		return "stopped"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Config contains the lifecycle configuration.
type Config struct {
	// Address is the gRPC listen address, e.g. "127.0.0.1:5050". Port 0
	// picks a free port, see [Lifecycle.Addr].
	Address   string
	Connector store.Connector
	// ConnectRetries is the number of additional connect attempts with
	// exponential backoff. Zero fails fast.
	ConnectRetries uint64
	DrainTimeout   time.Duration
	TLS            TLSConfig
	// MetricsAddress enables the ops HTTP endpoint serving /health and
	// /metrics when not empty.
	MetricsAddress string
}

// Lifecycle runs a server through connect, serve, drain and close.
//
// The store is connected before anything is served and closed exactly once
// after every admitted request has finished. A Lifecycle runs once.
type Lifecycle struct {
	config Config

	mutex    sync.Mutex
	state    State
	addr     net.Addr
	opsAddr  net.Addr
	ready    chan struct{}
	registry *prometheus.Registry
}

// NewLifecycle creates a Lifecycle in StateInit.
func NewLifecycle(config Config) *Lifecycle {
	if config.DrainTimeout <= 0 {
		config.DrainTimeout = DefaultDrainTimeout
	}
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &Lifecycle{
		config:   config,
		ready:    make(chan struct{}),
		registry: registry,
	}
}

// State returns the current lifecycle state.
func (l *Lifecycle) State() State {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.state
}

// Ready is closed once the server is serving.
func (l *Lifecycle) Ready() <-chan struct{} {
	return l.ready
}

// Addr returns the bound gRPC address, or nil before serving.
func (l *Lifecycle) Addr() net.Addr {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.addr
}

// OpsAddr returns the bound ops HTTP address, or nil if it is not enabled or
// not yet serving.
func (l *Lifecycle) OpsAddr() net.Addr {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.opsAddr
}

func (l *Lifecycle) setState(s State) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	slog.Debug("lifecycle state", "from", l.state, "to", s)
	l.state = s
}

// RunUntilSignal runs the server until one of the given signals is received.
func (l *Lifecycle) RunUntilSignal(sig ...os.Signal) error {
	ctx, stop := signal.NotifyContext(context.Background(), sig...)
	defer stop()
	return l.Run(ctx)
}

// Run connects the store, serves until ctx is done or serving fails, then
// drains and closes the store.
//
// A connect failure returns an error wrapping store.ErrConnection without
// serving. A listen failure closes the store and returns an error wrapping
// ErrListen. After serving, Run returns nil unless the serve loop failed; a
// drain timeout or a store close failure is logged but not returned.
func (l *Lifecycle) Run(ctx context.Context) error {
	l.setState(StateConnecting)
	handle, err := l.connect(ctx)
	if err != nil {
		l.setState(StateStopped)
		slog.Error("cannot connect to store", "err", err)
		return err
	}
	slog.Info("connected to store")

	lis, err := net.Listen("tcp", l.config.Address)
	if err != nil {
		l.closeStore(handle)
		l.setState(StateStopped)
		return fmt.Errorf("%w: address %q: %w", ErrListen, l.config.Address, err)
	}
	server, err := NewServer(handle, WithTLS(l.config.TLS), WithMetrics(NewMetrics(l.registry)))
	if err != nil {
		_ = lis.Close()
		l.closeStore(handle)
		l.setState(StateStopped)
		return err
	}
	ops, err := l.startOps()
	if err != nil {
		_ = lis.Close()
		l.closeStore(handle)
		l.setState(StateStopped)
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(lis)
	}()
	l.mutex.Lock()
	l.addr = lis.Addr()
	l.state = StateServing
	l.mutex.Unlock()
	close(l.ready)
	slog.Info("serving", "address", lis.Addr().String())

	var runErr error
	select {
	case <-ctx.Done():
		slog.Info("shutdown requested")
	case err := <-serveErr:
		if err != nil {
			slog.Error("serve failed", "err", err)
			runErr = err
		}
	}

	server.refuseNew()
	l.setState(StateShuttingDown)
	drainCtx, cancel := context.WithTimeout(context.Background(), l.config.DrainTimeout)
	defer cancel()
	if err := server.Drain(drainCtx); err != nil {
		slog.Warn("drain incomplete", "err", err)
	}
	if ops != nil {
		l.stopOps(ops)
	}
	l.closeStore(handle)
	l.setState(StateStopped)
	slog.Info("shutdown complete")
	return runErr
}

// connect opens the store, retrying with exponential backoff up to
// ConnectRetries times.
func (l *Lifecycle) connect(ctx context.Context) (*store.Handle, error) {
	var handle *store.Handle
	attempt := 0
	op := func() error {
		attempt++
		h, err := store.Connect(ctx, l.config.Connector)
		if err != nil {
			slog.Warn("store connect attempt failed", "attempt", attempt, "err", err)
			return err
		}
		handle = h
		return nil
	}
	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), l.config.ConnectRetries), ctx)
	if err := backoff.Retry(op, b); err != nil {
		if !errors.Is(err, store.ErrConnection) {
			err = fmt.Errorf("%w: %w", store.ErrConnection, err)
		}
		return nil, err
	}
	return handle, nil
}

func (l *Lifecycle) closeStore(handle *store.Handle) {
	if err := handle.Close(); err != nil {
		slog.Error("cannot close store", "err", err)
		return
	}
	slog.Info("store closed")
}

func (l *Lifecycle) startOps() (*http.Server, error) {
	if l.config.MetricsAddress == "" {
		return nil, nil //nolint:nilnil // ops endpoint disabled
	}
	lis, err := net.Listen("tcp", l.config.MetricsAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: metrics address %q: %w", ErrListen, l.config.MetricsAddress, err)
	}
	srv := &http.Server{
		Handler:           newOpsHandler(l.registry, l.State),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("ops endpoint failed", "err", err)
		}
	}()
	l.mutex.Lock()
	l.opsAddr = lis.Addr()
	l.mutex.Unlock()
	slog.Info("serving ops endpoint", "address", lis.Addr().String())
	return srv, nil
}

func (l *Lifecycle) stopOps(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), opsShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Warn("cannot shut down ops endpoint", "err", err)
	}
}
