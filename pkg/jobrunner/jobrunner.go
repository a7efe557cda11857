package jobrunner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/juliaogris/jobrunner/pkg/pb"
	"github.com/juliaogris/jobrunner/pkg/store"
	"google.golang.org/grpc"
)

// Sentinel Errors returned by the jobrunner package.
var (
	ErrCredentials  = errors.New("credentials setup error")
	ErrCertLoad     = errors.New("certificate load error")
	ErrCASetup      = errors.New("CA setup error")
	ErrClientConn   = errors.New("client connection error")
	ErrListen       = errors.New("listen error")
	ErrDrainTimeout = errors.New("drain timeout")
)

// Client is a wrapper around the generated gRPC client for the JobRunner
// service. It owns the underlying connection.
type Client struct {
	pb.JobRunnerClient
	conn *grpc.ClientConn
}

// Server is a wrapper around the gRPC server for the JobRunner service.
// Every RPC is admitted through a request tracker, which is what lets
// [Server.Drain] guarantee that no handler still uses the store when it
// returns.
type Server struct {
	*grpc.Server
	tracker *tracker
}

// ServerOption configures a [Server].
type ServerOption func(*serverOptions)

type serverOptions struct {
	tls     TLSConfig
	metrics *Metrics
}

// WithTLS serves TLS 1.3 with the given certificate. A CA file turns on
// client certificate verification (mTLS).
func WithTLS(tlsConfig TLSConfig) ServerOption {
	return func(o *serverOptions) { o.tls = tlsConfig }
}

// WithMetrics records per-RPC prometheus metrics.
func WithMetrics(m *Metrics) ServerOption {
	return func(o *serverOptions) { o.metrics = m }
}

// NewClient creates a new JobRunner client for the server at the specified
// address. The connection is plaintext unless tlsConfig has at least one
// file set, see [TLSConfig].
//
// If there is an error setting up the TLS configuration or the connection,
// an error is returned.
func NewClient(address string, tlsConfig TLSConfig) (*Client, error) {
	creds, err := tlsConfig.clientCredentials()
	if err != nil {
		return nil, fmt.Errorf("NewClient: %w: %w", ErrCredentials, err)
	}
	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("NewClient: address %q: %w", address, err)
	}
	return &Client{
		JobRunnerClient: pb.NewJobRunnerClient(conn),
		conn:            conn,
	}, nil
}

// Close closes the client's connection to the server.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	if err := c.conn.Close(); err != nil {
		return fmt.Errorf("%w: cannot close: %w", ErrClientConn, err)
	}
	return nil
}

// NewServer creates a new JobRunner server whose handlers use rw.
//
// The server only borrows rw: it never closes it. The owner must call
// [Server.Drain] before closing the store.
func NewServer(rw store.ReadWriter, opts ...ServerOption) (*Server, error) {
	var o serverOptions
	for _, opt := range opts {
		opt(&o)
	}
	creds, err := o.tls.serverCredentials()
	if err != nil {
		return nil, fmt.Errorf("NewServer: %w: %w", ErrCredentials, err)
	}
	t := newTracker()
	interceptors := []grpc.UnaryServerInterceptor{unaryInterceptorLog}
	if o.metrics != nil {
		interceptors = append(interceptors, o.metrics.unaryInterceptor)
	}
	// Tracking runs last so that rejected requests are still logged and
	// counted.
	interceptors = append(interceptors, t.unaryInterceptor)

	grpcOpts := []grpc.ServerOption{
		grpc.Creds(creds),
		grpc.ChainUnaryInterceptor(interceptors...),
		grpc.WaitForHandlers(true),
	}
	grpcServer := grpc.NewServer(grpcOpts...)
	pb.RegisterJobRunnerServer(grpcServer, &Service{Store: rw})
	return &Server{
		Server:  grpcServer,
		tracker: t,
	}, nil
}

// Drain stops the server and waits until no handler is in flight.
//
// New requests are rejected with codes.Unavailable as soon as Drain is
// called. Requests already admitted run to completion under GracefulStop.
// If ctx is done before that, the server is stopped forcefully, which
// cancels the contexts of the remaining requests, and ErrDrainTimeout is
// returned. In both cases Drain only returns once every admitted handler
// has returned.
func (s *Server) Drain(ctx context.Context) error {
	s.refuseNew()
	stopped := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(stopped)
	}()
	var err error
	select {
	case <-stopped:
	case <-ctx.Done():
		slog.Warn("drain deadline exceeded, cancelling in-flight requests", "in_flight", s.InFlight())
		s.Stop()
		<-stopped
		err = fmt.Errorf("%w: %w", ErrDrainTimeout, ctx.Err())
	}
	s.tracker.wait()
	return err
}

// InFlight returns the number of admitted requests whose handlers have not
// yet returned.
func (s *Server) InFlight() int64 {
	return s.tracker.count()
}

func (s *Server) refuseNew() {
	s.tracker.drain()
}
