// Jobrunner-server is a gRPC server that accepts job submissions and lists
// submitted jobs from a persistent store.
//
// On start it connects to the store and only then begins serving. On SIGINT
// or SIGTERM it stops accepting requests, waits for in-flight requests to
// finish (up to the drain timeout), closes the store and exits with status
// 0. A store connect or listen failure exits non-zero.
//
// The server can be configured with the following options:
//
//   - `--address`: The address to listen on.
//   - `--store`: The store backend: memory, sqlite, postgres, pgx or badger.
//   - `--store-dsn`: The sqlite file, badger directory or postgres DSN.
//   - `--store-migrate`: Apply embedded migrations on connect (pgx).
//   - `--connect-retries`: Additional store connect attempts with backoff.
//   - `--drain-timeout`: Maximum time to wait for in-flight requests.
//   - `--server-cert`, `--server-key`: Serve TLS with this certificate.
//   - `--client-ca-cert`: Require client certificates signed by this CA.
//   - `--metrics-address`: Serve /health and /metrics on this address.
//   - `--log-level`, `--log-format`: Log verbosity and text or json output.
//
// Every option can also be set with an environment variable, for example
// JOBRUNNER_ADDRESS or JOBRUNNER_STORE_DSN. Variables are also read from a
// .env file in the working directory, if present.
//
// Sample usage:
//
//	jobrunner-server --store badger --store-dsn /var/lib/jobrunner
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/juliaogris/jobrunner/pkg/jobrunner"
	"github.com/juliaogris/jobrunner/pkg/store"
)

const description = "Jobrunner-server is a gRPC server that accepts and lists jobs backed by a persistent store."

type app struct {
	Address        string        `short:"A" default:"127.0.0.1:5050" help:"Address to listen on." env:"JOBRUNNER_ADDRESS"`
	Store          string        `enum:"memory,sqlite,postgres,pgx,badger" default:"sqlite" help:"Store backend (${enum})." env:"JOBRUNNER_STORE"`
	StoreDSN       string        `name:"store-dsn" help:"Store file, directory or connection string." env:"JOBRUNNER_STORE_DSN"`
	StoreMigrate   bool          `help:"Apply embedded schema migrations on connect (pgx). Without it, connecting to an unmigrated database fails." env:"JOBRUNNER_STORE_MIGRATE"`
	ConnectRetries uint64        `default:"0" help:"Additional store connect attempts with exponential backoff." env:"JOBRUNNER_CONNECT_RETRIES"`
	DrainTimeout   time.Duration `default:"10s" help:"Maximum time to wait for in-flight requests on shutdown." env:"JOBRUNNER_DRAIN_TIMEOUT"`

	ServerCert   string `help:"Server certificate file, enables TLS." env:"JOBRUNNER_SERVER_CERT"`
	ServerKey    string `help:"Server private key file." env:"JOBRUNNER_SERVER_KEY"`
	ClientCACert string `help:"Client CA certificate file, enables mTLS." env:"JOBRUNNER_CLIENT_CA_CERT"`

	MetricsAddress string `help:"Address for the /health and /metrics endpoint, disabled if empty." env:"JOBRUNNER_METRICS_ADDRESS"`
	LogLevel       string `enum:"debug,info,warn,error" default:"info" help:"Log level (${enum})." env:"JOBRUNNER_LOG_LEVEL"`
	LogFormat      string `enum:"text,json" default:"text" help:"Log format (${enum})." env:"JOBRUNNER_LOG_FORMAT"`

	logOutput io.Writer // can be overridden for testing
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "cannot load .env file:", err) //nolint:errcheck // exiting anyway
		os.Exit(1)
	}
	opts := []kong.Option{kong.Description(description)}
	kctx := kong.Parse(&app{}, opts...)
	kctx.FatalIfErrorf(kctx.Run())
}

// Run is called by [kong] after flags have been validated and parsed.
func (a *app) Run() error {
	lc, err := a.newLifecycle()
	if err != nil {
		return err
	}
	if err := lc.RunUntilSignal(os.Interrupt, syscall.SIGTERM); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// run is Run with a caller-controlled shutdown trigger instead of signals.
func (a *app) run(ctx context.Context) error {
	lc, err := a.newLifecycle()
	if err != nil {
		return err
	}
	if err := lc.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func (a *app) newLifecycle() (*jobrunner.Lifecycle, error) {
	if err := a.setupLogging(); err != nil {
		return nil, err
	}
	connector, err := newConnector(a.Store, a.StoreDSN, a.StoreMigrate)
	if err != nil {
		return nil, err
	}
	slog.Info("starting server", "address", a.Address, "store", a.Store)
	return jobrunner.NewLifecycle(a.lifecycleConfig(connector)), nil
}

func (a *app) lifecycleConfig(connector store.Connector) jobrunner.Config {
	return jobrunner.Config{
		Address:        a.Address,
		Connector:      connector,
		ConnectRetries: a.ConnectRetries,
		DrainTimeout:   a.DrainTimeout,
		TLS: jobrunner.TLSConfig{
			CertFile: a.ServerCert,
			KeyFile:  a.ServerKey,
			CAFile:   a.ClientCACert,
		},
		MetricsAddress: a.MetricsAddress,
	}
}

func (a *app) setupLogging() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", a.LogLevel, err)
	}
	w := a.logOutput
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if a.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
	return nil
}
