// Jobrunner is the client CLI to submit and list jobs on a jobrunner server.
//
// It communicates with a jobrunner server over gRPC. The CLI supports the
// following commands:
//
//   - submit: submits a new job with the given name.
//   - list: lists all submitted jobs.
//
// Each command requires the address of the jobrunner server. If the server
// uses TLS, the server's CA certificate can be provided if it's not available
// as part of the system's trust store; if it requires client certificates
// (mTLS), the client's certificate and key must be provided too.
//
// The CLI optionally uses environment variables to configure the server address
// and certificate paths. The following environment variables are supported:
//
//   - JOBRUNNER_ADDRESS: the address of the jobrunner server.
//   - JOBRUNNER_CLIENT_CERT: the path to the client's certificate file.
//   - JOBRUNNER_CLIENT_KEY: the path to the client's key file.
//   - JOBRUNNER_SERVER_CA_CERT: the path to the server's CA certificate file.
//
// Example usage:
//
//	jobrunner submit build-report
//	jobrunner list
//	jobrunner [COMMAND] --help
package main

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/juliaogris/jobrunner/pkg/jobrunner"
	"github.com/juliaogris/jobrunner/pkg/pb"
)

const description = "Jobrunner is a client CLI to submit and list jobs on a jobrunner server."

type app struct {
	Submit submitCmd `cmd:"" help:"Submit a new job."`
	List   listCmd   `cmd:"" help:"List all submitted jobs."`
}

func main() {
	var writer io.Writer = os.Stdout
	opts := []kong.Option{
		kong.Bind(&writer),
		kong.Description(description),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	}
	kctx := kong.Parse(&app{}, opts...)
	kctx.FatalIfErrorf(kctx.Run())
}

type submitCmd struct {
	cmd
	Name string `arg:"" help:"Job name, may be empty."`
}

type listCmd struct {
	cmd
}

type cmd struct {
	Address      string `short:"A" default:"127.0.0.1:5050" help:"Server address." env:"JOBRUNNER_ADDRESS"`
	ClientCert   string `help:"Client Certificate file." env:"JOBRUNNER_CLIENT_CERT"`
	ClientKey    string `help:"Client Private Key file." env:"JOBRUNNER_CLIENT_KEY"`
	ServerCACert string `help:"Server CA certificate file, enables TLS." env:"JOBRUNNER_SERVER_CA_CERT"`

	client *jobrunner.Client
	w      io.Writer // can be overridden for testing
}

// Run is called by [kong] when the CLI arguments contain the `submit` command.
func (c *submitCmd) Run() error {
	resp, err := c.client.SubmitJob(context.Background(), &pb.JobRequest{Name: c.Name})
	if err != nil {
		return fmt.Errorf("failed to submit job: %w", err)
	}
	if _, err := fmt.Fprintln(c.w, resp.GetMessage()); err != nil {
		return fmt.Errorf("failed to write reply: %w", err)
	}
	return nil
}

// Run is called by [kong] when the CLI arguments contain the `list` command.
func (c *listCmd) Run() error {
	resp, err := c.client.ListJobs(context.Background(), &pb.Empty{})
	if err != nil {
		return fmt.Errorf("failed to list jobs: %w", err)
	}
	return printJobs(c.w, resp.GetJobs())
}

// AfterApply is called by [kong] immediately after flag validation and
// assignment and _before_ a command's Run method. It is useful for setting up
// common resources like gRPC connections.
//
// The pointer to the io.Writer is required to keep the io.Writer type when
// passing through an `any` parameter on the [kong.Bind] function.
func (c *cmd) AfterApply(w *io.Writer) error {
	c.w = cmp.Or(*w, io.Writer(os.Stdout))
	tlsConfig := jobrunner.TLSConfig{
		CertFile: c.ClientCert,
		KeyFile:  c.ClientKey,
		CAFile:   c.ServerCACert,
	}
	client, err := jobrunner.NewClient(c.Address, tlsConfig)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	c.client = client
	return nil
}

// AfterRun is called by [kong] immediately after a command's Run method
// completes. It is useful for cleaning up common resources like gRPC
// connections.
func (c *cmd) AfterRun() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("after run: %w", err)
	}
	return nil
}

// printJobs writes the jobs to the provided writer in a tabular format.
func printJobs(w io.Writer, jobs []*pb.Job) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "ID\tNAME"); err != nil {
		return fmt.Errorf("cannot write job list header: %w", err)
	}
	for _, j := range jobs {
		if _, err := fmt.Fprintf(tw, "%d\t%s\n", j.GetId(), j.GetName()); err != nil {
			return fmt.Errorf("cannot write job %d: %w", j.GetId(), err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("cannot flush job list tab writer: %w", err)
	}
	return nil
}
