// Package jobrunner provides a gRPC service for submitting and listing jobs
// persisted in a [store.Handle].
//
// ## Client
//
// The [Client] created with [NewClient] wraps the generated gRPC client and
// owns its connection.
//
// ## Server
//
// The [Server] created with [NewServer] wraps the gRPC server. Every request
// passes a tracking interceptor; [Server.Drain] stops admitting requests,
// lets admitted ones finish and only returns once none is in flight.
//
// ## Lifecycle
//
// The [Lifecycle] owns the store handle and runs the fixed sequence
// connect, serve, drain, close. It is what the jobrunner-server command
// runs. Close never happens while a handler may still use the store.
//
// ## Security
//
// Transport security is optional. With a [TLSConfig] the server requires
// TLS version 1.3, and with a client CA it also verifies client
// certificates (mTLS).
//
// ## Service
//
// The Service implements the generated gRPC interface pb.JobRunnerServer. It
// is a lower integration point than the [Server] type for custom security
// setup or testing.
//
// # Example Usage
//
// Client:
//
//	client, err := NewClient("localhost:5050", TLSConfig{})
//	if err != nil {
//		// handle error
//	}
//	defer client.Close()
//
//	reply, err := client.SubmitJob(context.Background(), &pb.JobRequest{Name: "build-report"})
//	if err != nil {
//		// handle error
//	}
//	fmt.Println(reply.GetMessage()) // Hello build-report!
//
// Server:
//
//	lc := NewLifecycle(Config{
//		Address:   "localhost:5050",
//		Connector: memstore.Connector{},
//	})
//	if err := lc.RunUntilSignal(os.Interrupt, syscall.SIGTERM); err != nil {
//		// handle error
//	}
package jobrunner
