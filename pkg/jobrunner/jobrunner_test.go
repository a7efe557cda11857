package jobrunner_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/juliaogris/jobrunner/pkg/jobrunner"
	"github.com/juliaogris/jobrunner/pkg/pb"
	"github.com/juliaogris/jobrunner/pkg/store"
	"github.com/juliaogris/jobrunner/pkg/store/memstore"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestServerSimple(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h, err := store.Connect(ctx, memstore.Connector{})
	require.NoError(t, err)
	defer func() { require.NoError(t, h.Close()) }()
	server, address := newTestServer(t, h)
	defer server.Stop()
	client := newTestClient(t, address)

	list, err := client.ListJobs(ctx, &pb.Empty{})
	require.NoError(t, err)
	require.Empty(t, list.GetJobs())

	reply, err := client.SubmitJob(ctx, &pb.JobRequest{Name: "build-report"})
	require.NoError(t, err)
	require.Equal(t, "Hello build-report!", reply.GetMessage())

	reply, err = client.SubmitJob(ctx, &pb.JobRequest{Name: ""})
	require.NoError(t, err)
	require.Equal(t, "Hello !", reply.GetMessage())

	list, err = client.ListJobs(ctx, &pb.Empty{})
	require.NoError(t, err)
	jobs := list.GetJobs()
	require.Len(t, jobs, 2)
	require.Equal(t, int64(1), jobs[0].GetId())
	require.Equal(t, "build-report", jobs[0].GetName())
	require.Equal(t, int64(2), jobs[1].GetId())
	require.Empty(t, jobs[1].GetName())
}

func TestServerStoreFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	server, address := newTestServer(t, &failingStore{})
	defer server.Stop()
	client := newTestClient(t, address)

	_, err := client.SubmitJob(ctx, &pb.JobRequest{Name: "x"})
	require.Error(t, err)
	s, ok := status.FromError(err)
	require.True(t, ok)
	require.Equal(t, codes.Internal, s.Code())
	require.Equal(t, "cannot submit job", s.Message())

	_, err = client.ListJobs(ctx, &pb.Empty{})
	require.Error(t, err)
	s, ok = status.FromError(err)
	require.True(t, ok)
	require.Equal(t, codes.Internal, s.Code())
	require.Equal(t, "cannot list jobs", s.Message())
}

func TestServerConcurrentSubmit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h, err := store.Connect(ctx, memstore.Connector{})
	require.NoError(t, err)
	defer func() { require.NoError(t, h.Close()) }()
	server, address := newTestServer(t, h)
	defer server.Stop()
	client := newTestClient(t, address)

	count := 50
	var wg sync.WaitGroup
	for range count {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := client.SubmitJob(ctx, &pb.JobRequest{Name: "job"}); err != nil {
				t.Errorf("submit: %v", err)
			}
		}()
	}
	wg.Wait()
	list, err := client.ListJobs(ctx, &pb.Empty{})
	require.NoError(t, err)
	require.Len(t, list.GetJobs(), count)
	for i, j := range list.GetJobs() {
		require.Equal(t, int64(i+1), j.GetId())
	}
	require.Zero(t, server.InFlight())
}

func TestDrainWaitsForInFlight(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	session := newGateSession()
	server, address := newTestServer(t, session)
	defer server.Stop()
	client := newTestClient(t, address)

	submitErr := make(chan error, 1)
	go func() {
		_, err := client.SubmitJob(ctx, &pb.JobRequest{Name: "slow"})
		submitErr <- err
	}()
	<-session.entered
	require.Equal(t, int64(1), server.InFlight())

	drainErr := make(chan error, 1)
	go func() {
		drainErr <- server.Drain(ctx)
	}()

	// New requests are refused while the admitted one is still running.
	require.Eventually(t, func() bool {
		_, err := client.ListJobs(ctx, &pb.Empty{})
		return status.Code(err) == codes.Unavailable
	}, time.Second, 10*time.Millisecond)
	select {
	case err := <-drainErr:
		t.Fatalf("drain returned before in-flight request finished: %v", err)
	default:
	}

	session.openGate()
	require.NoError(t, <-submitErr)
	require.NoError(t, <-drainErr)
	require.Zero(t, server.InFlight())
	jobs, err := session.ReadAll(ctx)
	require.NoError(t, err)
	require.Equal(t, []store.Job{{ID: 1, Name: "slow"}}, jobs)
}

func TestDrainTimeout(t *testing.T) {
	t.Parallel()
	session := newGateSession()
	server, address := newTestServer(t, session)
	client := newTestClient(t, address)

	submitErr := make(chan error, 1)
	go func() {
		_, err := client.SubmitJob(context.Background(), &pb.JobRequest{Name: "stuck"})
		submitErr <- err
	}()
	<-session.entered

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := server.Drain(ctx)
	require.ErrorIs(t, err, jobrunner.ErrDrainTimeout)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Zero(t, server.InFlight())
	require.Error(t, <-submitErr)
}

func TestNewClientBadTLS(t *testing.T) {
	t.Parallel()
	_, err := jobrunner.NewClient("127.0.0.1:1", jobrunner.TLSConfig{CAFile: "testdata/missing.crt"})
	require.ErrorIs(t, err, jobrunner.ErrCredentials)
	require.ErrorIs(t, err, jobrunner.ErrCASetup)
}
