package jobrunner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/juliaogris/jobrunner/pkg/pb"
	"github.com/juliaogris/jobrunner/pkg/store"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Service implements the generated gRPC interface pb.JobRunnerServer.
//
// It requires that Store is connected for as long as the service handles
// requests. It is a lower integration point than the Server type for custom
// security setup or testing; it does not track in-flight requests itself.
//
// Store errors are logged and mapped to codes.Internal with a fixed message,
// so no store detail reaches the client.
type Service struct {
	pb.UnimplementedJobRunnerServer
	Store store.ReadWriter
}

// SubmitJob persists one job with the requested name and acknowledges it.
// Names are not validated; an empty name is stored as is.
func (s *Service) SubmitJob(ctx context.Context, req *pb.JobRequest) (*pb.JobReply, error) {
	name := req.GetName()
	if err := s.Store.WriteOne(ctx, store.Record{Name: name}); err != nil {
		slog.Error("cannot submit job", "request_id", RequestID(ctx), "name", name, "err", err)
		return nil, status.Errorf(codes.Internal, "cannot submit job")
	}
	return &pb.JobReply{Message: fmt.Sprintf("Hello %s!", name)}, nil
}

// ListJobs returns all persisted jobs in store order.
func (s *Service) ListJobs(ctx context.Context, _ *pb.Empty) (*pb.JobList, error) {
	jobs, err := s.Store.ReadAll(ctx)
	if err != nil {
		slog.Error("cannot list jobs", "request_id", RequestID(ctx), "err", err)
		return nil, status.Errorf(codes.Internal, "cannot list jobs")
	}
	return &pb.JobList{Jobs: pbJobs(jobs)}, nil
}

// pbJobs converts store jobs to their wire representation.
func pbJobs(jobs []store.Job) []*pb.Job {
	result := make([]*pb.Job, len(jobs))
	for i, j := range jobs {
		result[i] = &pb.Job{Id: j.ID, Name: j.Name}
	}
	return result
}
