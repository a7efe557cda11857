// Package pb contains the generated protobuf messages and gRPC stubs for the
// jobrunner.v1.JobRunner service.
package pb

//go:generate protoc -I ../../proto --go_out=../.. --go_opt=module=github.com/juliaogris/jobrunner --go-grpc_out=../.. --go-grpc_opt=module=github.com/juliaogris/jobrunner jobrunner/v1/jobrunner.proto
