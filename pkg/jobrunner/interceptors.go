package jobrunner

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// RequestIDKey is the key used to store the request ID in the context.
type RequestIDKey struct{}

// RequestID returns the request ID added to ctx by the server's logging
// interceptor, or the empty string.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey{}).(string)
	return id
}

// unaryInterceptorLog is a unary interceptor that tags each request with a
// UUID and logs its outcome.
func unaryInterceptorLog(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	requestID := uuid.NewString()
	ctx = context.WithValue(ctx, RequestIDKey{}, requestID)
	resp, err := handler(ctx, req)
	code := status.Code(err)
	level := slog.LevelInfo
	if err != nil {
		level = slog.LevelWarn
	}
	slog.Log(ctx, level, "request",
		"method", info.FullMethod,
		"request_id", requestID,
		"code", code.String(),
		"duration", time.Since(start),
	)
	return resp, err
}
