package jobrunner

import (
	"context"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// tracker counts admitted requests and acts as the drain barrier between
// request handlers and the store owner. Once draining, no further request
// is admitted, so wait returns as soon as the last admitted handler is done.
type tracker struct {
	mutex    sync.Mutex
	draining bool
	inFlight int64
	wg       sync.WaitGroup
}

func newTracker() *tracker {
	return &tracker{}
}

// acquire admits a request. It returns false once draining.
func (t *tracker) acquire() bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.draining {
		return false
	}
	t.inFlight++
	t.wg.Add(1)
	return true
}

func (t *tracker) release() {
	t.mutex.Lock()
	t.inFlight--
	t.mutex.Unlock()
	t.wg.Done()
}

func (t *tracker) drain() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.draining = true
}

// wait blocks until every admitted request has been released. It must only
// be called after drain, so that wg.Add never races with wg.Wait.
func (t *tracker) wait() {
	t.wg.Wait()
}

func (t *tracker) count() int64 {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.inFlight
}

func (t *tracker) unaryInterceptor(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if !t.acquire() {
		return nil, status.Errorf(codes.Unavailable, "server is shutting down")
	}
	defer t.release()
	return handler(ctx, req)
}
