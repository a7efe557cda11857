package jobrunner

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// newOpsHandler returns the router for the operational HTTP endpoint:
//
//	GET /health   200 while serving, 503 otherwise
//	GET /metrics  prometheus exposition of gatherer
func newOpsHandler(gatherer prometheus.Gatherer, state func() State) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		s := state()
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if s != StateServing {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_, _ = w.Write([]byte(s.String() + "\n"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return r
}
