package viewer

import (
	"context"
	"net/http"
	"sync"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// AdminHandler serves /metrics for Prometheus and /health.
func AdminHandler() http.Handler {
	var admin http.ServeMux
	admin.Handle("/metrics", promhttp.Handler())
	admin.HandleFunc("/health", handleHealthCheck)
	return &admin
}

func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// ListenAndServe runs servers until ctx is done, then shuts them down and
// returns once every server has stopped.
func ListenAndServe(ctx context.Context, servers ...*http.Server) {
	go func() {
		<-ctx.Done()

		for _, s := range servers {
			if err := s.Shutdown(context.Background()); err != nil {
				logs.Warn(errors.Newf("shutting down the server failed").
					WithTag("addr", s.Addr).
					Wrap(err))
			}
		}
	}()

	var wg sync.WaitGroup

	for _, s := range servers {
		wg.Add(1)

		go func(s *http.Server) {
			defer wg.Done()

			logs.WithTag("addr", s.Addr).Info("starting server")

			switch err := s.ListenAndServe(); err {
			case nil, http.ErrServerClosed, context.Canceled:
				logs.WithTag("addr", s.Addr).Info("stopping server")

			default:
				logs.Warn(errors.Newf("server stopped").
					WithTag("addr", s.Addr).
					Wrap(err))
			}
		}(s)
	}

	wg.Wait()
}
