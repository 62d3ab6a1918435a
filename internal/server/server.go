// Package server exposes the analytics engine over HTTP as a thin adapter.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"QuantDesk/internal/analysis"
)

// Server routes JSON requests to the analytics core.
type Server struct {
	svc      *analysis.Service
	gridSize int
	router   *mux.Router
	log      zerolog.Logger
	metrics  *httpMetrics
}

// New builds the router and registers all endpoints.
func New(svc *analysis.Service, gridSize int, log zerolog.Logger) *Server {
	s := &Server{
		svc:      svc,
		gridSize: gridSize,
		router:   mux.NewRouter(),
		log:      log.With().Str("component", "server").Logger(),
		metrics:  newHTTPMetrics(prometheus.NewRegistry()),
	}

	api := s.router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/stats", s.handleStats).Methods(http.MethodPost)
	api.HandleFunc("/option/price", s.handleOptionPrice).Methods(http.MethodPost)
	api.HandleFunc("/option/surface", s.handleOptionSurface).Methods(http.MethodPost)
	api.HandleFunc("/portfolio", s.handlePortfolio).Methods(http.MethodPost)

	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	s.router.Use(s.instrument)
	return s
}

// Handler returns the root handler, exposed for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
