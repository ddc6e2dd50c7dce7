// Package server exposes the minimal pair finder as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/pairs?pair=<a, b>[&min_freq=|&slider=][&pos=][&pos_groups=][&etymology=]
//	POST /api/pairs/batch        body: {"queries":[{"pair":"p, k",...}]}
//	GET  /api/segments
//	GET  /api/charts[?name=<chart>]
//	GET  /api/pos-groups
//	GET  /api/threshold?slider=<v>
//	GET  /health
//	GET  /metrics
package server

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cours-de-latin/minpairs"
	"github.com/cours-de-latin/minpairs/internal/config"
)

// Server routes API requests to a Finder.
type Server struct {
	finder  *minpairs.Finder
	charts  []*minpairs.Chart
	query   config.QueryConfig
	logger  *slog.Logger
	metrics *metrics
	handler http.Handler
}

// New builds the server and its middleware stack. Metrics are registered on
// a registry owned by the server.
func New(finder *minpairs.Finder, charts []*minpairs.Chart, cfg *config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	reg := prometheus.NewRegistry()
	s := &Server{
		finder:  finder,
		charts:  charts,
		query:   cfg.Query,
		logger:  logger,
		metrics: newMetrics(reg, finder),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/pairs/batch", s.handleBatch)
	mux.HandleFunc("/api/pairs", s.handlePairs)
	mux.HandleFunc("/api/segments", s.handleSegments)
	mux.HandleFunc("/api/charts", s.handleCharts)
	mux.HandleFunc("/api/pos-groups", s.handlePOSGroups)
	mux.HandleFunc("/api/threshold", s.handleThreshold)
	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	s.handler = Chain(
		Recovery(logger),
		RequestID,
		Logger(logger),
		CORS(cfg.CORS),
	)(mux)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}
