package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/couchcryptid/weather-codes/internal/catalog"
	"github.com/couchcryptid/weather-codes/internal/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes the read-only lookup API plus health, readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	catalog    *catalog.Catalog
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics and the
// /v1/tables lookup routes.
func NewServer(addr string, cat *catalog.Catalog, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		catalog: cat,
		metrics: metrics,
		logger:  logger,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(cat))
	mux.Handle("GET /metrics", promhttp.Handler())

	s.route(mux, "GET /v1/tables", s.handleTables)
	s.route(mux, "GET /v1/tables/{table}", s.handleTable)
	s.route(mux, "GET /v1/tables/{table}/codes/{code}", s.handleCode)
	s.route(mux, "GET /v1/tables/{table}/keys/{key}", s.handleKey)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// route registers h under pattern and records its latency by pattern and status.
func (s *Server) route(mux *http.ServeMux, pattern string, h func(http.ResponseWriter, *http.Request) int) {
	mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		status := h(w, r)
		s.metrics.RequestDuration.
			WithLabelValues(pattern, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
	})
}

type tablesResponse struct {
	Tables []catalog.TableInfo `json:"tables"`
}

type tableResponse struct {
	Table   string          `json:"table"`
	Count   int             `json:"count"`
	Entries []catalog.Entry `json:"entries"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleTables(w http.ResponseWriter, _ *http.Request) int {
	return writeJSON(w, http.StatusOK, tablesResponse{Tables: s.catalog.Tables()})
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) int {
	table := r.PathValue("table")
	entries, err := s.catalog.List(table)
	if err != nil {
		return s.writeError(w, err)
	}
	return writeJSON(w, http.StatusOK, tableResponse{Table: table, Count: len(entries), Entries: entries})
}

func (s *Server) handleCode(w http.ResponseWriter, r *http.Request) int {
	raw := r.PathValue("code")
	code, err := strconv.Atoi(raw)
	if err != nil {
		return writeJSON(w, http.StatusBadRequest, errorResponse{Error: "code must be an integer, got " + strconv.Quote(raw)})
	}
	entry, err := s.catalog.Lookup(r.PathValue("table"), code)
	if err != nil {
		return s.writeError(w, err)
	}
	return writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) int {
	entry, err := s.catalog.LookupKey(r.PathValue("table"), r.PathValue("key"))
	if err != nil {
		return s.writeError(w, err)
	}
	return writeJSON(w, http.StatusOK, entry)
}

// writeError maps catalog errors onto HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, err error) int {
	switch {
	case errors.Is(err, catalog.ErrUnknownTable),
		errors.Is(err, catalog.ErrUnknownCode),
		errors.Is(err, catalog.ErrUnknownKey):
		return writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		s.logger.Error("lookup failed", "error", err)
		return writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) int {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response body
	return status
}
