// Package http is the JSON API adapter over the scoring engine. The engine
// itself does no networking; everything here is presentation.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/calrisk/coverage-advisor/internal/observability"
	"github.com/calrisk/coverage-advisor/internal/recent"
	"github.com/calrisk/coverage-advisor/internal/refdata"
	"github.com/calrisk/coverage-advisor/internal/scoring"
)

// DefaultVehicleValue is assumed when a request does not state one.
const DefaultVehicleValue = 15000

// Server exposes the advisor API plus health and metrics HTTP endpoints.
type Server struct {
	httpServer *http.Server
	store      *refdata.Store
	recent     *recent.Store // nil disables recent-search recording
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewServer creates the advisor HTTP server. recentStore may be nil, in
// which case searches are not remembered and /api/recent serves an empty
// list.
func NewServer(addr string, store *refdata.Store, recentStore *recent.Store, logger *slog.Logger, metrics *observability.Metrics) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		store:   store,
		recent:  recentStore,
		logger:  logger,
		metrics: metrics,
	}

	mux.HandleFunc("GET /api/zips/{zip}", s.instrument("analyze", s.handleAnalyze))
	mux.HandleFunc("GET /api/zips/{zip}/recommendation", s.instrument("recommendation", s.handleRecommendation))
	mux.HandleFunc("GET /api/zips/{zip}/premium", s.instrument("premium", s.handlePremium))
	mux.HandleFunc("GET /api/zips/{zip}/scenarios", s.instrument("scenarios", s.handleScenarios))
	mux.HandleFunc("POST /api/zips/{zip}/quote", s.instrument("quote", s.handleQuote))
	mux.HandleFunc("GET /api/search", s.instrument("search", s.handleSearch))
	mux.HandleFunc("GET /api/tiers", s.instrument("tiers", s.handleTiers))
	mux.HandleFunc("GET /api/coverage-info", s.instrument("coverage_info", s.handleCoverageInfo))
	mux.HandleFunc("GET /api/recent", s.instrument("recent", s.handleRecent))
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

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

// instrument times a handler and records the duration under the route label.
func (s *Server) instrument(route string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		h(w, r)
		elapsed := time.Since(start)
		s.metrics.HTTPRequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
		s.logger.Debug("request served", "route", route, "path", r.URL.Path, "duration", elapsed)
	}
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	zip := r.PathValue("zip")
	data, err := scoring.AnalyzeZip(s.store, zip)
	if err != nil {
		s.notCovered(w, zip, err)
		return
	}
	s.metrics.ZipLookups.WithLabelValues("found").Inc()
	s.rememberSearch(zip)
	writeJSON(w, http.StatusOK, data)
}

func (s *Server) handleRecommendation(w http.ResponseWriter, r *http.Request) {
	zip := r.PathValue("zip")
	vehicleValue, ok := vehicleValueParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid vehicle_value")
		return
	}

	rec, err := scoring.Recommend(s.store, zip, vehicleValue)
	if err != nil {
		s.notCovered(w, zip, err)
		return
	}
	s.metrics.ZipLookups.WithLabelValues("found").Inc()
	s.metrics.Recommendations.WithLabelValues(string(rec.Tier)).Inc()
	s.rememberSearch(zip)
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handlePremium(w http.ResponseWriter, r *http.Request) {
	zip := r.PathValue("zip")
	tier := refdata.TierKey(r.URL.Query().Get("tier"))

	premium, err := scoring.EstimatePremium(s.store, zip, tier)
	if err != nil {
		s.notCovered(w, zip, err)
		return
	}
	s.metrics.ZipLookups.WithLabelValues("found").Inc()
	writeJSON(w, http.StatusOK, map[string]any{
		"zip":           zip,
		"tier":          tier,
		"annualPremium": premium,
	})
}

func (s *Server) handleScenarios(w http.ResponseWriter, r *http.Request) {
	zip := r.PathValue("zip")
	vehicleValue, ok := vehicleValueParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid vehicle_value")
		return
	}

	data, err := scoring.AnalyzeZip(s.store, zip)
	if err != nil {
		s.notCovered(w, zip, err)
		return
	}
	s.metrics.ZipLookups.WithLabelValues("found").Inc()
	writeJSON(w, http.StatusOK, map[string]any{
		"zip":       zip,
		"scenarios": scoring.BuildScenarios(data, vehicleValue),
	})
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	zip := r.PathValue("zip")

	var sel scoring.CustomSelection
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		writeError(w, http.StatusBadRequest, "invalid selection body")
		return
	}

	data, err := scoring.AnalyzeZip(s.store, zip)
	if err != nil {
		s.notCovered(w, zip, err)
		return
	}
	s.metrics.ZipLookups.WithLabelValues("found").Inc()
	s.metrics.CustomQuotes.Inc()
	writeJSON(w, http.StatusOK, map[string]any{
		"quoteId":       uuid.NewString(),
		"zip":           zip,
		"selection":     sel,
		"annualPremium": scoring.CustomPremium(data, sel),
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	results := scoring.SearchZips(s.store, query)
	s.metrics.Searches.Inc()
	if results == nil {
		results = []scoring.Match{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"query":   query,
		"results": results,
	})
}

func (s *Server) handleTiers(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"tiers":          s.store.Tiers(),
		"minimums":       refdata.CAMinimums,
		"futureMinimums": refdata.CAFutureMinimums,
		"attribution":    refdata.Attribution,
	})
}

func (s *Server) handleCoverageInfo(w http.ResponseWriter, _ *http.Request) {
	type entry struct {
		Type    refdata.CoverageType     `json:"type"`
		Info    refdata.CoverageInfo     `json:"info"`
		Options []scoring.CoverageOption `json:"options"`
	}

	types := refdata.CoverageTypes()
	entries := make([]entry, 0, len(types))
	for _, ct := range types {
		info, ok := s.store.Info(ct)
		if !ok {
			continue
		}
		entries = append(entries, entry{Type: ct, Info: info, Options: scoring.Options(ct)})
	}
	writeJSON(w, http.StatusOK, map[string]any{"coverages": entries})
}

func (s *Server) handleRecent(w http.ResponseWriter, _ *http.Request) {
	entries := []recent.Entry{}
	if s.recent != nil {
		entries = s.recent.List()
	}
	writeJSON(w, http.StatusOK, map[string]any{"recent": entries})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// notCovered maps the engine's only error to a 404 and counts it.
func (s *Server) notCovered(w http.ResponseWriter, zip string, err error) {
	if errors.Is(err, scoring.ErrNotCovered) {
		s.metrics.ZipLookups.WithLabelValues("not_covered").Inc()
		writeError(w, http.StatusNotFound, "zip code "+zip+" is not covered")
		return
	}
	s.logger.Error("unexpected analysis error", "zip", zip, "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func (s *Server) rememberSearch(zip string) {
	if s.recent == nil {
		return
	}
	if err := s.recent.Record(zip); err != nil {
		s.logger.Warn("failed to record recent search", "zip", zip, "error", err)
	}
}

func vehicleValueParam(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("vehicle_value")
	if raw == "" {
		return DefaultVehicleValue, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response write
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
