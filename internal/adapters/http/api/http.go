// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	repository "github.com/josaa-tools/seatcast/internal/adapters/repository"
	"github.com/josaa-tools/seatcast/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	// Predict runs the full pipeline for one request.
	Predict(ctx context.Context, q model.PredictionQuery) ([]model.Preference, error)

	// Facets lists the distinct filter values of the current snapshot.
	Facets(ctx context.Context) (repository.Facets, error)

	// ExportCSV streams the current snapshot in the source CSV schema.
	ExportCSV(ctx context.Context, w io.Writer) error
}

// Server wires HTTP routes for the business API.
type Server struct {
	predictHandler *PredictHandler
	optionsHandler *OptionsHandler
	exportHandler  *ExportHandler
	statsHandler   *StatsHandler
	healthHandler  *HealthHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		predictHandler: NewPredictHandler(deps),
		optionsHandler: NewOptionsHandler(deps),
		exportHandler:  NewExportHandler(deps),
		statsHandler:   NewStatsHandler(statsProvider),
		healthHandler:  NewHealthHandler(),
	}
}

// Register attaches all business API routes to r.
func (s *Server) Register(ctx context.Context, r chi.Router) {
	r.Get("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	r.Get("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	r.Post("/predict", MetricsMiddleware(s.predictHandler.HandlePredict, "predict"))
	r.Get("/options", MetricsMiddleware(s.optionsHandler.HandleGetOptions, "options"))
	r.Get("/export.csv", MetricsMiddleware(s.exportHandler.HandleExport, "export"))
}

// predictRequest mirrors the wire schema for POST /predict. The "all"
// sentinel (any case) or an absent field means "no constraint".
type predictRequest struct {
	Rank            int     `json:"rank"`
	Category        string  `json:"category"`
	CollegeType     string  `json:"college_type"`
	PreferredBranch string  `json:"preferred_branch"`
	Round           string  `json:"round"`
	MinProbability  float64 `json:"min_probability"`
}

func (p predictRequest) validate() error {
	switch {
	case p.Rank <= 0:
		return ErrInvalidRank
	case p.MinProbability < 0 || p.MinProbability > 100:
		return ErrInvalidThreshold
	}
	return nil
}

// query maps the wire request to the core query, resolving sentinels.
func (p predictRequest) query() model.PredictionQuery {
	return model.PredictionQuery{
		Rank:            p.Rank,
		Category:        resolveSentinel(p.Category),
		CollegeType:     resolveSentinel(p.CollegeType),
		PreferredBranch: resolveSentinel(p.PreferredBranch),
		Round:           resolveSentinel(p.Round),
		MinProbability:  p.MinProbability,
	}
}

// resolveSentinel maps the wire-level "all" wildcard to the core's empty
// "no constraint" value.
func resolveSentinel(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "all") {
		return ""
	}
	return v
}

type predictResponse struct {
	Count       int                `json:"count"`
	Preferences []model.Preference `json:"preferences"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
