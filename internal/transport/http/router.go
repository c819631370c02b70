// Package httptransport exposes the operational HTTP surface: liveness,
// readiness, metrics and a read-only view of the decision log. Business
// logic stays in the journal and routing packages.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sedrouting/internal/routing/store"
)

// HealthChecker is anything that can report readiness of a dependency.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Handler wires the ops endpoints.
type Handler struct {
	decisions store.Store
	checks    map[string]HealthChecker
	logger    *slog.Logger
}

// NewHandler builds the handler. checks maps dependency names to their
// health probes; nil entries are skipped so unconfigured dependencies
// (redis, postgres) don't fail readiness.
func NewHandler(decisions store.Store, checks map[string]HealthChecker, logger *slog.Logger) *Handler {
	return &Handler{decisions: decisions, checks: checks, logger: logger}
}

// NewRouter mounts all routes.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/internal/alive", h.handleAlive)
	r.Get("/internal/ready", h.handleReady)
	r.Method(http.MethodGet, "/internal/metrics", promhttp.Handler())
	r.Get("/decisions/{caseID}", h.handleDecisions)
	return r
}

func (h *Handler) handleAlive(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	for name, check := range h.checks {
		if check == nil {
			continue
		}
		if err := check.Health(ctx); err != nil {
			h.logger.Warn("readiness check failed", "dependency", name, "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status":     "unavailable",
				"dependency": name,
			})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

type decisionResponse struct {
	ID           string    `json:"id"`
	CaseID       string    `json:"caseId"`
	CaseType     string    `json:"caseType"`
	DocumentID   string    `json:"documentId"`
	DocumentType string    `json:"documentType"`
	Direction    string    `json:"direction"`
	Unit         string    `json:"unit"`
	DecidedAt    time.Time `json:"decidedAt"`
}

func (h *Handler) handleDecisions(w http.ResponseWriter, r *http.Request) {
	caseID := chi.URLParam(r, "caseID")
	decisions, err := h.decisions.ListByCase(r.Context(), caseID)
	if err != nil {
		h.logger.Error("decision log read failed", "case_id", caseID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "decision log unavailable"})
		return
	}

	out := make([]decisionResponse, 0, len(decisions))
	for _, d := range decisions {
		out = append(out, decisionResponse{
			ID:           d.ID.String(),
			CaseID:       d.CaseID,
			CaseType:     d.CaseType.String(),
			DocumentID:   d.DocumentID,
			DocumentType: d.DocumentType.String(),
			Direction:    string(d.Direction),
			Unit:         d.Unit.Code(),
			DecidedAt:    d.DecidedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
