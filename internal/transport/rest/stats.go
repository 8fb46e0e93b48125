package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/langlearn/langlearn-backend/internal/domain"
)

// statsService defines the minimal interface needed by StatsHandler.
type statsService interface {
	LanguageStatistics(ctx context.Context) ([]domain.LanguageStats, error)
}

// StatsHandler serves catalog aggregation endpoints.
type StatsHandler struct {
	svc statsService
	log *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: logger.With("handler", "stats")}
}

// Languages handles GET /api/v1/stats/languages.
func (h *StatsHandler) Languages(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.LanguageStatistics(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
