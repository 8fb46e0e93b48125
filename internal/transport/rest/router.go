package rest

import (
	"net/http"
)

// NewRouter wires all REST endpoints onto a ServeMux. The metrics handler
// is passed in so the transport stays ignorant of the metrics registry.
func NewRouter(
	languages *LanguageHandler,
	topics *TopicHandler,
	stats *StatsHandler,
	health *HealthHandler,
	metrics http.Handler,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /health/live", health.Live)
	mux.HandleFunc("GET /health/ready", health.Ready)
	mux.Handle("GET /metrics", metrics)

	mux.HandleFunc("POST /api/v1/languages", languages.Create)
	mux.HandleFunc("GET /api/v1/languages", languages.List)
	mux.HandleFunc("GET /api/v1/languages/{title}", languages.Get)
	mux.HandleFunc("PATCH /api/v1/languages/{title}", languages.Rename)
	mux.HandleFunc("DELETE /api/v1/languages/{id}", languages.Delete)
	mux.HandleFunc("GET /api/v1/languages/{title}/topics", topics.ListByLanguage)

	mux.HandleFunc("POST /api/v1/topics", topics.Create)
	mux.HandleFunc("GET /api/v1/topics", topics.ListByStatus)
	mux.HandleFunc("GET /api/v1/topics/search", topics.Search)
	mux.HandleFunc("PUT /api/v1/topics/{id}", topics.Update)
	mux.HandleFunc("PATCH /api/v1/topics/{id}/status", topics.UpdateStatus)
	mux.HandleFunc("DELETE /api/v1/topics/{id}", topics.Delete)

	mux.HandleFunc("GET /api/v1/stats/languages", stats.Languages)

	return mux
}
