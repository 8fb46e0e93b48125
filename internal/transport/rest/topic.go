package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/langlearn/langlearn-backend/internal/domain"
	"github.com/langlearn/langlearn-backend/internal/service/topic"
)

// topicService defines the minimal interface needed by TopicHandler.
type topicService interface {
	AddTopic(ctx context.Context, input topic.AddTopicInput) (*domain.Topic, error)
	UpdateTopic(ctx context.Context, input topic.UpdateTopicInput) (*domain.Topic, error)
	UpdateTopicStatus(ctx context.Context, input topic.UpdateTopicStatusInput) (*domain.Topic, error)
	DeleteTopic(ctx context.Context, input topic.DeleteTopicInput) (*domain.Topic, error)
	ListByLanguage(ctx context.Context, languageTitle string) ([]*domain.Topic, error)
	ListByStatus(ctx context.Context, closed bool) ([]*domain.Topic, error)
	Search(ctx context.Context, query string) ([]*domain.Topic, error)
}

// TopicHandler serves topic REST endpoints.
type TopicHandler struct {
	svc topicService
	log *slog.Logger
}

// NewTopicHandler creates a TopicHandler.
func NewTopicHandler(svc topicService, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{svc: svc, log: logger.With("handler", "topic")}
}

type createTopicRequest struct {
	Title    string `json:"title"`
	Closed   bool   `json:"closed"`
	Language string `json:"language"`
}

type updateTopicRequest struct {
	Title  string `json:"title"`
	Closed bool   `json:"closed"`
}

type updateStatusRequest struct {
	Closed bool `json:"closed"`
}

// Create handles POST /api/v1/topics.
func (h *TopicHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.svc.AddTopic(r.Context(), topic.AddTopicInput{
		Title:    req.Title,
		Closed:   req.Closed,
		Language: req.Language,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, t)
}

// Update handles PUT /api/v1/topics/{id}.
func (h *TopicHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.svc.UpdateTopic(r.Context(), topic.UpdateTopicInput{
		ID:     r.PathValue("id"),
		Title:  req.Title,
		Closed: req.Closed,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, t)
}

// UpdateStatus handles PATCH /api/v1/topics/{id}/status.
func (h *TopicHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.svc.UpdateTopicStatus(r.Context(), topic.UpdateTopicStatusInput{
		ID:     r.PathValue("id"),
		Closed: req.Closed,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, t)
}

// Delete handles DELETE /api/v1/topics/{id}.
func (h *TopicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.DeleteTopic(r.Context(), topic.DeleteTopicInput{
		ID: r.PathValue("id"),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, t)
}

// ListByLanguage handles GET /api/v1/languages/{title}/topics.
func (h *TopicHandler) ListByLanguage(w http.ResponseWriter, r *http.Request) {
	topics, err := h.svc.ListByLanguage(r.Context(), r.PathValue("title"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, topics)
}

// ListByStatus handles GET /api/v1/topics?closed=true|false.
func (h *TopicHandler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	closed, err := strconv.ParseBool(r.URL.Query().Get("closed"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "query parameter closed must be true or false")
		return
	}

	topics, svcErr := h.svc.ListByStatus(r.Context(), closed)
	if svcErr != nil {
		handleError(w, r, h.log, svcErr)
		return
	}

	writeJSON(w, http.StatusOK, topics)
}

// Search handles GET /api/v1/topics/search?q=. An empty query matches all.
func (h *TopicHandler) Search(w http.ResponseWriter, r *http.Request) {
	topics, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, topics)
}
