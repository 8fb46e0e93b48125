package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/langlearn/langlearn-backend/internal/domain"
	"github.com/langlearn/langlearn-backend/internal/service/language"
)

// languageService defines the minimal interface needed by LanguageHandler.
type languageService interface {
	AddLanguage(ctx context.Context, input language.AddLanguageInput) (*domain.Language, error)
	RenameLanguage(ctx context.Context, input language.RenameLanguageInput) (*domain.Language, error)
	GetLanguage(ctx context.Context, title string) (*domain.Language, error)
	ListLanguages(ctx context.Context) ([]*domain.Language, error)
	DeleteLanguage(ctx context.Context, input language.DeleteLanguageInput) (*domain.Language, error)
}

// LanguageHandler serves language REST endpoints.
type LanguageHandler struct {
	svc languageService
	log *slog.Logger
}

// NewLanguageHandler creates a LanguageHandler.
func NewLanguageHandler(svc languageService, logger *slog.Logger) *LanguageHandler {
	return &LanguageHandler{svc: svc, log: logger.With("handler", "language")}
}

type createLanguageRequest struct {
	Title string `json:"title"`
}

type renameLanguageRequest struct {
	Title string `json:"title"`
}

// Create handles POST /api/v1/languages.
func (h *LanguageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lang, err := h.svc.AddLanguage(r.Context(), language.AddLanguageInput{Title: req.Title})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, lang)
}

// List handles GET /api/v1/languages.
func (h *LanguageHandler) List(w http.ResponseWriter, r *http.Request) {
	langs, err := h.svc.ListLanguages(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, langs)
}

// Get handles GET /api/v1/languages/{title}.
func (h *LanguageHandler) Get(w http.ResponseWriter, r *http.Request) {
	lang, err := h.svc.GetLanguage(r.Context(), r.PathValue("title"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, lang)
}

// Rename handles PATCH /api/v1/languages/{title}.
func (h *LanguageHandler) Rename(w http.ResponseWriter, r *http.Request) {
	var req renameLanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lang, err := h.svc.RenameLanguage(r.Context(), language.RenameLanguageInput{
		OldTitle: r.PathValue("title"),
		NewTitle: req.Title,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, lang)
}

// Delete handles DELETE /api/v1/languages/{id}. Topics owned by the
// language are removed in the same logical operation.
func (h *LanguageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	lang, err := h.svc.DeleteLanguage(r.Context(), language.DeleteLanguageInput{
		ID: r.PathValue("id"),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, lang)
}
