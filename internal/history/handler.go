package history

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/thinki-app/thinki-lambda/internal/config"
)

type Handler struct {
	service HistoryService
}

func NewHandler(s HistoryService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ListQuestionSets(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	sets, err := h.service.ListQuestionSets(r.Context(), r.URL.Query().Get("subject"), limit)
	if err != nil {
		log.WithError(err).Error("failed to list question sets")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, sets)
}

func (h *Handler) GetQuestionSet(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	setID := chi.URLParam(r, "id")
	if setID == "" {
		http.Error(w, "question set id required", http.StatusBadRequest)
		return
	}

	set, err := h.service.GetQuestionSet(r.Context(), setID)
	if err != nil {
		log.WithError(err).Error("failed to fetch question set")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if set == nil {
		http.Error(w, "question set not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, set)
}

func (h *Handler) DeleteQuestionSet(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	setID := chi.URLParam(r, "id")
	if setID == "" {
		http.Error(w, "question set id required", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteQuestionSet(r.Context(), setID); err != nil {
		log.WithError(err).Error("failed to delete question set")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "question set deleted successfully",
	})
}
