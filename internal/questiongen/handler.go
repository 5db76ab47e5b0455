package questiongen

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/thinki-app/thinki-lambda/internal/config"
)

type Handler struct {
	service Service
	subject string // expected subject for this mount; empty accepts any
}

func NewHandler(s Service, subject string) *Handler {
	return &Handler{service: s, subject: subject}
}

func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Action != "generate" {
		http.Error(w, "action must be 'generate'", http.StatusBadRequest)
		return
	}
	if h.subject != "" && !strings.EqualFold(req.Subject, h.subject) {
		http.Error(w, fmt.Sprintf("subject must be '%s' for this endpoint", h.subject), http.StatusBadRequest)
		return
	}
	if req.Count < 0 {
		http.Error(w, "count must be non-negative", http.StatusBadRequest)
		return
	}
	if req.Context.Age <= 0 {
		http.Error(w, "context.age is required", http.StatusBadRequest)
		return
	}

	questions, err := h.service.GenerateQuestions(r.Context(), req)
	if err != nil {
		log.WithError(err).Errorf("Failed to generate questions: %v", err)
		config.JSON(w, http.StatusInternalServerError, QuestionResponse{
			Success: false,
			Message: "failed to generate questions",
		})
		return
	}

	config.JSON(w, http.StatusCreated, QuestionResponse{
		Success:   true,
		Questions: questions,
		Message:   fmt.Sprintf("Successfully generated %d %s questions", len(questions), req.Subject),
	})
}
