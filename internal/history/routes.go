package history

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/thinki-app/thinki-lambda/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Get("/", h.ListQuestionSets)
	r.Get("/{id}", h.GetQuestionSet)
	r.Delete("/{id}", h.DeleteQuestionSet)
	return r
}
