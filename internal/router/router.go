package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/thinki-app/thinki-lambda/internal/auth"
	"github.com/thinki-app/thinki-lambda/internal/config"
	"github.com/thinki-app/thinki-lambda/internal/history"
	"github.com/thinki-app/thinki-lambda/internal/middlewares"
	"github.com/thinki-app/thinki-lambda/internal/questiongen"
)

type RouterConfig struct {
	QuestionGen *questiongen.QuestionGenContainer
	// HistoryHandler is nil when DATABASE_DSN is not configured.
	HistoryHandler *history.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/", rootInfo)
	r.Get("/health", healthCheck)

	r.Route("/api", func(r chi.Router) {
		// Generation is open; a valid token only attributes the archived set.
		r.Use(auth.OptionalAuthMiddleware)

		r.Mount("/english", questiongen.Routes(cfg.QuestionGen.EnglishHandler))
		r.Mount("/math", questiongen.Routes(cfg.QuestionGen.MathHandler))
		r.Mount("/questions", questiongen.Routes(cfg.QuestionGen.GenericHandler))
	})

	if cfg.HistoryHandler != nil {
		r.Mount("/question-sets", history.Routes(cfg.HistoryHandler))
	}

	return r
}

func rootInfo(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Welcome to Thinki Question Generator API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"english": "/api/english/generate",
			"math":    "/api/math/generate",
			"generic": "/api/questions/generate",
		},
		"features": map[string]string{
			"flexible_context":      "Context accepts additional fields dynamically",
			"custom_templates":      "Support for custom question templates via 'template' field",
			"template_placeholders": "Use {count}, {subject}, {year_band}, {ema}, {age}, {language}, {context}, or any request field name",
		},
	})
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
