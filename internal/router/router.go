package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"sakhiai/internal/handlers"
	"sakhiai/internal/middleware"
)

func New(chatHandler *handlers.ChatHandler, frontendURL string, chatRequestsPerMin int) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Chat rate limiter (per IP)
	chatLimiter := middleware.NewRateLimiter(chatRequestsPerMin, time.Minute)

	// Liveness probe
	r.Get("/", chatHandler.Root)

	r.Group(func(r chi.Router) {
		r.Use(chatLimiter.Middleware)
		r.Post("/chat", chatHandler.Chat)
	})

	return r
}
