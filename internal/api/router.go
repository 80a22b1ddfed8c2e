package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/abeeranajam31/Ai-powered-Chatot/internal/api/handler"
	customMiddleware "github.com/abeeranajam31/Ai-powered-Chatot/internal/api/middleware"
	"github.com/abeeranajam31/Ai-powered-Chatot/internal/domain"
	"github.com/abeeranajam31/Ai-powered-Chatot/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(chatService *service.ChatService, history domain.HistoryRepository) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS fully open
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	chatHandler := handler.NewChatHandler(chatService, history)

	r.Get("/health", handler.HealthCheck)
	r.Post("/chat", chatHandler.Chat)
	r.Route("/chat/{sessionID}", func(r chi.Router) {
		r.Get("/history", chatHandler.History)
		r.Delete("/", chatHandler.Clear)
	})

	return r
}
