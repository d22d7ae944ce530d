package server

import (
	"log/slog"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"portfoliochat/internal/handlers/api"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(resolver api.MessageResolver, log *slog.Logger) {
	chatHandler := api.NewChatHandler(resolver, s.Cfg, log)
	healthHandler := api.NewHealthHandler(s.Cfg)

	// Chat API - POST resolves a message, OPTIONS answers preflight.
	// Fiber rejects other methods on the path with 405 automatically.
	s.App.Post("/api/chat", chatHandler.Chat)
	s.App.Options("/api/chat", chatHandler.Preflight)

	s.App.Get("/api/health", healthHandler.Health)

	// Prometheus scrape endpoint
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
