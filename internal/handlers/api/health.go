package api

import (
	"github.com/gofiber/fiber/v3"

	"portfoliochat/internal/config"
)

// HealthHandler reports service liveness via JSON API.
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler creates a new API health handler.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Health returns liveness plus whether the completion backend has a
// credential. The service is healthy either way; without a key it just
// answers from the knowledge base.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	return jsonSuccess(c, fiber.Map{
		"status":            "ok",
		"gemini_configured": h.cfg.HasAPIKey(),
	})
}
