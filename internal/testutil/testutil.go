// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"

	"portfoliochat/internal/config"
	"portfoliochat/internal/conversation"
	"portfoliochat/internal/resolver"
	"portfoliochat/internal/server"
)

// StaticResolver is a MessageResolver stub returning a fixed resolution
// for every message.
type StaticResolver struct {
	Text   string
	Source string
	Calls  int
}

// Resolve implements api.MessageResolver.
func (r *StaticResolver) Resolve(_ context.Context, _ string, _ []conversation.Turn) resolver.Resolved {
	r.Calls++
	return resolver.Resolved{
		Text:      r.Text,
		Source:    r.Source,
		Timestamp: time.Now(),
	}
}

// TestConfig returns a config suitable for handler tests: no credential,
// generous limits, defaults otherwise.
func TestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.Load()
	cfg.GeminiAPIKey = ""
	cfg.RateLimitPerMinute = 10000
	return cfg
}

// NewChatApp builds a fiber app with production middleware and routes
// wired to the given resolver, for use with app.Test().
func NewChatApp(t *testing.T, r *StaticResolver) *fiber.App {
	t.Helper()

	srv := server.New(TestConfig(t))
	srv.RegisterRoutes(r, slog.New(slog.DiscardHandler))
	return srv.App
}
