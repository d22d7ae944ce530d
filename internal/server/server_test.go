package server

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"portfoliochat/internal/config"
)

func newTestServer(t *testing.T, rateLimit int) *Server {
	t.Helper()

	cfg := config.Load()
	cfg.GeminiAPIKey = ""
	cfg.RateLimitPerMinute = rateLimit
	return New(cfg)
}

// TestRateLimiterReturnsJSON verifies that exhausting the per-IP budget
// produces a 429 with a JSON error body rather than fiber's default
// plain-text response. The chat widget parses every response as JSON.
func TestRateLimiterReturnsJSON(t *testing.T) {
	srv := newTestServer(t, 2)
	srv.App.Get("/ping", func(c fiber.Ctx) error { return c.SendString("pong") })

	var last *http.Response
	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest("GET", "/ping", nil)
		resp, err := srv.App.Test(req)
		if err != nil {
			t.Fatalf("request %d failed: %v", i, err)
		}
		last = resp
	}

	if last.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", last.StatusCode)
	}
	if ct := last.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	body, _ := io.ReadAll(last.Body)
	if !strings.Contains(string(body), "Rate limit exceeded") {
		t.Errorf("body = %q, want rate limit message", body)
	}
}

// TestMetricsEndpointWired verifies the Prometheus scrape endpoint is
// reachable through the fasthttp adaptor. The chat route is registered
// but never exercised, so a nil resolver is fine here.
func TestMetricsEndpointWired(t *testing.T) {
	srv := newTestServer(t, 1000)
	srv.RegisterRoutes(nil, slog.New(slog.DiscardHandler))

	req, _ := http.NewRequest("GET", "/metrics", nil)
	resp, err := srv.App.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "go_goroutines") {
		t.Errorf("metrics output missing default collectors")
	}
}

// TestErrorHandlerReturnsJSON verifies unmatched routes flow through the
// JSON error handler.
func TestErrorHandlerReturnsJSON(t *testing.T) {
	srv := newTestServer(t, 1000)

	req, _ := http.NewRequest("GET", "/nope", nil)
	resp, err := srv.App.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
}
