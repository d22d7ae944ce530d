package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"

	"portfoliochat/internal/config"
	"portfoliochat/internal/conversation"
	"portfoliochat/internal/metrics"
	"portfoliochat/internal/render"
	"portfoliochat/internal/resolver"
	"portfoliochat/internal/validation"
)

// MessageResolver is the handler's view of the resolution pipeline.
type MessageResolver interface {
	Resolve(ctx context.Context, message string, history []conversation.Turn) resolver.Resolved
}

// ChatHandler handles chat resolution via JSON API.
type ChatHandler struct {
	resolver MessageResolver
	cfg      *config.Config
	log      *slog.Logger
}

// NewChatHandler creates a new API chat handler.
func NewChatHandler(r MessageResolver, cfg *config.Config, log *slog.Logger) *ChatHandler {
	return &ChatHandler{resolver: r, cfg: cfg, log: log}
}

type historyEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Message             string         `json:"message"`
	ConversationHistory []historyEntry `json:"conversationHistory"`
}

type chatResponse struct {
	Response    string              `json:"response"`
	HTML        string              `json:"html"`
	Suggestions []render.Suggestion `json:"suggestions,omitempty"`
	Timestamp   string              `json:"timestamp"`
	Source      string              `json:"source"`
}

// Chat resolves one user message against the response pipeline. Only
// request-shape violations produce non-200 statuses; every downstream
// failure already degraded to a knowledge base answer inside the
// resolver.
func (h *ChatHandler) Chat(c fiber.Ctx) error {
	var req chatRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid JSON body")
	}

	if !validation.ValidateMessage(req.Message) {
		return jsonError(c, fiber.StatusBadRequest, "message is required")
	}

	// Bound inbound history to the configured window before resolution;
	// nothing is kept after the request.
	window := conversation.NewWindow(h.cfg.HistoryWindow)
	for _, e := range req.ConversationHistory {
		window.Append(conversation.NewTurn(conversation.ParseRole(e.Role), e.Content))
	}

	start := time.Now()
	res := h.resolver.Resolve(c.Context(), req.Message, window.Turns())
	metrics.RecordResolution(res.Source, time.Since(start))

	h.log.Info("chat resolved",
		"source", res.Source,
		"message_len", len(req.Message),
		"history_len", window.Len(),
		"duration", time.Since(start))

	var msg render.Message
	if res.Topic.ID != "" && res.Topic.Text == res.Text {
		msg = render.RenderTopic(res.Topic)
	} else {
		msg = render.Render(res.Text)
	}

	return c.JSON(chatResponse{
		Response:    res.Text,
		HTML:        msg.HTML,
		Suggestions: msg.Suggestions,
		Timestamp:   res.Timestamp.UTC().Format(time.RFC3339),
		Source:      res.Source,
	})
}

// Preflight answers bare OPTIONS probes with an empty 200. Browser
// preflights carrying request headers are answered by the CORS
// middleware before reaching this handler; the server normalizes those
// to 200 as well.
func (h *ChatHandler) Preflight(c fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}
