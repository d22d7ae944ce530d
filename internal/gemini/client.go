// Package gemini is the remote completion client. It issues a single
// bounded-time generateContent request per resolution and classifies
// every failure mode so the resolver can degrade instead of erroring.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"portfoliochat/internal/config"
	"portfoliochat/internal/conversation"
	"portfoliochat/internal/knowledge"
	"portfoliochat/internal/metrics"
)

// Client talks to the Gemini API. A Client built without a credential
// is valid; it reports Unconfigured on every Complete call.
type Client struct {
	genai        *genai.Client
	model        string
	timeout      time.Duration
	temperature  float32
	topK         float32
	topP         float32
	maxTokens    int32
	promptTurns  int
	systemPrompt string
	log          *slog.Logger
}

// New creates a completion client from configuration. A missing API key
// is not an error; the returned client degrades to Unconfigured outcomes
// so the resolver can fall back.
func New(ctx context.Context, cfg *config.Config, kb *knowledge.Base, log *slog.Logger) (*Client, error) {
	c := &Client{
		model:        cfg.GeminiModel,
		timeout:      time.Duration(cfg.GeminiTimeout) * time.Second,
		temperature:  float32(cfg.Temperature),
		topK:         float32(cfg.TopK),
		topP:         float32(cfg.TopP),
		maxTokens:    int32(cfg.MaxOutputTokens),
		promptTurns:  cfg.HistoryPromptTurns,
		systemPrompt: BuildSystemPrompt(kb),
		log:          log,
	}
	if c.timeout <= 0 {
		c.timeout = 8 * time.Second
	}
	if c.promptTurns <= 0 {
		c.promptTurns = 10
	}

	if !cfg.HasAPIKey() {
		log.Warn("GEMINI_API_KEY not set, completion client unconfigured")
		return c, nil
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	c.genai = gc
	return c, nil
}

// Complete sends the user text plus recent history to the model and
// classifies the result. The call is bounded by the configured timeout;
// expiry cancels the in-flight request. There are no retries: any
// failure maps straight to a fallback outcome.
func (c *Client) Complete(ctx context.Context, userText string, history []conversation.Turn) Outcome {
	out := c.complete(ctx, userText, history)
	metrics.RecordCompletionOutcome(out.Kind.String())
	return out
}

func (c *Client) complete(ctx context.Context, userText string, history []conversation.Turn) Outcome {
	if c.genai == nil {
		return Outcome{Kind: Unconfigured}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	contents := c.buildContents(userText, history)

	temp := c.temperature
	topK := c.topK
	topP := c.topP
	genCfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(c.systemPrompt, genai.RoleUser),
		Temperature:       &temp,
		TopK:              &topK,
		TopP:              &topP,
		MaxOutputTokens:   c.maxTokens,
	}

	start := time.Now()
	res, err := c.genai.Models.GenerateContent(ctx, c.model, contents, genCfg)
	if err != nil {
		out := classify(err)
		c.log.Warn("completion failed",
			"outcome", out.Kind.String(),
			"duration", time.Since(start),
			"error", err)
		return out
	}

	text := strings.TrimSpace(res.Text())
	if text == "" {
		c.log.Warn("completion returned no text", "duration", time.Since(start))
		return Outcome{Kind: Malformed}
	}

	c.log.Info("completion succeeded",
		"duration", time.Since(start),
		"response_len", len(text))
	return Outcome{Kind: Success, Text: text}
}

// buildContents converts the last promptTurns of history into the
// alternating user/model transcript and appends the new user text as the
// final turn.
func (c *Client) buildContents(userText string, history []conversation.Turn) []*genai.Content {
	if len(history) > c.promptTurns {
		history = history[len(history)-c.promptTurns:]
	}

	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		var role genai.Role = genai.RoleUser
		if turn.Role == conversation.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Content, role))
	}
	contents = append(contents, genai.NewContentFromText(userText, genai.RoleUser))
	return contents
}

// classify maps a transport or API error onto a fallback outcome.
func classify(err error) Outcome {
	if errors.Is(err, context.DeadlineExceeded) {
		return Outcome{Kind: TimedOut}
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusTooManyRequests || apiErr.Status == "RESOURCE_EXHAUSTED" {
			return Outcome{Kind: RateLimited}
		}
		// 5xx, quota text in the body, and anything else the API rejects
		// all degrade the same way.
		return Outcome{Kind: ServerError}
	}

	// Caller cancellation (client disconnect) is not a timeout; it lands
	// with the transport failures.
	return Outcome{Kind: NetworkError}
}
