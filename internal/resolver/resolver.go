// Package resolver orchestrates the response pipeline: exact static
// match, then the remote completion gated by the factuality filter, then
// the keyword-matched knowledge base fallback. Every failure path
// degrades to a canned answer; callers never see a transport error.
package resolver

import (
	"context"
	"log/slog"
	"time"

	"portfoliochat/internal/conversation"
	"portfoliochat/internal/factcheck"
	"portfoliochat/internal/gemini"
	"portfoliochat/internal/knowledge"
	"portfoliochat/internal/matcher"
	"portfoliochat/internal/validation"
)

// Provenance tags identifying which pipeline stage produced the answer.
const (
	SourceStatic                  = "static"
	SourceAPI                     = "api"
	SourceRateLimitFallback       = "rate_limit_fallback"
	SourceErrorFallback           = "error_fallback"
	SourceInvalidResponseFallback = "invalid_response_fallback"
	SourceSpeculationFallback     = "speculation_fallback"
	SourceNoAPIKeyFallback        = "no_api_key_fallback"
)

// contactLifeline is the last line of defense: shown only if even the
// fallback topic lookup produces nothing usable.
const contactLifeline = "You can reach Cole directly at colelenting7@gmail.com or 081 348 9356."

// CompletionClient is the resolver's view of the generative backend.
type CompletionClient interface {
	Complete(ctx context.Context, userText string, history []conversation.Turn) gemini.Outcome
}

// Resolved is the final answer for one user message. Produced fresh per
// request, never cached.
type Resolved struct {
	Text      string
	Source    string
	Topic     knowledge.Topic // fallback/static topic when applicable, zero otherwise
	Timestamp time.Time
}

// Resolver runs the resolution pipeline. It is stateless across
// requests; the knowledge base and matcher it holds are immutable.
type Resolver struct {
	kb      *knowledge.Base
	matcher *matcher.Matcher
	client  CompletionClient
	log     *slog.Logger
}

// New creates a resolver with explicit dependencies.
func New(kb *knowledge.Base, m *matcher.Matcher, client CompletionClient, log *slog.Logger) *Resolver {
	return &Resolver{kb: kb, matcher: m, client: client, log: log}
}

// Resolve produces the answer for a user message. The message must
// already be validated as non-empty; that precondition belongs to the
// HTTP layer.
func (r *Resolver) Resolve(ctx context.Context, message string, history []conversation.Turn) Resolved {
	normalized := validation.NormalizeMessage(message)
	if topic, ok := r.kb.ExactMatch(normalized); ok {
		r.log.Info("resolved static", "topic", topic.ID)
		return Resolved{Text: topic.Text, Source: SourceStatic, Topic: topic, Timestamp: time.Now()}
	}

	out := r.client.Complete(ctx, message, history)
	switch out.Kind {
	case gemini.Success:
		if factcheck.ContainsHedging(out.Text) {
			r.log.Warn("completion rejected for hedging")
			return r.fallback(message, SourceSpeculationFallback)
		}
		return Resolved{Text: out.Text, Source: SourceAPI, Timestamp: time.Now()}
	case gemini.RateLimited:
		return r.fallback(message, SourceRateLimitFallback)
	case gemini.Malformed:
		return r.fallback(message, SourceInvalidResponseFallback)
	case gemini.Unconfigured:
		return r.fallback(message, SourceNoAPIKeyFallback)
	default:
		// TimedOut, NetworkError, ServerError
		return r.fallback(message, SourceErrorFallback)
	}
}

// fallback answers from the knowledge base via keyword matching.
func (r *Resolver) fallback(message, source string) Resolved {
	topic, ok := r.kb.Lookup(r.matcher.Match(message))
	if !ok {
		topic = r.kb.Unknown()
	}

	text := topic.Text
	if text == "" {
		text = contactLifeline
	}

	r.log.Info("resolved fallback", "source", source, "topic", topic.ID)
	return Resolved{Text: text, Source: source, Topic: topic, Timestamp: time.Now()}
}
