// Package matcher selects a knowledge base topic for free-form user text
// by scoring it against each topic's trigger keywords.
package matcher

import (
	"strings"

	"portfoliochat/internal/knowledge"
)

// Matcher scores input text against the knowledge base keyword index.
// It holds no mutable state and is safe for concurrent use.
type Matcher struct {
	kb *knowledge.Base
}

// New creates a matcher over the given knowledge base.
func New(kb *knowledge.Base) *Matcher {
	return &Matcher{kb: kb}
}

// Match returns the topic id whose keywords best cover the input.
//
// Scoring: a keyword equal to a whole whitespace-delimited token counts 2,
// a plain substring hit counts 1. The strictly highest total wins; ties
// keep the earlier topic in index iteration order. Any score above zero
// is trusted; an all-zero score returns the unknown topic.
func (m *Matcher) Match(text string) string {
	input := strings.ToLower(strings.TrimSpace(text))
	if input == "" {
		return m.kb.Unknown().ID
	}

	tokens := make(map[string]bool)
	for _, tok := range strings.Fields(input) {
		tokens[tok] = true
	}

	bestID := m.kb.Unknown().ID
	bestScore := 0
	for _, id := range m.kb.TopicOrder() {
		score := 0
		for _, kw := range m.kb.Keywords(id) {
			switch {
			case tokens[kw]:
				score += 2
			case strings.Contains(input, kw):
				score++
			}
		}
		if score > bestScore {
			bestID = id
			bestScore = score
		}
	}

	return bestID
}
