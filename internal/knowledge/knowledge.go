// Package knowledge holds the static knowledge base about the portfolio
// subject: canned topic responses, the keyword index used for intent
// matching, and the canonical phrase table used for exact matches.
package knowledge

import (
	"fmt"
	"strings"
)

// Topic is a canned-answer unit: a stable identifier, the canonical
// response text (may contain lightweight markup), and optional follow-up
// suggestions pointing at other topics.
type Topic struct {
	ID        string
	Text      string
	FollowUps []FollowUp
}

// FollowUp is a suggested next question bound to another topic.
type FollowUp struct {
	Label string
	Next  string
}

// Base is the immutable knowledge base. It is built once at startup and
// is safe for unsynchronized concurrent reads.
type Base struct {
	topics   map[string]Topic
	order    []string
	keywords map[string][]string
	phrases  map[string]string
}

// New builds the knowledge base from the static topic data and validates
// that every keyword index entry and phrase references an existing topic.
func New() *Base {
	b := &Base{
		topics:   make(map[string]Topic, len(topicData)),
		keywords: keywordIndex,
		phrases:  exactPhrases,
	}
	for _, t := range topicData {
		b.topics[t.ID] = t
		b.order = append(b.order, t.ID)
	}
	for id := range keywordIndex {
		if _, ok := b.topics[id]; !ok {
			panic(fmt.Sprintf("knowledge: keyword index references unknown topic %q", id))
		}
	}
	for phrase, id := range exactPhrases {
		if _, ok := b.topics[id]; !ok {
			panic(fmt.Sprintf("knowledge: phrase %q references unknown topic %q", phrase, id))
		}
	}
	if _, ok := b.topics[TopicUnknown]; !ok {
		panic("knowledge: unknown topic missing")
	}
	return b
}

// Overrides adjusts the compiled-in knowledge data at startup, sourced
// from the optional deployment config file.
type Overrides struct {
	Topics   []Topic
	Keywords map[string][]string
	Phrases  map[string]string
}

// NewWithOverrides builds the knowledge base with deployment overrides
// applied on top of the defaults. Override topics replace same-id
// defaults or append to the iteration order; keywords and phrases are
// merged in. Unlike New, bad references in override data are reported
// as errors, not panics.
func NewWithOverrides(o Overrides) (*Base, error) {
	base := New()

	b := &Base{
		topics:   make(map[string]Topic, len(base.topics)),
		order:    append([]string(nil), base.order...),
		keywords: make(map[string][]string, len(base.keywords)),
		phrases:  make(map[string]string, len(base.phrases)),
	}
	for id, t := range base.topics {
		b.topics[id] = t
	}
	for id, list := range base.keywords {
		b.keywords[id] = append([]string(nil), list...)
	}
	for phrase, id := range base.phrases {
		b.phrases[phrase] = id
	}

	for _, t := range o.Topics {
		if t.ID == "" || strings.TrimSpace(t.Text) == "" {
			return nil, fmt.Errorf("knowledge: override topic needs id and text")
		}
		if _, exists := b.topics[t.ID]; !exists {
			b.order = append(b.order, t.ID)
		}
		b.topics[t.ID] = t
	}
	for _, t := range o.Topics {
		for _, f := range t.FollowUps {
			if _, ok := b.topics[f.Next]; !ok {
				return nil, fmt.Errorf("knowledge: follow-up %q on topic %q references unknown topic %q", f.Label, t.ID, f.Next)
			}
		}
	}
	for id, list := range o.Keywords {
		if _, ok := b.topics[id]; !ok {
			return nil, fmt.Errorf("knowledge: keyword override references unknown topic %q", id)
		}
		for _, kw := range list {
			b.keywords[id] = append(b.keywords[id], strings.ToLower(kw))
		}
	}
	for phrase, id := range o.Phrases {
		if _, ok := b.topics[id]; !ok {
			return nil, fmt.Errorf("knowledge: phrase %q references unknown topic %q", phrase, id)
		}
		b.phrases[strings.ToLower(strings.TrimSpace(phrase))] = id
	}

	return b, nil
}

// Lookup returns the topic for the given id. Absence is not an error;
// callers fall through to Unknown.
func (b *Base) Lookup(id string) (Topic, bool) {
	t, ok := b.topics[id]
	return t, ok
}

// Unknown returns the distinguished fallback topic.
func (b *Base) Unknown() Topic {
	return b.topics[TopicUnknown]
}

// ExactMatch looks up a normalized input in the canonical phrase table.
func (b *Base) ExactMatch(normalized string) (Topic, bool) {
	id, ok := b.phrases[normalized]
	if !ok {
		return Topic{}, false
	}
	return b.topics[id], true
}

// TopicOrder returns topic ids in index iteration order (insertion order
// of the topic set). The matcher relies on this order for deterministic
// tie-breaking.
func (b *Base) TopicOrder() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Keywords returns the trigger substrings registered for a topic.
func (b *Base) Keywords(id string) []string {
	return b.keywords[id]
}

// Facts renders the full knowledge content as plain text for inclusion
// in the completion system prompt.
func (b *Base) Facts() string {
	var sb strings.Builder
	for _, id := range b.order {
		if id == TopicWelcome || id == TopicUnknown {
			continue
		}
		t := b.topics[id]
		sb.WriteString(strings.ToUpper(id))
		sb.WriteString(":\n")
		sb.WriteString(t.Text)
		sb.WriteString("\n\n")
	}
	return strings.TrimSpace(sb.String())
}
