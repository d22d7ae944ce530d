// Package render turns resolved answer text into safe, interactive HTML
// plus quick-action suggestions. Rendering is pure: no IO, no state.
//
// Transformations run in a fixed order so later rules cannot corrupt
// earlier substitutions; every rule operates on HTML-escaped text and
// only the rules themselves introduce markup.
package render

import (
	"html"
	"regexp"
	"strings"

	"portfoliochat/internal/knowledge"
)

// Suggestion is a quick-action affordance bound to a canned follow-up
// query. Rendered as separate controls, never inside the message bubble.
type Suggestion struct {
	Label string `json:"label"`
	Query string `json:"query"`
}

// Message is the rendered form of one assistant answer.
type Message struct {
	HTML        string       `json:"html"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
}

// suggestionsDelimiter marks a trailing quick-actions block embedded in
// raw answer text. The block is stripped from the bubble and surfaced as
// Suggestions instead.
const suggestionsDelimiter = "quick actions:"

// telCountryPrefix is prepended to autolinked phone numbers in place of
// the leading zero.
const telCountryPrefix = "+27"

var (
	boldPattern    = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	emPattern      = regexp.MustCompile(`\*([^*<]+)\*`)
	mdLinkPattern  = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^\s)]+)\)`)
	bareURLPattern = regexp.MustCompile(`(^|[\s>])(https?://[^\s<]+)(</a>)?`)
	cvPathPattern  = regexp.MustCompile(`(^|[\s>])(/[^\s<]*\.pdf)`)
	emailPattern   = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern   = regexp.MustCompile(`\b0\d{2}[ -]?\d{3}[ -]?\d{4}\b`)
)

// Render converts answer text into a Message. Any "Quick actions:"
// trailer is split off first; the rest is escaped and marked up.
func Render(text string) Message {
	body, suggestions := splitSuggestions(text)

	out := html.EscapeString(body)
	out = boldPattern.ReplaceAllString(out, "<strong>$1</strong>")
	out = emPattern.ReplaceAllString(out, "<em>$1</em>")
	out = strings.ReplaceAll(out, "\n", "<br>")
	out = mdLinkPattern.ReplaceAllString(out, anchor("$2", "$1"))
	out = bareURLPattern.ReplaceAllStringFunc(out, linkBareURL)
	out = cvPathPattern.ReplaceAllStringFunc(out, linkCVPath)
	out = emailPattern.ReplaceAllString(out, anchor("mailto:$0", "$0"))
	out = phonePattern.ReplaceAllStringFunc(out, linkPhone)

	return Message{HTML: out, Suggestions: suggestions}
}

// RenderTopic renders a knowledge base topic, exposing its follow-ups as
// suggestions alongside any trailer embedded in the text itself.
func RenderTopic(topic knowledge.Topic) Message {
	msg := Render(topic.Text)
	for _, f := range topic.FollowUps {
		msg.Suggestions = append(msg.Suggestions, Suggestion{Label: f.Label, Query: f.Label})
	}
	return msg
}

// anchor builds a new-context anchor with no-opener attributes.
func anchor(href, label string) string {
	return `<a href="` + href + `" target="_blank" rel="noopener noreferrer">` + label + `</a>`
}

// linkBareURL autolinks a plain URL. A URL immediately closed by an
// anchor tag is already a link label and stays untouched.
func linkBareURL(match string) string {
	sub := bareURLPattern.FindStringSubmatch(match)
	if sub[3] != "" {
		return match
	}
	return sub[1] + anchor(sub[2], sub[2])
}

// linkCVPath renders a .pdf path as a labeled download affordance.
func linkCVPath(match string) string {
	sub := cvPathPattern.FindStringSubmatch(match)
	return sub[1] + `<a href="` + sub[2] + `" class="cv-download" download>📄 Download CV (PDF)</a>`
}

// linkPhone wraps a local phone number in a tel: anchor, replacing the
// leading zero with the fixed country prefix.
func linkPhone(number string) string {
	digits := strings.NewReplacer(" ", "", "-", "").Replace(number)
	return `<a href="tel:` + telCountryPrefix + digits[1:] + `">` + number + `</a>`
}

// splitSuggestions strips a trailing quick-actions block from raw text
// and parses its lines into suggestions.
func splitSuggestions(text string) (string, []Suggestion) {
	idx := strings.Index(strings.ToLower(text), suggestionsDelimiter)
	if idx == -1 {
		return text, nil
	}

	body := strings.TrimRight(text[:idx], " \n\t-•*")
	trailer := text[idx+len(suggestionsDelimiter):]

	var suggestions []Suggestion
	for _, line := range strings.Split(trailer, "\n") {
		label := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-•* \t"))
		if label == "" {
			continue
		}
		suggestions = append(suggestions, Suggestion{Label: label, Query: label})
	}
	return body, suggestions
}
