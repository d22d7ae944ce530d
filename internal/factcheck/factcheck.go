// Package factcheck gates remote completions with a speculative-language
// heuristic. A factual portfolio assistant must prefer refusing over
// fabricating, so hedged answers are rejected and replaced with a
// knowledge base fallback.
package factcheck

import "strings"

// hedgeMarkers is the fixed list of speculative phrases that disqualify
// a generated answer. Checked case-insensitively, first match wins.
var hedgeMarkers = []string{
	"probably",
	"might be",
	"i think",
	"perhaps",
	"possibly",
	"likely",
	"may have",
	"approximately",
	"i believe",
	"seems to",
	"appears to",
	"could be",
	"i assume",
	"i guess",
	"presumably",
	"supposedly",
}

// truncationMarkers flag answers that were cut off mid-sentence.
var truncationMarkers = []string{
	"...",
	"…",
}

// ContainsHedging reports whether text contains any hedge or truncation
// marker. False positives on legitimate phrasing are an accepted tradeoff.
func ContainsHedging(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range hedgeMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	for _, marker := range truncationMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}
