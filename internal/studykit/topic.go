package studykit

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// stopwords filtered during topic extraction.
var stopwords = map[string]bool{
	"the": true, "and": true, "a": true, "an": true, "in": true,
	"on": true, "at": true, "with": true, "for": true, "to": true,
	"of": true, "is": true, "are": true, "this": true, "that": true,
	"was": true, "were": true, "be": true, "been": true, "it": true,
}

// topicMarkers introduce an explicit topic statement in the source text.
var topicMarkers = []string{"topic:", "subject:", "about:", "focuses on:"}

// ExtractTopic derives a short topic label from source text. It prefers an
// explicit "topic:" style marker, then falls back to the first meaningful
// words of the first sentence.
func ExtractTopic(text string) string {
	for _, marker := range topicMarkers {
		after := indexAfterFold(text, marker)
		if after < 0 {
			continue
		}
		rest := text[after:]
		if end := strings.IndexAny(rest, ".\n"); end > 0 {
			rest = rest[:end]
		}
		topic := strings.TrimSpace(rest)
		words := strings.Fields(topic)
		if len(words) >= 1 && len(words) <= 10 {
			return topic
		}
	}

	firstSentence := text
	if end := strings.IndexAny(text, ".\n"); end > 0 {
		firstSentence = text[:end]
	}

	words := strings.Fields(firstSentence)
	var meaningful []string
	for _, w := range words {
		trimmed := strings.Trim(w, ",;:!?\"'()")
		if len(trimmed) > 3 && !stopwords[strings.ToLower(trimmed)] {
			meaningful = append(meaningful, trimmed)
		}
		if len(meaningful) == 5 {
			break
		}
	}

	if len(meaningful) == 0 {
		if len(words) > 5 {
			words = words[:5]
		}
		return strings.Join(words, " ")
	}
	return strings.Join(meaningful, " ")
}

// indexAfterFold returns the byte offset just past the first case-insensitive
// match of marker in text, or -1. Matching is done rune by rune against text
// itself; offsets into a lowercased copy are not valid here because Unicode
// case mapping can change byte lengths.
func indexAfterFold(text, marker string) int {
	for i := 0; i < len(text); {
		if end, ok := matchFold(text[i:], marker); ok {
			return i + end
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return -1
}

// matchFold reports whether s begins with a case-insensitive match of marker
// and returns the byte length of the matched prefix of s.
func matchFold(s, marker string) (int, bool) {
	i := 0
	for _, mr := range marker {
		if i >= len(s) {
			return 0, false
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.ToLower(r) != unicode.ToLower(mr) {
			return 0, false
		}
		i += size
	}
	return i, true
}
