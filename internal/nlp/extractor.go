// Package nlp extracts normalized topic keywords from free-text journal
// answers: tokenization, stop-word removal, part-of-speech filtering and
// synonym-group collapsing. The transform is deterministic and stateless;
// tagging is comparatively expensive, so callers dispatch it off the
// request path.
package nlp

import (
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
)

// MaxKeywords is the per-answer keyword cap.
const MaxKeywords = 5

// Extractor turns free text into at most MaxKeywords frequency-ranked,
// synonym-collapsed keywords. Safe for concurrent use.
type Extractor struct{}

// NewExtractor creates a keyword extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract runs the full pipeline over one answer's text. Empty or
// whitespace-only input yields no keywords.
func (e *Extractor) Extract(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(strings.ToLower(text),
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	var order []string
	for _, tok := range doc.Tokens() {
		word := tok.Text
		if !isAlphabetic(word) || len(word) <= 2 || stopWords[word] {
			continue
		}
		if !meaningfulTag(tok.Tag) {
			continue
		}
		keyword := collapseSynonym(word)
		if _, seen := counts[keyword]; !seen {
			order = append(order, keyword)
		}
		counts[keyword]++
	}

	// Rank by frequency; ties keep first-seen order.
	ranked := append([]string(nil), order...)
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && counts[ranked[j]] > counts[ranked[j-1]]; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}
	if len(ranked) > MaxKeywords {
		ranked = ranked[:MaxKeywords]
	}
	return ranked, nil
}

// meaningfulTag keeps nouns, adjectives and verbs (Penn Treebank tags).
func meaningfulTag(tag string) bool {
	return strings.HasPrefix(tag, "NN") || strings.HasPrefix(tag, "JJ") || strings.HasPrefix(tag, "VB")
}

func isAlphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(s) > 0
}
