package trend

import (
	"strings"
	"unicode"
)

// defaultStopwords filters common words that never make useful topics.
var defaultStopwords = map[string]struct{}{}

func init() {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else",
		"when", "while", "at", "by", "for", "with", "about", "against",
		"between", "into", "through", "during", "before", "after",
		"above", "below", "to", "from", "up", "down", "in", "out", "on",
		"off", "over", "under", "again", "further", "once", "here",
		"there", "all", "any", "both", "each", "few", "more", "most",
		"other", "some", "such", "no", "nor", "not", "only", "own",
		"same", "so", "than", "too", "very", "can", "will", "just",
		"is", "are", "was", "were", "be", "been", "being", "have",
		"has", "had", "do", "does", "did", "of", "as", "it", "its",
		"this", "that", "these", "those", "he", "she", "they", "them",
		"his", "her", "their", "what", "which", "who", "whom", "i",
		"you", "we", "me", "my", "your", "our", "new", "said", "says",
	}
	for _, w := range words {
		defaultStopwords[w] = struct{}{}
	}
}

// Extractor turns article text into candidate topic keywords. It is a
// pure function of text and configuration; malformed or empty text
// yields an empty set, never an error.
type Extractor struct {
	minLen    int
	maxLen    int
	stopwords map[string]struct{}
}

// NewExtractor builds an extractor with the given length bounds. A nil
// or empty stopwords slice selects the built-in list; a caller-supplied
// list replaces it entirely.
func NewExtractor(minLen, maxLen int, stopwords []string) *Extractor {
	set := defaultStopwords
	if len(stopwords) > 0 {
		set = make(map[string]struct{}, len(stopwords))
		for _, w := range stopwords {
			set[strings.ToLower(w)] = struct{}{}
		}
	}
	return &Extractor{minLen: minLen, maxLen: maxLen, stopwords: set}
}

// Keywords returns the unique candidate keywords in text, lowercased.
// Tokens outside the length bounds, stopwords, and digit-only tokens
// are discarded. The default minimum length of 2 admits acronyms.
func (e *Extractor) Keywords(text string) []string {
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]bool)
	var result []string
	for _, tok := range tokens {
		n := len([]rune(tok))
		if n < e.minLen || n > e.maxLen {
			continue
		}
		if _, stop := e.stopwords[tok]; stop {
			continue
		}
		if !hasLetter(tok) {
			continue
		}
		if !seen[tok] {
			seen[tok] = true
			result = append(result, tok)
		}
	}
	return result
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
