package trend

import (
	"strings"
	"testing"
)

func TestKeywords(t *testing.T) {
	e := NewExtractor(2, 20, nil)

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"basic", "Quantum computing breakthrough", []string{"quantum", "computing", "breakthrough"}},
		{"stopwords filtered", "the rise of the machines", []string{"rise", "machines"}},
		{"acronym admitted", "AI regulation debated", []string{"ai", "regulation", "debated"}},
		{"single letters dropped", "a i o u vaccine", []string{"vaccine"}},
		{"case normalized", "NASA Nasa nasa", []string{"nasa"}},
		{"punctuation split", "climate-change: floods, droughts!", []string{"climate", "change", "floods", "droughts"}},
		{"digits only dropped", "2024 results 404", []string{"results"}},
		{"empty text", "", nil},
		{"whitespace only", "   \t\n ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := e.Keywords(tt.input)
			if len(result) != len(tt.expected) {
				t.Fatalf("Keywords(%q) = %v, want %v", tt.input, result, tt.expected)
			}
			for i, kw := range result {
				if kw != tt.expected[i] {
					t.Errorf("Keywords(%q)[%d] = %q, want %q", tt.input, i, kw, tt.expected[i])
				}
			}
		})
	}
}

func TestKeywordsLengthBounds(t *testing.T) {
	e := NewExtractor(3, 6, nil)

	result := e.Keywords("ai robot machinery")
	// "ai" too short, "machinery" too long
	if len(result) != 1 || result[0] != "robot" {
		t.Errorf("expected only %q, got %v", "robot", result)
	}
}

func TestKeywordsDedupe(t *testing.T) {
	e := NewExtractor(2, 20, nil)

	result := e.Keywords("drought drought drought hits farmland")
	count := 0
	for _, kw := range result {
		if kw == "drought" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected one deduped %q keyword, got %d", "drought", count)
	}
}

func TestKeywordsCustomStopwords(t *testing.T) {
	e := NewExtractor(2, 20, []string{"breaking", "news"})

	result := e.Keywords("Breaking news the earthquake")
	// Custom list replaces the default entirely, so "the" passes through
	joined := strings.Join(result, " ")
	if joined != "the earthquake" {
		t.Errorf("expected %q, got %q", "the earthquake", joined)
	}
}

func TestDefaultStopwordCount(t *testing.T) {
	if len(defaultStopwords) < 60 {
		t.Errorf("default stopword list has %d entries, want at least 60", len(defaultStopwords))
	}
}
