package trend

import (
	"fmt"
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"kitten", "sitting", 3},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"flaw", "lawn", 2},
		{"ai", "air", 1},
		{"tech", "technology", 6},
	}

	for _, tt := range tests {
		if got := Levenshtein(tt.a, tt.b); got != tt.expected {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestSimilarityIdentityAndSymmetry(t *testing.T) {
	keywords := []string{"ai", "technology", "election", "x"}

	for _, kw := range keywords {
		if sim := Similarity(kw, kw); sim != 1 {
			t.Errorf("Similarity(%q, %q) = %f, want 1", kw, kw, sim)
		}
	}

	pairs := [][2]string{
		{"technology", "tech"},
		{"election", "selection"},
		{"ai", "air"},
	}
	for _, p := range pairs {
		ab := Similarity(p[0], p[1])
		ba := Similarity(p[1], p[0])
		if ab != ba {
			t.Errorf("Similarity not symmetric for (%q, %q): %f vs %f", p[0], p[1], ab, ba)
		}
	}
}

func TestSimilarityAbbreviation(t *testing.T) {
	// "tech" is a prefix abbreviation of "technology"; raw edit
	// distance alone would put these far apart.
	sim := Similarity("technology", "tech")
	t.Logf("Similarity(technology, tech) = %f", sim)
	if sim < 0.6 {
		t.Errorf("Similarity(technology, tech) = %f, want >= 0.6", sim)
	}

	// Too short to qualify as an abbreviation
	if sim := Similarity("ai", "airliner"); sim > 0.3 {
		t.Errorf("Similarity(ai, airliner) = %f, abbreviation rule should not apply", sim)
	}
}

func TestSimilarityEmpty(t *testing.T) {
	if sim := Similarity("", ""); sim != 0 {
		t.Errorf("Similarity of two empty strings = %f, want 0", sim)
	}
	if sim := Similarity("", "abc"); sim != 0 {
		t.Errorf("Similarity(\"\", \"abc\") = %f, want 0", sim)
	}
}

func trendingTopic(keyword string, trend float64) Topic {
	t := Topic{Keyword: keyword}
	t.Scores.Trend = trend
	return t
}

func TestClusterMerges(t *testing.T) {
	c := NewClusterer(0.6, 10)
	topics := []Topic{
		trendingTopic("technology", 0.9),
		trendingTopic("election", 0.8),
		trendingTopic("tech", 0.7),
	}

	clusters := c.Cluster(topics)
	if len(clusters) != 2 {
		t.Fatalf("got %d clusters, want 2", len(clusters))
	}
	if clusters[0].Representative != "technology" {
		t.Errorf("first cluster representative = %q, want %q (highest trend score)",
			clusters[0].Representative, "technology")
	}
	if len(clusters[0].Members) != 2 {
		t.Errorf("technology cluster has %d members, want 2", len(clusters[0].Members))
	}
}

func TestClusterSizeBound(t *testing.T) {
	maxSize := 10
	c := NewClusterer(0.6, maxSize)

	// 15 highly similar keywords; greedy absorption must stop at the bound
	var topics []Topic
	for i := 0; i < 15; i++ {
		topics = append(topics, trendingTopic(fmt.Sprintf("storm%d", i), 1.0-float64(i)*0.01))
	}

	clusters := c.Cluster(topics)
	for _, cl := range clusters {
		if len(cl.Members) > maxSize {
			t.Errorf("cluster %s has %d members, exceeds max %d", cl.ID, len(cl.Members), maxSize)
		}
	}
	if len(clusters) < 2 {
		t.Errorf("overflow topics should seed a second cluster, got %d clusters", len(clusters))
	}
}

func TestClusterDissimilarStaySeparate(t *testing.T) {
	c := NewClusterer(0.6, 10)
	topics := []Topic{
		trendingTopic("earthquake", 0.9),
		trendingTopic("olympics", 0.8),
	}

	clusters := c.Cluster(topics)
	if len(clusters) != 2 {
		t.Fatalf("dissimilar keywords merged: got %d clusters, want 2", len(clusters))
	}
	for _, cl := range clusters {
		if len(cl.Members) != 1 {
			t.Errorf("cluster %s has %d members, want 1", cl.ID, len(cl.Members))
		}
	}
}

func TestClusterEmpty(t *testing.T) {
	c := NewClusterer(0.6, 10)
	if clusters := c.Cluster(nil); len(clusters) != 0 {
		t.Errorf("clustering nil topics produced %d clusters", len(clusters))
	}
}
