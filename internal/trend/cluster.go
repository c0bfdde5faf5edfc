package trend

// Abbreviation handling: a keyword of abbrevMinLen+ runes that prefixes
// a longer keyword ("tech" / "technology") scores abbrevSimilarity even
// though the raw edit distance between the two is large.
const (
	abbrevMinLen     = 4
	abbrevSimilarity = 0.8
)

// Levenshtein returns the edit distance between a and b with unit
// substitution, insertion, and deletion costs. Rune-based, two-row DP.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = minInt(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// Similarity returns a keyword similarity in [0,1]: 1 minus the edit
// distance normalized by the longer keyword, with the abbreviation rule
// applied for prefix pairs. Symmetric; Similarity(k, k) == 1 for any
// non-empty k.
func Similarity(a, b string) float64 {
	if a == b {
		if a == "" {
			return 0
		}
		return 1
	}

	maxLen := len([]rune(a))
	if n := len([]rune(b)); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 0
	}

	sim := 1 - float64(Levenshtein(a, b))/float64(maxLen)
	if abbrev := abbreviationSimilarity(a, b); abbrev > sim {
		sim = abbrev
	}
	return sim
}

// abbreviationSimilarity detects prefix abbreviations. Returns 0 when
// the rule does not apply.
func abbreviationSimilarity(a, b string) float64 {
	short, long := a, b
	if len(short) > len(long) {
		short, long = long, short
	}
	if len([]rune(short)) < abbrevMinLen {
		return 0
	}
	if len(long) > len(short) && long[:len(short)] == short {
		return abbrevSimilarity
	}
	return 0
}

// Clusterer groups trending topics whose keywords exceed the
// similarity threshold, up to a bounded member count per cluster.
type Clusterer struct {
	threshold float64
	maxSize   int
}

// NewClusterer builds a clusterer.
func NewClusterer(threshold float64, maxSize int) *Clusterer {
	return &Clusterer{threshold: threshold, maxSize: maxSize}
}

// Cluster greedily partitions topics, which must already be sorted by
// descending trend score: each unclustered topic seeds a cluster, then
// absorbs remaining unclustered topics similar to the seed until the
// cluster is full. Cluster order follows seed order, so clusters come
// out ranked by the seed's trend score.
func (c *Clusterer) Cluster(topics []Topic) []Cluster {
	clustered := make([]bool, len(topics))
	var out []Cluster

	for i := range topics {
		if clustered[i] {
			continue
		}
		seed := topics[i]
		clustered[i] = true
		cl := Cluster{
			ID:             "cluster:" + seed.Keyword,
			Representative: seed.Keyword,
			Members:        []Topic{seed},
		}

		for j := i + 1; j < len(topics) && len(cl.Members) < c.maxSize; j++ {
			if clustered[j] {
				continue
			}
			if Similarity(seed.Keyword, topics[j].Keyword) > c.threshold {
				clustered[j] = true
				cl.Members = append(cl.Members, topics[j])
			}
		}
		out = append(out, cl)
	}
	return out
}

func minInt(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
