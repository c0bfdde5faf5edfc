package trend

import (
	"sort"
	"sync"
	"time"
)

// TopicStore owns the keyword → Topic map for one engine instance.
// It is an explicit injected object, not a process-wide singleton, so
// independent engines (per tenant, per test) do not interfere.
//
// The store lock protects the map itself; the owning engine serializes
// whole analysis cycles, so per-topic mutation is already single-writer.
type TopicStore struct {
	mu     sync.RWMutex
	topics map[string]*Topic
}

// NewTopicStore creates an empty store.
func NewTopicStore() *TopicStore {
	return &TopicStore{topics: make(map[string]*Topic)}
}

// Record appends a mention to the keyword's topic, creating the record
// on first sight of the keyword.
func (s *TopicStore) Record(keyword string, m Mention) *Topic {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.topics[keyword]
	if !ok {
		t = &Topic{
			Keyword:   keyword,
			FirstSeen: m.At,
			Stage:     StageEmerging,
		}
		s.topics[keyword] = t
	}
	t.Mentions = append(t.Mentions, m)
	if m.At.After(t.LastSeen) {
		t.LastSeen = m.At
	}
	return t
}

// Get returns the topic for a keyword, if present.
func (s *TopicStore) Get(keyword string) (*Topic, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.topics[keyword]
	return t, ok
}

// Len returns the number of retained topics.
func (s *TopicStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.topics)
}

// All returns the retained topics in no particular order.
func (s *TopicStore) All() []*Topic {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Topic, 0, len(s.topics))
	for _, t := range s.topics {
		out = append(out, t)
	}
	return out
}

// Purge prunes every topic's mention list to the long window and drops
// topics left with no mentions. Returns the number of topics dropped.
func (s *TopicStore) Purge(now time.Time, longWindow time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := now.Add(-longWindow)
	dropped := 0
	for keyword, t := range s.topics {
		kept := t.Mentions[:0]
		for _, m := range t.Mentions {
			if m.At.After(cutoff) {
				kept = append(kept, m)
			}
		}
		t.Mentions = kept
		if len(t.Mentions) == 0 {
			delete(s.topics, keyword)
			dropped++
		}
	}
	return dropped
}

// SortMentions orders each topic's mention list chronologically.
// Input article batches carry no ordering guarantee.
func (s *TopicStore) SortMentions() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.topics {
		sort.Slice(t.Mentions, func(i, j int) bool {
			return t.Mentions[i].At.Before(t.Mentions[j].At)
		})
	}
}

// Reset clears all topics and history. Idempotent; intended for
// process shutdown and test teardown.
func (s *TopicStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topics = make(map[string]*Topic)
}
