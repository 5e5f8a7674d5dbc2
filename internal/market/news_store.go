package market

import (
	"sync"
	"time"

	"github.com/benedictmc/news-trading/internal/domain"
)

// NewsStore holds the active correlation record per symbol. The news worker
// is the creation path; the decision task reads and mutates records and
// removes them after expiry. Both serialize through the store's lock.
type NewsStore struct {
	mu     sync.Mutex
	events map[string]*domain.NewsEvent
}

// NewNewsStore creates an empty store.
func NewNewsStore() *NewsStore {
	return &NewsStore{events: make(map[string]*domain.NewsEvent)}
}

// RecordMention registers a news mention of a tradable symbol. A repeat
// mention while the event is active increments its occurrence count and
// pushes the expiry out by ttl; otherwise a fresh event is created with a
// zero baseline and zero z-score maxima. The returned event is a copy:
// callers read it without the store's lock.
func (s *NewsStore) RecordMention(symbol, title, newsID string, now time.Time, ttl time.Duration) domain.NewsEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ev, ok := s.events[symbol]; ok {
		ev.OccurrenceCount++
		ev.ExpiresAt = now.Add(ttl)
		return *ev
	}

	ev := &domain.NewsEvent{
		Symbol:          symbol,
		NewsID:          newsID,
		Title:           title,
		StartedAt:       now,
		ExpiresAt:       now.Add(ttl),
		OccurrenceCount: 1,
	}
	s.events[symbol] = ev
	return *ev
}

// Partition splits the current symbols into live and expired sets. The
// decision tick computes removals here, processes live events, and applies
// the removals afterwards, so the map is never structurally mutated while
// being iterated.
func (s *NewsStore) Partition(now time.Time) (live, expired []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for symbol, ev := range s.events {
		if ev.Expired(now) {
			expired = append(expired, symbol)
		} else {
			live = append(live, symbol)
		}
	}
	return live, expired
}

// Apply runs fn against the symbol's event under the store lock. fn must not
// block or take other table locks. Returns false when no event exists.
func (s *NewsStore) Apply(symbol string, fn func(*domain.NewsEvent)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev, ok := s.events[symbol]
	if !ok {
		return false
	}
	fn(ev)
	return true
}

// Remove deletes the symbol's event and returns a copy for export.
func (s *NewsStore) Remove(symbol string) (domain.NewsEvent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev, ok := s.events[symbol]
	if !ok {
		return domain.NewsEvent{}, false
	}
	delete(s.events, symbol)
	return *ev, true
}

// Len returns the number of active events.
func (s *NewsStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}
