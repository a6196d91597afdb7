package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/raffaelramalhorosa/feedbridge/internal/feed"
	"github.com/raffaelramalhorosa/feedbridge/internal/models"
)

// Store provides thread-safe, in-memory storage for feed subscriptions and
// the unified entries read from them.
// All public methods are safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	feeds   map[string]models.Feed
	entries map[string]models.StoredEntry // keyed by entry ID
}

// New creates an empty Store ready for use.
func New() *Store {
	return &Store{
		feeds:   make(map[string]models.Feed),
		entries: make(map[string]models.StoredEntry),
	}
}

// ---------- Feeds ----------

// AddFeed registers a new feed and returns it with its generated ID.
// A zero format leaves detection to the fetcher.
func (s *Store) AddFeed(name, url string, format feed.Format) models.Feed {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := models.Feed{
		ID:     uuid.NewString(),
		Name:   name,
		URL:    url,
		Format: format,
	}
	s.feeds[f.ID] = f
	return f
}

// GetFeed looks a feed up by ID.
func (s *Store) GetFeed(id string) (models.Feed, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.feeds[id]
	return f, ok
}

// RemoveFeed deletes a feed and all of its entries.
func (s *Store) RemoveFeed(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.feeds[id]; !ok {
		return false
	}

	delete(s.feeds, id)

	for key, e := range s.entries {
		if e.FeedID == id {
			delete(s.entries, key)
		}
	}
	return true
}

// ListFeeds returns every registered feed ordered by name.
func (s *Store) ListFeeds() []models.Feed {
	s.mu.RLock()
	defer s.mu.RUnlock()

	feeds := make([]models.Feed, 0, len(s.feeds))
	for _, f := range s.feeds {
		feeds = append(feeds, f)
	}
	sort.Slice(feeds, func(i, j int) bool {
		if feeds[i].Name != feeds[j].Name {
			return feeds[i].Name < feeds[j].Name
		}
		return feeds[i].ID < feeds[j].ID
	})
	return feeds
}

// UpdateLastFetched records when a feed was last successfully fetched.
func (s *Store) UpdateLastFetched(feedID string, t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.feeds[feedID]; ok {
		f.LastFetched = t
		s.feeds[feedID] = f
	}
}

// ---------- Entries ----------

// SaveEntries stores a batch of entries and returns how many were new.
// An entry already present under the same ID is replaced by the newer copy,
// since feeds edit entries in place.
func (s *Store) SaveEntries(entries []models.StoredEntry) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := 0
	for _, e := range entries {
		if _, exists := s.entries[e.ID]; !exists {
			saved++
		}
		s.entries[e.ID] = e
	}
	return saved
}

// ListEntries returns entries sorted newest-first.
// If feedID is non-empty only entries from that feed are returned.
// limit <= 0 means no limit.
func (s *Store) ListEntries(feedID string, limit int) []models.StoredEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.StoredEntry, 0, len(s.entries))
	for _, e := range s.entries {
		if feedID != "" && e.FeedID != feedID {
			continue
		}
		result = append(result, e)
	}

	sort.Slice(result, func(i, j int) bool {
		ti, tj := result[i].PublishedAt(), result[j].PublishedAt()
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return result[i].ID < result[j].ID
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}
