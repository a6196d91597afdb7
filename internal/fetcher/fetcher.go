package fetcher

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/raffaelramalhorosa/feedbridge/internal/feed"
	"github.com/raffaelramalhorosa/feedbridge/internal/models"
	"github.com/raffaelramalhorosa/feedbridge/internal/store"
	"github.com/raffaelramalhorosa/feedbridge/internal/syndication"
)

// ErrFeedNotFound is returned by Refresh for an unknown feed ID.
var ErrFeedNotFound = errors.New("feed not found")

// Options tunes the HTTP side of a Fetcher.
type Options struct {
	Interval   time.Duration
	Timeout    time.Duration
	RetryCount int
	UserAgent  string
}

// Fetcher periodically pulls every registered feed using concurrent workers
// and pushes the converted entries into the store.
type Fetcher struct {
	store    *store.Store
	client   *resty.Client
	interval time.Duration
	timeout  time.Duration
	logger   *zap.Logger
}

// New returns a Fetcher that polls feeds every opts.Interval.
func New(s *store.Store, opts Options, logger *zap.Logger) *Fetcher {
	client := resty.New().
		SetRetryCount(opts.RetryCount).
		SetRetryWaitTime(time.Second).
		SetRetryMaxWaitTime(5*time.Second).
		SetHeader("Accept", "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8")
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}
	return &Fetcher{
		store:    s,
		client:   client,
		interval: opts.Interval,
		timeout:  opts.Timeout,
		logger:   logger,
	}
}

// Start begins the background polling loop. It blocks until ctx is cancelled.
func (f *Fetcher) Start(ctx context.Context) {
	f.logger.Info("fetcher started", zap.Duration("interval", f.interval))

	// Run immediately on startup, then on every tick.
	f.FetchAll(ctx)

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			f.logger.Info("fetcher stopped")
			return
		case <-ticker.C:
			f.FetchAll(ctx)
		}
	}
}

// FetchAll fans out one goroutine per feed, collects results through a
// channel and persists them. It returns the number of new entries.
func (f *Fetcher) FetchAll(ctx context.Context) int {
	feeds := f.store.ListFeeds()
	if len(feeds) == 0 {
		return 0
	}

	f.logger.Info("fetch cycle starting", zap.Int("feeds", len(feeds)))

	results := make(chan models.FetchResult, len(feeds))

	var wg sync.WaitGroup
	for _, sub := range feeds {
		wg.Add(1)
		go func(sub models.Feed) {
			defer wg.Done()
			entries, dropped, err := f.fetchFeed(ctx, sub)
			results <- models.FetchResult{
				FeedID:  sub.ID,
				Entries: entries,
				Dropped: dropped,
				Err:     err,
			}
		}(sub)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var totalSaved int
	for res := range results {
		if res.Err != nil {
			f.logger.Error("feed fetch failed", zap.String("feed_id", res.FeedID), zap.Error(res.Err))
			continue
		}
		totalSaved += f.save(res)
	}

	f.logger.Info("fetch cycle complete", zap.Int("new_entries", totalSaved))
	return totalSaved
}

// Refresh fetches a single feed right away and returns the number of new
// entries.
func (f *Fetcher) Refresh(ctx context.Context, feedID string) (int, error) {
	sub, ok := f.store.GetFeed(feedID)
	if !ok {
		return 0, ErrFeedNotFound
	}
	entries, dropped, err := f.fetchFeed(ctx, sub)
	if err != nil {
		return 0, err
	}
	return f.save(models.FetchResult{FeedID: sub.ID, Entries: entries, Dropped: dropped}), nil
}

func (f *Fetcher) save(res models.FetchResult) int {
	saved := f.store.SaveEntries(res.Entries)
	f.store.UpdateLastFetched(res.FeedID, time.Now())
	f.logger.Info("feed fetched",
		zap.String("feed_id", res.FeedID),
		zap.Int("entries", len(res.Entries)),
		zap.Int("new", saved),
		zap.Int("dropped_fields", res.Dropped),
	)
	return saved
}

// fetchFeed downloads one feed, reads it in its declared (or detected)
// format and converts every entry.
func (f *Fetcher) fetchFeed(ctx context.Context, sub models.Feed) ([]models.StoredEntry, int, error) {
	reqCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	resp, err := f.client.R().SetContext(reqCtx).Get(sub.URL)
	if err != nil {
		return nil, 0, fmt.Errorf("get %s: %w", sub.URL, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, 0, fmt.Errorf("get %s: unexpected status %d", sub.URL, resp.StatusCode())
	}

	var native *feed.Native
	if sub.Format == 0 {
		native, err = feed.ReadAuto(resp.Body())
	} else {
		native, err = feed.Read(bytes.NewReader(resp.Body()), sub.Format)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("parse %s: %w", sub.URL, err)
	}

	entries, reports := native.EntriesWithReport()
	stored := make([]models.StoredEntry, 0, len(entries))
	dropped := 0
	for i, e := range entries {
		for _, d := range reports[i].Dropped {
			dropped++
			f.logger.Warn("entry field dropped",
				zap.String("feed_id", sub.ID),
				zap.String("guid", e.Guid.Value),
				zap.String("field", d.Field),
				zap.String("value", d.Value),
				zap.String("reason", d.Reason),
			)
		}
		stored = append(stored, models.StoredEntry{
			ID:       generateID(sub.ID, entryKey(e)),
			FeedID:   sub.ID,
			FeedName: sub.Name,
			Entry:    e,
		})
	}
	return stored, dropped, nil
}

// entryKey picks the most stable identity an entry offers: its guid, then
// its first link, then its title.
func entryKey(e syndication.Entry) string {
	if e.Guid.Value != "" {
		return e.Guid.Value
	}
	if len(e.Links) > 0 && e.Links[0].Href != "" {
		return e.Links[0].Href
	}
	return e.Title.Value
}

// generateID creates a deterministic ID so re-fetching the same entry
// does not create duplicates.
func generateID(feedID, key string) string {
	h := sha256.Sum256([]byte(feedID + "|" + key))
	return fmt.Sprintf("%x", h[:8])
}
