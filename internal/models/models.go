package models

import (
	"time"

	"github.com/raffaelramalhorosa/feedbridge/internal/feed"
	"github.com/raffaelramalhorosa/feedbridge/internal/syndication"
)

// Feed represents an RSS/Atom feed subscription to be polled.
// A zero Format means the format is detected on every fetch.
type Feed struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	URL         string      `json:"url"`
	Format      feed.Format `json:"format,omitempty"`
	LastFetched time.Time   `json:"last_fetched"`
}

// StoredEntry is a unified entry together with the subscription it came from.
type StoredEntry struct {
	ID       string            `json:"id"`
	FeedID   string            `json:"feed_id"`
	FeedName string            `json:"feed_name"`
	Entry    syndication.Entry `json:"entry"`
}

// PublishedAt orders entries: the publication date, then the update date,
// then the zero time.
func (e StoredEntry) PublishedAt() time.Time {
	switch {
	case e.Entry.Published != nil:
		return *e.Entry.Published
	case e.Entry.Updated != nil:
		return *e.Entry.Updated
	}
	return time.Time{}
}

// AddFeedRequest is the payload for registering a new feed.
type AddFeedRequest struct {
	Name   string `json:"name" validate:"required,max=200"`
	URL    string `json:"url" validate:"required,url"`
	Format string `json:"format" validate:"omitempty,oneof=rss atom"`
}

// ConvertRequest holds the query parameters of a conversion.
type ConvertRequest struct {
	From string `validate:"omitempty,oneof=rss atom auto"`
	To   string `validate:"omitempty,oneof=unified rss atom"`
}

// ConvertResponse is the result of converting a posted feed document.
type ConvertResponse struct {
	Source  feed.Format          `json:"source"`
	Target  string               `json:"target"`
	Title   string               `json:"title"`
	Entries any                  `json:"entries"`
	Reports []syndication.Report `json:"reports,omitempty"`
}

// FetchResult carries the outcome of a single feed fetch through a channel.
type FetchResult struct {
	FeedID  string
	Entries []StoredEntry
	Dropped int
	Err     error
}
