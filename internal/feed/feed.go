// Package feed selects the gofeed parser for a format, hands back the native
// structure, and moves whole feeds in and out of the unified entry model.
package feed

import (
	"bytes"
	"fmt"
	"io"
	"regexp"

	"github.com/mmcdole/gofeed"
	"github.com/mmcdole/gofeed/atom"
	"github.com/mmcdole/gofeed/rss"

	"github.com/raffaelramalhorosa/feedbridge/internal/syndication"
)

// Native holds a parsed feed in exactly one of its native shapes.
type Native struct {
	Format Format
	RSS    *rss.Feed
	Atom   *atom.Feed
}

// guidPermalink matches the permalink attribute of a guid in any letter case.
var guidPermalink = regexp.MustCompile(`(<guid\b[^>]*?\s)(?i:ispermalink)\s*=`)

// normalizeGuidAttr rewrites the RSS 2.0 spelling isPermaLink (and any other
// casing) to the isPermalink spelling the gofeed RSS parser looks up.
func normalizeGuidAttr(doc []byte) []byte {
	return guidPermalink.ReplaceAll(doc, []byte("${1}isPermalink="))
}

// Read parses data as the given format.
func Read(data io.Reader, format Format) (*Native, error) {
	switch format {
	case RSS:
		doc, err := io.ReadAll(data)
		if err != nil {
			return nil, fmt.Errorf("read rss feed: %w", err)
		}
		parser := &rss.Parser{}
		parsed, err := parser.Parse(bytes.NewReader(normalizeGuidAttr(doc)))
		if err != nil {
			return nil, fmt.Errorf("read rss feed: %w", err)
		}
		return &Native{Format: RSS, RSS: parsed}, nil
	case Atom:
		parser := &atom.Parser{}
		parsed, err := parser.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("read atom feed: %w", err)
		}
		return &Native{Format: Atom, Atom: parsed}, nil
	default:
		return nil, fmt.Errorf("read feed: %w: %d", ErrUnknownFormat, int(format))
	}
}

// Detect sniffs the root element of data.
func Detect(data []byte) (Format, error) {
	switch gofeed.DetectFeedType(bytes.NewReader(data)) {
	case gofeed.FeedTypeRSS:
		return RSS, nil
	case gofeed.FeedTypeAtom:
		return Atom, nil
	default:
		return 0, ErrUnknownFormat
	}
}

// ReadAuto detects the format of data and reads it.
func ReadAuto(data []byte) (*Native, error) {
	format, err := Detect(data)
	if err != nil {
		return nil, fmt.Errorf("read feed: %w", err)
	}
	return Read(bytes.NewReader(data), format)
}

// Title returns the feed-level title.
func (n *Native) Title() string {
	switch n.Format {
	case RSS:
		return n.RSS.Title
	case Atom:
		return n.Atom.Title
	}
	return ""
}

// Entries converts every item or entry of the feed.
func (n *Native) Entries() []syndication.Entry {
	entries, _ := n.EntriesWithReport()
	return entries
}

// EntriesWithReport converts every item or entry and returns one report per
// entry, index-aligned with the entries.
func (n *Native) EntriesWithReport() ([]syndication.Entry, []syndication.Report) {
	var (
		entries []syndication.Entry
		reports []syndication.Report
	)
	switch n.Format {
	case RSS:
		entries = make([]syndication.Entry, 0, len(n.RSS.Items))
		reports = make([]syndication.Report, 0, len(n.RSS.Items))
		for _, item := range n.RSS.Items {
			e, r := syndication.EntryFromRSSWithReport(item)
			entries = append(entries, e)
			reports = append(reports, r)
		}
	case Atom:
		entries = make([]syndication.Entry, 0, len(n.Atom.Entries))
		reports = make([]syndication.Report, 0, len(n.Atom.Entries))
		for _, entry := range n.Atom.Entries {
			e, r := syndication.EntryFromAtomWithReport(entry)
			entries = append(entries, e)
			reports = append(reports, r)
		}
	}
	return entries, reports
}

// Emit projects entries onto the native shape of format: []*rss.Item for RSS
// and []*atom.Entry for Atom.
func Emit(entries []syndication.Entry, format Format) (any, error) {
	switch format {
	case RSS:
		items := make([]*rss.Item, 0, len(entries))
		for _, e := range entries {
			items = append(items, e.ToRSS())
		}
		return items, nil
	case Atom:
		out := make([]*atom.Entry, 0, len(entries))
		for _, e := range entries {
			out = append(out, e.ToAtom())
		}
		return out, nil
	default:
		return nil, fmt.Errorf("emit: %w: %d", ErrUnknownFormat, int(format))
	}
}
