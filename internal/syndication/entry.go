package syndication

import (
	"strings"
	"time"

	"github.com/mmcdole/gofeed/atom"
	ext "github.com/mmcdole/gofeed/extensions"
	"github.com/mmcdole/gofeed/rss"
)

// AuthorSeparator joins several people into the single RSS author field.
const AuthorSeparator = "; "

// Entry is one item of a feed, independent of the format it was read from.
type Entry struct {
	Title     Text       `json:"title"`
	Published *time.Time `json:"published,omitempty"`
	Updated   *time.Time `json:"updated,omitempty"`
	Guid      Guid       `json:"guid"`
	Links     []Link     `json:"links"`
	Summary   *Text      `json:"summary,omitempty"`
	Authors   []Person   `json:"authors,omitempty"`
	// FeedAuthors has no RSS counterpart and is nil for entries read from RSS.
	FeedAuthors []Person     `json:"feed_authors,omitempty"`
	Categories  []Category   `json:"categories,omitempty"`
	Comments    string       `json:"comments,omitempty"`
	Enclosure   *Enclosure   `json:"enclosure,omitempty"`
	Source      *Source      `json:"source,omitempty"`
	Content     *Content     `json:"content,omitempty"`
	Rights      *Text        `json:"rights,omitempty"`
	Extensions  ExtensionMap `json:"extensions,omitempty"`

	// RSS-only extension blocks, copied through unchanged.
	ITunes     *ext.ITunesItemExtension `json:"itunes,omitempty"`
	DublinCore *ext.DublinCoreExtension `json:"dublin_core,omitempty"`
}

// DefaultEntry returns an empty entry carrying the default guid and a single
// default link.
func DefaultEntry() Entry {
	return Entry{Guid: DefaultGuid(), Links: []Link{DefaultLink()}}
}

// ---------- RSS ----------

// EntryFromRSS converts an RSS item. A pubDate that is not valid RFC 2822 is
// dropped without notice; use EntryFromRSSWithReport to observe it. The
// obsolete zone names of RFC 2822 (EST, PDT, ...) are honoured.
func EntryFromRSS(item *rss.Item) Entry {
	e, _ := EntryFromRSSWithReport(item)
	return e
}

// EntryFromRSSWithReport converts an RSS item and reports discarded values.
func EntryFromRSSWithReport(item *rss.Item) (Entry, Report) {
	var report Report
	if item == nil {
		return DefaultEntry(), report
	}

	e := Entry{
		Title:      TextFromString(item.Title),
		Guid:       GuidFromRSS(item.GUID),
		Links:      []Link{LinkFromString(item.Link)},
		Summary:    optionalText(item.Description),
		Authors:    splitAuthors(item.Author),
		Categories: categoriesFromRSS(item.Categories),
		Comments:   item.Comments,
		Content:    optionalContent(item.Content),
		Extensions: ExtensionMapFromNative(item.Extensions),
		ITunes:     cloneITunes(item.ITunesExt),
		DublinCore: cloneDublinCore(item.DublinCoreExt),
	}
	if item.Enclosure != nil {
		enc := EnclosureFromRSS(item.Enclosure)
		e.Enclosure = &enc
	}
	if item.Source != nil {
		src := SourceFromRSS(item.Source)
		e.Source = &src
	}
	if item.PubDate != "" {
		t, err := parseRFC2822(item.PubDate)
		if err != nil {
			report.drop("pubDate", item.PubDate, err.Error())
		} else {
			e.Published = &t
		}
	}
	return e, report
}

// ToRSS projects the entry onto an RSS item. Only the first link survives,
// people are flattened into one author string, and an empty guid is omitted.
func (e Entry) ToRSS() *rss.Item {
	item := &rss.Item{
		Title:         e.Title.ToRSS(),
		Link:          firstHref(e.Links),
		Description:   textValue(e.Summary),
		Author:        joinAuthors(e.Authors),
		Categories:    categoriesToRSS(e.Categories),
		Comments:      e.Comments,
		Extensions:    e.Extensions.ToNative(),
		ITunesExt:     cloneITunes(e.ITunes),
		DublinCoreExt: cloneDublinCore(e.DublinCore),
	}
	if e.Guid.Value != "" {
		item.GUID = e.Guid.ToRSS()
	}
	if e.Content != nil {
		item.Content = e.Content.String()
	}
	if e.Enclosure != nil {
		item.Enclosure = e.Enclosure.ToRSS()
		item.Enclosures = []*rss.Enclosure{item.Enclosure}
	}
	if e.Source != nil {
		item.Source = e.Source.ToRSS()
	}
	if e.Published != nil {
		t := *e.Published
		item.PubDate = t.Format(time.RFC1123Z)
		item.PubDateParsed = &t
	}
	return item
}

func splitAuthors(s string) []Person {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, AuthorSeparator)
	out := make([]Person, 0, len(parts))
	for _, p := range parts {
		out = append(out, PersonFromString(p))
	}
	return out
}

func joinAuthors(people []Person) string {
	if len(people) == 0 {
		return ""
	}
	parts := make([]string, len(people))
	for i, p := range people {
		parts[i] = p.String()
	}
	return strings.Join(parts, AuthorSeparator)
}

// ---------- Atom ----------

// EntryFromAtom converts an Atom entry. Contributors become Authors and the
// entry's own authors become FeedAuthors.
func EntryFromAtom(entry *atom.Entry) Entry {
	e, _ := EntryFromAtomWithReport(entry)
	return e
}

// EntryFromAtomWithReport converts an Atom entry and reports discarded
// values: unparseable dates that gofeed kept only as raw strings.
func EntryFromAtomWithReport(entry *atom.Entry) (Entry, Report) {
	var report Report
	if entry == nil {
		return Entry{Guid: DefaultGuid()}, report
	}

	e := Entry{
		Title:       TextFromAtom(entry.Title),
		Published:   optionalTime(entry.PublishedParsed),
		Updated:     optionalTime(entry.UpdatedParsed),
		Guid:        GuidFromString(entry.ID),
		Links:       linksFromAtom(entry.Links),
		Summary:     optionalText(entry.Summary),
		Authors:     peopleFromAtom(entry.Contributors),
		FeedAuthors: peopleFromAtom(entry.Authors),
		Categories:  categoriesFromAtom(entry.Categories),
		Rights:      optionalText(entry.Rights),
		Extensions:  ExtensionMapFromNative(entry.Extensions),
	}
	if entry.Content != nil {
		c := ContentFromAtom(entry.Content)
		e.Content = &c
	}
	if entry.Source != nil {
		src := SourceFromAtom(entry.Source)
		e.Source = &src
	}
	if entry.Published != "" && entry.PublishedParsed == nil {
		report.drop("published", entry.Published, "unrecognised date format")
	}
	if entry.Updated != "" && entry.UpdatedParsed == nil {
		report.drop("updated", entry.Updated, "unrecognised date format")
	}
	return e, report
}

// ToAtom projects the entry onto an Atom entry. Atom requires an update time,
// so a missing one is written as the zero timestamp. Comments, enclosure and
// the RSS extension blocks have no Atom slot.
func (e Entry) ToAtom() *atom.Entry {
	out := &atom.Entry{
		Title:        e.Title.ToAtom(),
		ID:           e.Guid.String(),
		Summary:      textValue(e.Summary),
		Authors:      peopleToAtom(e.FeedAuthors),
		Contributors: peopleToAtom(e.Authors),
		Categories:   categoriesToAtom(e.Categories),
		Links:        linksToAtom(e.Links),
		Rights:       textValue(e.Rights),
		Extensions:   e.Extensions.ToNative(),
	}

	var updated time.Time
	if e.Updated != nil {
		updated = *e.Updated
	}
	out.Updated, out.UpdatedParsed = atomTime(updated)

	if e.Published != nil {
		out.Published, out.PublishedParsed = atomTime(*e.Published)
	}
	if e.Content != nil {
		out.Content = e.Content.ToAtom()
	}
	if e.Source != nil {
		out.Source = e.Source.ToAtom()
	}
	return out
}
