package syndication

import (
	"time"

	"github.com/mmcdole/gofeed/atom"
	"github.com/mmcdole/gofeed/rss"
)

// SourceEpoch is the placeholder Updated value of DefaultSource. It marks a
// source whose update time was never filled in and is not the same thing as
// a nil Updated.
var SourceEpoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// Source describes the feed an entry was copied from. RSS only knows its URL
// and title; everything else comes from Atom.
type Source struct {
	Title        *Text        `json:"title,omitempty"`
	ID           string       `json:"id,omitempty"`
	Updated      *time.Time   `json:"updated,omitempty"`
	Authors      []Person     `json:"authors,omitempty"`
	Categories   []Category   `json:"categories,omitempty"`
	Contributors []Person     `json:"contributors,omitempty"`
	Generator    *Generator   `json:"generator,omitempty"`
	Icon         string       `json:"icon,omitempty"`
	Links        []Link       `json:"links,omitempty"`
	Rights       *Text        `json:"rights,omitempty"`
	Subtitle     *Text        `json:"subtitle,omitempty"`
	Logo         string       `json:"logo,omitempty"`
	Extensions   ExtensionMap `json:"extensions,omitempty"`
}

// DefaultSource returns an empty source stamped with SourceEpoch.
func DefaultSource() Source {
	updated := SourceEpoch
	return Source{Updated: &updated}
}

// SourceFromRSS wraps the RSS source URL as the only link. An empty URL gives
// no links at all.
func SourceFromRSS(s *rss.Source) Source {
	if s == nil {
		return Source{}
	}
	var links []Link
	if s.URL != "" {
		links = []Link{LinkFromString(s.URL)}
	}
	return Source{
		Title: optionalText(s.Title),
		Links: links,
	}
}

// ToRSS keeps the first link and the title. Every other field has no RSS
// counterpart and is dropped.
func (s Source) ToRSS() *rss.Source {
	return &rss.Source{
		Title: textValue(s.Title),
		URL:   firstHref(s.Links),
	}
}

func SourceFromAtom(s *atom.Source) Source {
	if s == nil {
		return Source{}
	}
	out := Source{
		Title:        optionalText(s.Title),
		ID:           s.ID,
		Updated:      optionalTime(s.UpdatedParsed),
		Authors:      peopleFromAtom(s.Authors),
		Categories:   categoriesFromAtom(s.Categories),
		Contributors: peopleFromAtom(s.Contributors),
		Icon:         s.Icon,
		Links:        linksFromAtom(s.Links),
		Rights:       optionalText(s.Rights),
		Subtitle:     optionalText(s.Subtitle),
		Logo:         s.Logo,
		Extensions:   ExtensionMapFromNative(s.Extensions),
	}
	if s.Generator != nil {
		g := GeneratorFromAtom(s.Generator)
		out.Generator = &g
	}
	return out
}

func (s Source) ToAtom() *atom.Source {
	out := &atom.Source{
		Title:        textValue(s.Title),
		ID:           s.ID,
		Subtitle:     textValue(s.Subtitle),
		Links:        linksToAtom(s.Links),
		Icon:         s.Icon,
		Logo:         s.Logo,
		Rights:       textValue(s.Rights),
		Contributors: peopleToAtom(s.Contributors),
		Authors:      peopleToAtom(s.Authors),
		Categories:   categoriesToAtom(s.Categories),
		Extensions:   s.Extensions.ToNative(),
	}
	if s.Updated != nil {
		out.Updated, out.UpdatedParsed = atomTime(*s.Updated)
	}
	if s.Generator != nil {
		out.Generator = s.Generator.ToAtom()
	}
	return out
}

// optionalTime copies a parsed native timestamp. The zero time is what a
// missing Atom date is filled with on the way out, so it reads as absent.
func optionalTime(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	c := *t
	return &c
}

func atomTime(t time.Time) (string, *time.Time) {
	return t.Format(time.RFC3339), &t
}
