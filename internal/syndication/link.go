package syndication

import "github.com/mmcdole/gofeed/atom"

// RelAlternate is the link relation assumed when none is given
// (RFC 4287, section 4.2.7.2).
const RelAlternate = "alternate"

// Link is a reference from an entry to a web resource. RSS carries a single
// href per item, Atom an ordered list of fully described links.
type Link struct {
	Href     string `json:"href"`
	Rel      string `json:"rel"`
	HrefLang string `json:"hreflang,omitempty"`
	MimeType string `json:"type,omitempty"`
	Title    string `json:"title,omitempty"`
	Length   string `json:"length,omitempty"`
}

// DefaultLink returns an empty alternate link.
func DefaultLink() Link {
	return Link{Rel: RelAlternate}
}

// LinkFromString returns an alternate link to href.
func LinkFromString(href string) Link {
	l := DefaultLink()
	l.Href = href
	return l
}

func (l Link) String() string { return l.Href }

// LinkFromAtom converts an Atom link; an absent rel reads as "alternate".
func LinkFromAtom(l *atom.Link) Link {
	if l == nil {
		return DefaultLink()
	}
	rel := l.Rel
	if rel == "" {
		rel = RelAlternate
	}
	return Link{
		Href:     l.Href,
		Rel:      rel,
		HrefLang: l.Hreflang,
		MimeType: l.Type,
		Title:    l.Title,
		Length:   l.Length,
	}
}

// ToAtom converts the link back to Atom. The default relation is written as
// an absent attribute.
func (l Link) ToAtom() *atom.Link {
	rel := l.Rel
	if rel == RelAlternate {
		rel = ""
	}
	return &atom.Link{
		Href:     l.Href,
		Rel:      rel,
		Hreflang: l.HrefLang,
		Type:     l.MimeType,
		Title:    l.Title,
		Length:   l.Length,
	}
}

func linksFromAtom(in []*atom.Link) []Link {
	if len(in) == 0 {
		return nil
	}
	out := make([]Link, 0, len(in))
	for _, l := range in {
		if l == nil {
			continue
		}
		out = append(out, LinkFromAtom(l))
	}
	return out
}

func linksToAtom(in []Link) []*atom.Link {
	if len(in) == 0 {
		return nil
	}
	out := make([]*atom.Link, 0, len(in))
	for _, l := range in {
		out = append(out, l.ToAtom())
	}
	return out
}

// firstHref is the link narrowing policy used for RSS: only the first link
// survives.
func firstHref(links []Link) string {
	if len(links) == 0 {
		return ""
	}
	return links[0].Href
}
