package syndication

import "github.com/mmcdole/gofeed/rss"

// Enclosure is a media object attached to an RSS item.
type Enclosure struct {
	URL      string `json:"url"`
	Length   string `json:"length"`
	MimeType string `json:"type"`
}

func EnclosureFromRSS(e *rss.Enclosure) Enclosure {
	if e == nil {
		return Enclosure{}
	}
	return Enclosure{URL: e.URL, Length: e.Length, MimeType: e.Type}
}

func (e Enclosure) ToRSS() *rss.Enclosure {
	return &rss.Enclosure{URL: e.URL, Length: e.Length, Type: e.MimeType}
}
