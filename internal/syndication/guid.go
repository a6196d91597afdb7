package syndication

import (
	"strings"

	"github.com/mmcdole/gofeed/rss"
)

// Guid identifies an entry. Permalink reports whether the value is also a
// dereferenceable URL, which RSS assumes unless told otherwise.
type Guid struct {
	Value     string `json:"value"`
	Permalink bool   `json:"permalink"`
}

func DefaultGuid() Guid {
	return Guid{Permalink: true}
}

func GuidFromString(s string) Guid {
	return Guid{Value: s, Permalink: true}
}

func (g Guid) String() string { return g.Value }

// GuidFromRSS converts an RSS guid. Only an explicit isPermaLink="false"
// clears the permalink flag.
func GuidFromRSS(g *rss.GUID) Guid {
	if g == nil {
		return DefaultGuid()
	}
	return Guid{
		Value:     g.Value,
		Permalink: !strings.EqualFold(strings.TrimSpace(g.IsPermalink), "false"),
	}
}

// ToRSS converts the guid back to RSS. A permalink guid omits the attribute,
// since true is the RSS default.
func (g Guid) ToRSS() *rss.GUID {
	out := &rss.GUID{Value: g.Value}
	if !g.Permalink {
		out.IsPermalink = "false"
	}
	return out
}
