package syndication

import (
	"net/mail"
	"strings"
	"time"
)

// obsoleteZones are the zone names RFC 2822 section 4.3 gives fixed offsets.
var obsoleteZones = map[string]string{
	"UT":  "+0000",
	"GMT": "+0000",
	"EST": "-0500",
	"EDT": "-0400",
	"CST": "-0600",
	"CDT": "-0500",
	"MST": "-0700",
	"MDT": "-0600",
	"PST": "-0800",
	"PDT": "-0700",
}

// parseRFC2822 parses an RSS date. A trailing alphabetic zone is rewritten to
// its numeric offset before parsing; names outside RFC 2822 section 4.3
// (military letters, local abbreviations) become "-0000", an unknown offset.
func parseRFC2822(s string) (time.Time, error) {
	return mail.ParseDate(numericZone(strings.TrimSpace(s)))
}

func numericZone(s string) string {
	i := strings.LastIndexByte(s, ' ')
	if i < 0 {
		return s
	}
	zone := s[i+1:]
	if !isAlpha(zone) {
		return s
	}
	offset, ok := obsoleteZones[strings.ToUpper(zone)]
	if !ok {
		offset = "-0000"
	}
	return s[:i+1] + offset
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
