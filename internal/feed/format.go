package feed

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned when a format name or document is neither RSS
// nor Atom.
var ErrUnknownFormat = errors.New("unknown feed format")

// Format tags which native structure a feed is read into.
type Format int

const (
	RSS Format = iota + 1
	Atom
)

func (f Format) String() string {
	switch f {
	case RSS:
		return "rss"
	case Atom:
		return "atom"
	default:
		return "unknown"
	}
}

// ParseFormat accepts "rss" or "atom" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rss":
		return RSS, nil
	case "atom":
		return Atom, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

func (f Format) MarshalText() ([]byte, error) {
	if f != RSS && f != Atom {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
	return []byte(f.String()), nil
}

func (f *Format) UnmarshalText(b []byte) error {
	parsed, err := ParseFormat(string(b))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
