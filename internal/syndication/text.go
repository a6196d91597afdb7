package syndication

import (
	"encoding/json"
	"fmt"
)

// TextType is the content type of an Atom text construct.
type TextType int

const (
	TextPlain TextType = iota
	TextHTML
	TextXHTML
)

func (t TextType) String() string {
	switch t {
	case TextHTML:
		return "html"
	case TextXHTML:
		return "xhtml"
	default:
		return "text"
	}
}

// ParseTextType maps an Atom type attribute to a TextType. Unknown or empty
// values fall back to TextPlain, which is the Atom default.
func ParseTextType(s string) TextType {
	switch s {
	case "html":
		return TextHTML
	case "xhtml":
		return TextXHTML
	default:
		return TextPlain
	}
}

func (t TextType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TextType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("text type: %w", err)
	}
	*t = ParseTextType(s)
	return nil
}

// Text is a human-readable string with optional Atom xml:base, xml:lang and
// type information. RSS text never carries anything but the value.
type Text struct {
	Value string   `json:"value"`
	Base  string   `json:"base,omitempty"`
	Lang  string   `json:"lang,omitempty"`
	Type  TextType `json:"type"`
}

// TextFromString wraps a bare string as plain text.
func TextFromString(s string) Text {
	return Text{Value: s, Type: TextPlain}
}

// TextFromAtom builds a Text from a gofeed Atom text construct, which is
// already flattened to its character data.
func TextFromAtom(s string) Text {
	return TextFromString(s)
}

func (t Text) String() string { return t.Value }

// ToRSS returns the RSS rendition, which is the value alone.
func (t Text) ToRSS() string { return t.Value }

// ToAtom returns the Atom rendition. gofeed keeps only the character data of
// Atom text constructs.
func (t Text) ToAtom() string { return t.Value }

// optionalText turns an empty native string into nil.
func optionalText(s string) *Text {
	if s == "" {
		return nil
	}
	t := TextFromString(s)
	return &t
}

func textValue(t *Text) string {
	if t == nil {
		return ""
	}
	return t.Value
}
