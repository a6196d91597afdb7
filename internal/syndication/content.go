package syndication

import "github.com/mmcdole/gofeed/atom"

// Content is the full body of an entry, inline (Value) or by reference (Src).
// RSS only has the content:encoded value.
type Content struct {
	Base        string `json:"base,omitempty"`
	Lang        string `json:"lang,omitempty"`
	Value       string `json:"value,omitempty"`
	Src         string `json:"src,omitempty"`
	ContentType string `json:"type,omitempty"`
}

func ContentFromString(s string) Content {
	return Content{Value: s}
}

// String returns the inline value, or "" for out-of-line content.
func (c Content) String() string { return c.Value }

func ContentFromAtom(c *atom.Content) Content {
	if c == nil {
		return Content{}
	}
	return Content{Value: c.Value, Src: c.Src, ContentType: c.Type}
}

// ToAtom drops Base and Lang, which gofeed does not model.
func (c Content) ToAtom() *atom.Content {
	return &atom.Content{Value: c.Value, Src: c.Src, Type: c.ContentType}
}

func optionalContent(s string) *Content {
	if s == "" {
		return nil
	}
	c := ContentFromString(s)
	return &c
}
