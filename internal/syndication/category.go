package syndication

import (
	"github.com/mmcdole/gofeed/atom"
	"github.com/mmcdole/gofeed/rss"
)

// Category classifies an entry. Scheme is the RSS domain or the Atom scheme.
type Category struct {
	Name   string `json:"name"`
	Scheme string `json:"scheme,omitempty"`
	Label  string `json:"label,omitempty"`
}

// CategoryFromRSS converts an RSS category. RSS has no label, so a non-empty
// name doubles as the label.
func CategoryFromRSS(c *rss.Category) Category {
	if c == nil {
		return Category{}
	}
	return Category{Name: c.Value, Scheme: c.Domain, Label: c.Value}
}

func (c Category) ToRSS() *rss.Category {
	return &rss.Category{Value: c.Name, Domain: c.Scheme}
}

func CategoryFromAtom(c *atom.Category) Category {
	if c == nil {
		return Category{}
	}
	return Category{Name: c.Term, Scheme: c.Scheme, Label: c.Label}
}

func (c Category) ToAtom() *atom.Category {
	return &atom.Category{Term: c.Name, Scheme: c.Scheme, Label: c.Label}
}

func categoriesFromRSS(in []*rss.Category) []Category {
	if len(in) == 0 {
		return nil
	}
	out := make([]Category, 0, len(in))
	for _, c := range in {
		if c == nil {
			continue
		}
		out = append(out, CategoryFromRSS(c))
	}
	return out
}

func categoriesToRSS(in []Category) []*rss.Category {
	if len(in) == 0 {
		return nil
	}
	out := make([]*rss.Category, 0, len(in))
	for _, c := range in {
		out = append(out, c.ToRSS())
	}
	return out
}

func categoriesFromAtom(in []*atom.Category) []Category {
	if len(in) == 0 {
		return nil
	}
	out := make([]Category, 0, len(in))
	for _, c := range in {
		if c == nil {
			continue
		}
		out = append(out, CategoryFromAtom(c))
	}
	return out
}

func categoriesToAtom(in []Category) []*atom.Category {
	if len(in) == 0 {
		return nil
	}
	out := make([]*atom.Category, 0, len(in))
	for _, c := range in {
		out = append(out, c.ToAtom())
	}
	return out
}
