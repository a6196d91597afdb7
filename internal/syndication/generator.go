package syndication

import "github.com/mmcdole/gofeed/atom"

// Generator identifies the software that produced a feed. Atom only.
type Generator struct {
	Value   string `json:"value"`
	URI     string `json:"uri,omitempty"`
	Version string `json:"version,omitempty"`
}

func GeneratorFromAtom(g *atom.Generator) Generator {
	if g == nil {
		return Generator{}
	}
	return Generator{Value: g.Value, URI: g.URI, Version: g.Version}
}

func (g Generator) ToAtom() *atom.Generator {
	return &atom.Generator{Value: g.Value, URI: g.URI, Version: g.Version}
}
