package syndication

import (
	"fmt"

	"github.com/mmcdole/gofeed/atom"
)

// Person is an author or contributor. RSS only knows a free-text author
// string, Atom has structured people.
type Person struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	URI   string `json:"uri,omitempty"`
}

// PersonFromString returns a Person named s. The "email (name)" shape produced
// by String is not parsed back: the collapse is one-way.
func PersonFromString(s string) Person {
	return Person{Name: s}
}

// String collapses the person into the RSS author form "email (name)", or the
// bare name when no email is known.
func (p Person) String() string {
	if p.Email != "" {
		return fmt.Sprintf("%s (%s)", p.Email, p.Name)
	}
	return p.Name
}

func PersonFromAtom(p *atom.Person) Person {
	if p == nil {
		return Person{}
	}
	return Person{Name: p.Name, Email: p.Email, URI: p.URI}
}

func (p Person) ToAtom() *atom.Person {
	return &atom.Person{Name: p.Name, Email: p.Email, URI: p.URI}
}

func peopleFromAtom(in []*atom.Person) []Person {
	if len(in) == 0 {
		return nil
	}
	out := make([]Person, 0, len(in))
	for _, p := range in {
		if p == nil {
			continue
		}
		out = append(out, PersonFromAtom(p))
	}
	return out
}

func peopleToAtom(in []Person) []*atom.Person {
	if len(in) == 0 {
		return nil
	}
	out := make([]*atom.Person, 0, len(in))
	for _, p := range in {
		out = append(out, p.ToAtom())
	}
	return out
}
