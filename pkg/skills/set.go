package skills

import (
	"sort"

	"github.com/artem13815/hr/screening/pkg/nlp"
)

// Set is a set of normalized skill terms.
type Set map[string]struct{}

// NewSet normalizes terms and collapses duplicates. Blank terms are dropped.
func NewSet(terms ...string) Set {
	s := make(Set, len(terms))
	for _, t := range terms {
		s.Add(t)
	}
	return s
}

// Add inserts the normalized form of term.
func (s Set) Add(term string) {
	if t := nlp.NormalizeSkill(term); t != "" {
		s[t] = struct{}{}
	}
}

func (s Set) Has(term string) bool {
	_, ok := s[nlp.NormalizeSkill(term)]
	return ok
}

// ContainsAll reports whether every element of other is in s.
func (s Set) ContainsAll(other Set) bool {
	for t := range other {
		if _, ok := s[t]; !ok {
			return false
		}
	}
	return true
}

// Sorted returns the terms in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
