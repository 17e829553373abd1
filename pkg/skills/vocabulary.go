package skills

// Vocabulary is a named, normalized and sorted list of skill terms.
// A zero Vocabulary is empty and valid.
type Vocabulary struct {
	name  string
	terms []string
}

func NewVocabulary(name string, terms ...string) Vocabulary {
	return Vocabulary{name: name, terms: NewSet(terms...).Sorted()}
}

func (v Vocabulary) Name() string { return v.name }

// Terms returns a copy of the vocabulary terms.
func (v Vocabulary) Terms() []string {
	return append([]string(nil), v.terms...)
}

func (v Vocabulary) Len() int { return len(v.terms) }
