package nlp

// Tokenizer splits free text into case-folded word tokens.
// Implementations must be deterministic and safe for concurrent use.
type Tokenizer interface {
	Tokenize(text string) []string
}

// WordTokenizer splits on every non letter/digit rune after lower-casing.
// Tokens shorter than MinLength runes are dropped.
type WordTokenizer struct {
	MinLength int
}

// NewWordTokenizer returns a tokenizer that keeps every token.
func NewWordTokenizer() *WordTokenizer {
	return &WordTokenizer{MinLength: 1}
}

func (t *WordTokenizer) Tokenize(text string) []string {
	tokens := TokensList(NormalizeText(text))
	if t.MinLength <= 1 {
		return tokens
	}
	out := tokens[:0]
	for _, tok := range tokens {
		if len([]rune(tok)) >= t.MinLength {
			out = append(out, tok)
		}
	}
	return out
}
