// Package skills finds occurrences of vocabulary skill terms in free text.
//
// Two strategies are available. KeywordExtractor does a case-insensitive
// substring search of every term, so multi-word terms such as
// "machine learning" and terms with punctuation such as "c++" work as written.
// TokenExtractor matches whole tokens produced by an nlp.Tokenizer and is the
// stricter choice for single-word vocabularies.
package skills

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/artem13815/hr/screening/pkg/nlp"
)

// Extractor returns the subset of vocab found in text.
// Empty text or an empty vocabulary yields an empty set.
type Extractor interface {
	Extract(text string, vocab Vocabulary) Set
}

const (
	StrategyKeyword = "keyword"
	StrategyToken   = "token"
)

// NewExtractor builds the extractor for a configured strategy name.
func NewExtractor(strategy string, tokenizer nlp.Tokenizer) (Extractor, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case "", StrategyKeyword:
		return KeywordExtractor{}, nil
	case StrategyToken:
		if tokenizer == nil {
			return nil, fmt.Errorf("skill strategy %q requires a tokenizer", StrategyToken)
		}
		return NewTokenExtractor(tokenizer), nil
	default:
		return nil, fmt.Errorf("unknown skill strategy %q", strategy)
	}
}

// KeywordExtractor tests each term for containment in the lower-cased text.
// Whitespace runs in the text are collapsed so terms match across line breaks.
type KeywordExtractor struct{}

func (KeywordExtractor) Extract(text string, vocab Vocabulary) Set {
	found := Set{}
	if vocab.Len() == 0 {
		return found
	}
	hay := nlp.NormalizeSkill(text)
	if hay == "" {
		return found
	}
	for _, term := range vocab.terms {
		if strings.Contains(hay, term) {
			found[term] = struct{}{}
		}
	}
	return found
}

// TokenExtractor matches terms against the token stream of the text.
// Single-token terms are looked up in the token set, multi-token terms must
// appear as a contiguous token phrase. Terms with punctuation ("c++",
// "node.js") lose it in tokenization and are matched as whole words instead.
type TokenExtractor struct {
	tokenizer nlp.Tokenizer
}

func NewTokenExtractor(tokenizer nlp.Tokenizer) *TokenExtractor {
	return &TokenExtractor{tokenizer: tokenizer}
}

func (e *TokenExtractor) Extract(text string, vocab Vocabulary) Set {
	found := Set{}
	if vocab.Len() == 0 {
		return found
	}
	tokens := e.tokenizer.Tokenize(text)
	if len(tokens) == 0 {
		return found
	}
	joined := strings.Join(tokens, " ")
	index := nlp.Tokens(joined)
	var hay string
	for _, term := range vocab.terms {
		parts := e.tokenizer.Tokenize(term)
		if len(parts) > 0 && strings.Join(parts, " ") != term {
			// "c++" и "c#" оба дают токен "c": ищем термин целиком.
			if hay == "" {
				hay = nlp.NormalizeSkill(text)
			}
			if containsWord(hay, term) {
				found[term] = struct{}{}
			}
			continue
		}
		switch len(parts) {
		case 0:
			continue
		case 1:
			if _, ok := index[parts[0]]; ok {
				found[term] = struct{}{}
			}
		default:
			if nlp.ContainsPhrase(joined, strings.Join(parts, " ")) {
				found[term] = struct{}{}
			}
		}
	}
	return found
}

// containsWord reports whether term occurs in hay not glued to a letter or
// digit on either side.
func containsWord(hay, term string) bool {
	for from := 0; from <= len(hay)-len(term); {
		i := strings.Index(hay[from:], term)
		if i < 0 {
			return false
		}
		start, end := from+i, from+i+len(term)
		before, _ := utf8.DecodeLastRuneInString(hay[:start])
		after, _ := utf8.DecodeRuneInString(hay[end:])
		if !isWordRune(before) && !isWordRune(after) {
			return true
		}
		from = start + 1
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
