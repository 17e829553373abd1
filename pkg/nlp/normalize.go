package nlp

import (
	"regexp"
	"strings"
)

var (
	reNonWord = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	reSpaces  = regexp.MustCompile(`\s+`)
)

// NormalizeText приводит текст к упрощённому виду для сравнения:
// нижний регистр, все не-буквенно-цифровые символы заменяются пробелами,
// пробелы схлопываются.
func NormalizeText(s string) string {
	s = strings.ToLower(s)
	s = reNonWord.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeSkill trims, lower-cases and collapses inner whitespace of a skill
// term. Punctuation is kept so that "c++" and "node.js" survive.
func NormalizeSkill(skill string) string {
	skill = strings.ToLower(strings.TrimSpace(skill))
	return reSpaces.ReplaceAllString(skill, " ")
}
