package nlp

import "strings"

// Tokens returns the unique tokens of an already normalized text.
func Tokens(normalized string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, t := range TokensList(normalized) {
		out[t] = struct{}{}
	}
	return out
}

// TokensList splits a normalized string into tokens, keeping order and repeats.
func TokensList(normalized string) []string {
	if normalized == "" {
		return []string{}
	}
	return strings.Fields(normalized)
}

// ContainsPhrase проверяет наличие фразы (уже нормализованной) как целых слов.
// Пример: "rest api" найдётся в " ... rest api ..." но не в " ... rest apis ..."
func ContainsPhrase(normalizedText, normalizedPhrase string) bool {
	if normalizedPhrase == "" {
		return false
	}
	hay := " " + normalizedText + " "
	needle := " " + normalizedPhrase + " "
	return strings.Contains(hay, needle)
}
