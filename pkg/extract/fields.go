// Package extract pulls contact fields out of raw resume text with pattern rules.
package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// nameScanLines is how many leading lines are inspected for a name.
const nameScanLines = 5

var (
	reEmail = regexp.MustCompile(`[A-Za-z0-9._+\-]+@[A-Za-z0-9\-]+(?:\.[A-Za-z0-9\-]+)*\.[A-Za-z]{2,}`)
	// Candidate phone runs; the digit count is checked separately.
	rePhone     = regexp.MustCompile(`(?:\+[ ]?)?(?:\(\d{1,4}\)|\d)[\d \t().\-]{4,}\d`)
	reYearRange = regexp.MustCompile(`^(?:19|20)\d{2}\s*[-.]\s*(?:19|20)\d{2}$`)
	reName      = regexp.MustCompile(`^\p{Lu}\p{Ll}+ \p{Lu}\p{Ll}+$`)
)

const (
	minPhoneDigits  = 7
	fullPhoneDigits = 10
	maxPhoneDigits  = 15
)

// Fields are the best-effort contact fields of one document.
// Empty strings mean "not found".
type Fields struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// ExtractFields extracts name, email and phone from text. It never fails.
func ExtractFields(text string) Fields {
	return Fields{
		Name:  Name(text),
		Email: Email(text),
		Phone: Phone(text),
	}
}

// Email returns the first email-like substring of text.
func Email(text string) string {
	return reEmail.FindString(text)
}

// Phone returns the first run of digits and separators that carries
// between 7 and 15 digits and does not look like a year range.
// A trailing number that opens the next phrase ("10 years", "2020 Moscow")
// is cut off when the rest is already a full-length number.
func Phone(text string) string {
	for _, loc := range rePhone.FindAllStringIndex(text, -1) {
		m := trimTrailingClause(text[loc[0]:loc[1]], text[loc[1]:])
		m = strings.TrimSpace(m)
		if reYearRange.MatchString(m) {
			continue
		}
		n := countDigits(m)
		if n >= minPhoneDigits && n <= maxPhoneDigits {
			return m
		}
	}
	return ""
}

// trimTrailingClause drops the last space-separated group of run when the
// text after run continues with a word on the same line.
func trimTrailingClause(run, rest string) string {
	cut := strings.LastIndexAny(run, " \t")
	if cut < 0 {
		return run
	}
	after := strings.TrimLeft(rest, " \t")
	if len(after) == len(rest) || !startsWithLetter(after) {
		return run
	}
	head := strings.TrimRight(run[:cut], " \t")
	if countDigits(head) < fullPhoneDigits {
		return run
	}
	return head
}

func startsWithLetter(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLetter(r)
}

// Name returns the first of the leading lines made of exactly two
// capitalized words. Middle names and suffixes are not recognised.
func Name(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > nameScanLines {
		lines = lines[:nameScanLines]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if reName.MatchString(line) {
			return line
		}
	}
	return ""
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
