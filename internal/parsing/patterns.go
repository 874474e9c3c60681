// Package parsing extracts structured personal information from resume text:
// contact details via regular expressions and education/experience entries via
// line scanning over segmented sections. Every function is total; absent data
// yields sentinel strings or empty lists, never an error.
package parsing

import (
	"regexp"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`[\w.\-]+@[\w.\-]+\.\w+`)
	phonePattern = regexp.MustCompile(`(?:\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	yearPattern  = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

// ExtractEmail returns the first email address in text, or the sentinel when
// none is found.
func ExtractEmail(text string) string {
	if email := emailPattern.FindString(text); email != "" {
		return email
	}
	return types.EmailNotDetected
}

// ExtractPhone returns the first phone number in text (international prefix
// optional, 3-3-4 digit grouping with optional separators), or the sentinel
// when none is found.
func ExtractPhone(text string) string {
	if phone := phonePattern.FindString(text); phone != "" {
		return phone
	}
	return types.PhoneNotDetected
}

// ExtractYear returns the first 4-digit year token starting with 19 or 20 in
// sentence, or the empty string.
func ExtractYear(sentence string) string {
	return yearPattern.FindString(sentence)
}
