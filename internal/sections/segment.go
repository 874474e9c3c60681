// Package sections splits resume text into named logical sections using
// heuristic header detection. Segmentation is a single forward pass over the
// lines; the scanner is either outside any section or inside exactly one.
package sections

import (
	"strings"
	"unicode"
)

// Kind identifies a logical resume section.
type Kind string

// Known section kinds.
const (
	KindSkills     Kind = "skills"
	KindEducation  Kind = "education"
	KindExperience Kind = "experience"
)

// headerLengthLimit is the maximum raw length of a line that can be treated
// as a section header. Longer lines are body text even when they contain a
// header alias.
const headerLengthLimit = 50

// aliases describes how header lines for one section kind are recognized:
// by exact (trimmed, lowercased) equality, by an alias followed by a colon,
// or by substring containment.
type aliases struct {
	exact      []string
	prefixes   []string
	substrings []string
}

// headerAliases is checked in order; the most specific kind wins when a line
// matches several.
var headerAliases = []struct {
	kind Kind
	aliases
}{
	{KindSkills, aliases{
		exact:      []string{"skills", "technical skills"},
		prefixes:   []string{"skills:", "technical skills:"},
		substrings: []string{"core skills"},
	}},
	{KindEducation, aliases{
		substrings: []string{"education", "qualification"},
	}},
	{KindExperience, aliases{
		substrings: []string{"experience", "work", "employment", "career"},
	}},
}

// terminators are the first words that end the current section when they lead
// a short, capitalized line. The word matching the current section's own kind
// is excluded so a section does not terminate itself.
var terminators = map[string]Kind{
	"experience":     KindExperience,
	"education":      KindEducation,
	"projects":       "",
	"certifications": "",
	"languages":      "",
	"skills":         KindSkills,
}

// Segment scans lines once and returns the concatenated body text of each
// recognized section. Header lines are consumed, terminating lines are not
// appended, and multiple disjoint runs of the same kind are concatenated. A
// section with no terminating header runs to the end of the document.
func Segment(lines []string) map[Kind]string {
	texts := make(map[Kind]string)

	var current Kind
	inSection := false

	for _, line := range lines {
		if kind, ok := headerKind(line); ok {
			current = kind
			inSection = true
			continue
		}

		if !inSection {
			continue
		}

		if terminatesSection(line, current) {
			inSection = false
			continue
		}

		if strings.TrimSpace(line) != "" {
			texts[current] += line + "\n"
		}
	}

	return texts
}

// headerKind reports whether line is a section header and for which kind.
func headerKind(line string) (Kind, bool) {
	if len(line) >= headerLengthLimit {
		return "", false
	}

	lower := strings.ToLower(strings.TrimSpace(line))
	for _, entry := range headerAliases {
		if matchesAliases(lower, entry.aliases) {
			return entry.kind, true
		}
	}
	return "", false
}

func matchesAliases(lower string, a aliases) bool {
	for _, e := range a.exact {
		if lower == e {
			return true
		}
	}
	for _, p := range a.prefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	for _, s := range a.substrings {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// terminatesSection reports whether line ends the current section: a
// non-empty short line starting with an uppercase letter whose first word is
// a known header word for a different section.
func terminatesSection(line string, current Kind) bool {
	if strings.TrimSpace(line) == "" || len(line) >= headerLengthLimit {
		return false
	}

	runes := []rune(line)
	if !unicode.IsUpper(runes[0]) {
		return false
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	kind, known := terminators[strings.ToLower(fields[0])]
	return known && kind != current
}
