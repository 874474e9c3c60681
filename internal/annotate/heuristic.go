package annotate

import (
	"regexp"
	"strings"
	"unicode"
)

// Heuristic is a dependency-free Annotator. It tags capitalized tokens as
// proper nouns, recognizes runs of proper nouns as entities, and labels a run
// as an organization when it contains an organization keyword. It is not a
// linguistic model; resumes lead with names and name institutions explicitly,
// which is all the extraction pipeline relies on.
type Heuristic struct{}

// NewHeuristic creates a heuristic annotator.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

var tokenPattern = regexp.MustCompile(`[A-Za-z0-9][A-Za-z0-9'.&+#/-]*`)

var sentenceBoundary = regexp.MustCompile(`[.!?]\s+|\n+`)

// Words that mark a proper-noun run as an organization rather than a person.
var organizationKeywords = map[string]bool{
	"university": true, "college": true, "institute": true, "school": true,
	"academy": true, "polytechnic": true, "inc": true, "llc": true, "ltd": true,
	"corp": true, "corporation": true, "company": true, "technologies": true,
	"solutions": true, "systems": true, "labs": true, "group": true,
}

// Tokens splits text into word tokens with part-of-speech tags. A token whose
// first rune is an uppercase letter is tagged PROPN, a digit-led token NUM,
// anything else X.
func (h *Heuristic) Tokens(text string) []Token {
	words := tokenPattern.FindAllString(text, -1)
	tokens := make([]Token, 0, len(words))
	for _, word := range words {
		tokens = append(tokens, Token{Text: word, POS: classify(word)})
	}
	return tokens
}

// Entities finds runs of two or more consecutive proper-noun tokens and
// labels each run PERSON or ORG.
func (h *Heuristic) Entities(text string) []Entity {
	tokens := h.Tokens(text)
	entities := []Entity{}

	for i := 0; i < len(tokens); {
		if tokens[i].POS != POSProperNoun {
			i++
			continue
		}

		start := i
		for i < len(tokens) && tokens[i].POS == POSProperNoun {
			i++
		}
		if i-start < 2 {
			continue
		}

		words := make([]string, 0, i-start)
		for _, tok := range tokens[start:i] {
			words = append(words, tok.Text)
		}
		entities = append(entities, Entity{
			Label: classifyRun(words),
			Text:  strings.Join(words, " "),
			Start: start,
		})
	}

	return entities
}

// Sentences splits text on sentence-final punctuation and line breaks.
func (h *Heuristic) Sentences(text string) []string {
	parts := sentenceBoundary.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

func classify(word string) string {
	first := []rune(word)[0]
	switch {
	case unicode.IsUpper(first):
		return POSProperNoun
	case unicode.IsDigit(first):
		return POSNumber
	default:
		return POSOther
	}
}

func classifyRun(words []string) string {
	for _, word := range words {
		normalized := strings.ToLower(strings.Trim(word, "."))
		if organizationKeywords[normalized] {
			return LabelOrganization
		}
	}
	return LabelPerson
}
