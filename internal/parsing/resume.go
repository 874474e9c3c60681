package parsing

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-analyzer/internal/annotate"
	"github.com/jonathan/resume-analyzer/internal/sections"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// nameTokenWindow is how far into the document a PERSON entity or leading
// proper nouns may appear and still be taken as the candidate's name.
const nameTokenWindow = 50

// educationKeywords mark sentences in the education section that likely carry
// a structured entry.
var educationKeywords = []string{
	"education", "university", "college", "degree", "bachelor", "master", "phd", "diploma",
}

// experienceFallbackKeywords mark work-related sentences used when no
// experience section could be segmented.
var experienceFallbackKeywords = []string{"work", "company", "position", "job", "role"}

var yearLeadPattern = regexp.MustCompile(`^\d{4}`)

// Extractor extracts structured resume information. It holds the annotator so
// education mining can look for organization entities within single sentences.
type Extractor struct {
	annotator annotate.Annotator
}

// NewExtractor creates an Extractor backed by the given annotator.
func NewExtractor(annotator annotate.Annotator) *Extractor {
	return &Extractor{annotator: annotator}
}

// ExtractInfo extracts the candidate's name, contact details, education and
// experience from an annotated resume.
func (e *Extractor) ExtractInfo(doc *annotate.Doc, text string) *types.ResumeInfo {
	sectionTexts := sections.Segment(strings.Split(text, "\n"))

	return &types.ResumeInfo{
		Name:       ExtractName(doc),
		Email:      ExtractEmail(text),
		Phone:      ExtractPhone(text),
		Education:  e.extractEducation(sectionTexts[sections.KindEducation]),
		Experience: e.extractExperience(sectionTexts[sections.KindExperience], text),
	}
}

// ExtractName returns the first PERSON entity near the start of the document.
// If none exists it falls back to the first two leading proper-noun tokens,
// and to the sentinel when the document does not open with a plausible name.
func ExtractName(doc *annotate.Doc) string {
	for _, ent := range doc.Entities {
		if ent.Label == annotate.LabelPerson && ent.Start < nameTokenWindow {
			return ent.Text
		}
	}

	var nameTokens []string
	limit := min(len(doc.Tokens), 10)
	for _, tok := range doc.Tokens[:limit] {
		if tok.POS == annotate.POSProperNoun {
			nameTokens = append(nameTokens, tok.Text)
			if len(nameTokens) >= 2 {
				return strings.Join(nameTokens, " ")
			}
		}
	}

	return types.NameNotDetected
}

// extractEducation mines structured entries from the education section text.
// Sentences containing an education keyword yield one entry each, with the
// first year token and the first organization entity found within the
// sentence. When no sentence qualifies, the whole section is returned as a
// single description entry.
func (e *Extractor) extractEducation(sectionText string) []types.EducationEntry {
	joined := strings.TrimSpace(strings.ReplaceAll(sectionText, "\n", " "))
	if joined == "" {
		return []types.EducationEntry{}
	}

	entries := []types.EducationEntry{}
	for _, sentence := range strings.Split(joined, ". ") {
		if !containsAny(strings.ToLower(sentence), educationKeywords) {
			continue
		}

		entry := strings.TrimSpace(sentence)
		if entry == "" {
			continue
		}

		institution := ""
		for _, ent := range e.annotator.Entities(sentence) {
			if ent.Label == annotate.LabelOrganization {
				institution = ent.Text
				break
			}
		}

		entries = append(entries, types.EducationEntry{
			Degree:      entry,
			Institution: institution,
			Year:        ExtractYear(sentence),
		})
	}

	if len(entries) == 0 {
		entries = append(entries, types.EducationEntry{Description: joined})
	}

	return entries
}

// extractExperience accumulates entries from the experience section lines. A
// short line starting with an uppercase letter or a year begins a new entry;
// other non-empty lines continue the current one. When the section produced
// nothing, work-related sentences from the whole document form one entry.
func (e *Extractor) extractExperience(sectionText, fullText string) []types.ExperienceEntry {
	entries := []types.ExperienceEntry{}
	current := ""

	flush := func() {
		if trimmed := strings.TrimSpace(current); trimmed != "" {
			entries = append(entries, types.ExperienceEntry{Description: trimmed})
		}
		current = ""
	}

	for _, line := range strings.Split(sectionText, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if startsEntry(line) {
			flush()
			current = line + " "
		} else {
			current += line + " "
		}
	}
	flush()

	if len(entries) > 0 {
		return entries
	}

	var workSentences []string
	for _, sentence := range e.annotator.Sentences(fullText) {
		if containsAny(strings.ToLower(sentence), experienceFallbackKeywords) {
			workSentences = append(workSentences, strings.TrimSpace(sentence))
		}
	}
	if len(workSentences) > 0 {
		entries = append(entries, types.ExperienceEntry{Description: strings.Join(workSentences, " ")})
	}

	return entries
}

func startsEntry(line string) bool {
	runes := []rune(line)
	return unicode.IsUpper(runes[0]) || yearLeadPattern.MatchString(line)
}

func containsAny(lower string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
