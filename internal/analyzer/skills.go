// Package analyzer matches catalog skill terms against resume text and mines
// additional skills from the free-form skills section.
package analyzer

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/catalog"
	"github.com/jonathan/resume-analyzer/internal/sections"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// skillsSectionSplitter separates free-form skills section fragments on
// commas, semicolons, bullet characters and line breaks.
var skillsSectionSplitter = regexp.MustCompile(`[,;•\n]`)

// Fragments equal to one of these words are not skills.
var skillStopwords = map[string]bool{
	"and": true, "or": true, "the": true, "a": true, "an": true,
	"in": true, "on": true, "at": true, "to": true, "for": true,
}

// Matcher matches one skill catalog against resume text. Whole-word patterns
// are compiled once per catalog; the catalog is immutable after process
// start, so a Matcher is safe for concurrent use.
type Matcher struct {
	catalog  *catalog.SkillCatalog
	patterns map[string]*regexp.Regexp
}

// NewMatcher creates a Matcher with precompiled whole-word patterns for every
// canonical term in the catalog.
func NewMatcher(c *catalog.SkillCatalog) *Matcher {
	m := &Matcher{
		catalog:  c,
		patterns: make(map[string]*regexp.Regexp),
	}
	for _, set := range [][]string{c.Technical, c.Soft, c.Certifications, c.Languages} {
		for _, term := range set {
			if _, ok := m.patterns[term]; !ok {
				m.patterns[term] = regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
			}
		}
	}
	return m
}

// ExtractSkills matches every catalog term against the resume text and mines
// the segmented skills section for free-form additions. Technical and soft
// hits contribute to the aggregate skills list; certifications and languages
// are tracked separately. Counts and percentages are computed over the
// aggregate list, with the total floored at one.
func (m *Matcher) ExtractSkills(text string) *types.ExtractedSkills {
	textLower := strings.ToLower(text)

	result := &types.ExtractedSkills{
		Skills:         []string{},
		Technical:      []string{},
		Soft:           []string{},
		Certifications: []string{},
		Languages:      []string{},
	}

	for _, term := range m.catalog.Technical {
		if m.patterns[term].MatchString(textLower) {
			result.Technical = append(result.Technical, term)
			result.Skills = append(result.Skills, term)
		}
	}
	for _, term := range m.catalog.Soft {
		if m.patterns[term].MatchString(textLower) {
			result.Soft = append(result.Soft, term)
			result.Skills = append(result.Skills, term)
		}
	}
	for _, term := range m.catalog.Certifications {
		if m.patterns[term].MatchString(textLower) {
			result.Certifications = append(result.Certifications, term)
		}
	}
	for _, term := range m.catalog.Languages {
		if m.patterns[term].MatchString(textLower) {
			result.Languages = append(result.Languages, term)
		}
	}

	sectionTexts := sections.Segment(strings.Split(text, "\n"))
	result.Skills = appendSectionSkills(result.Skills, sectionTexts[sections.KindSkills])

	result.TotalCount = len(result.Skills)
	result.TechnicalCount = len(result.Technical)
	result.SoftCount = len(result.Soft)
	result.TechnicalPercentage = Percentage(result.TechnicalCount, result.TotalCount)
	result.SoftPercentage = Percentage(result.SoftCount, result.TotalCount)

	return result
}

// appendSectionSkills splits the skills section on common delimiters and
// appends cleaned fragments that are long enough, not stopwords, and not
// already present. Section fragments stay uncategorized.
func appendSectionSkills(skills []string, sectionText string) []string {
	if sectionText == "" {
		return skills
	}

	seen := make(map[string]bool, len(skills))
	for _, s := range skills {
		seen[s] = true
	}

	for _, fragment := range skillsSectionSplitter.Split(sectionText, -1) {
		skill := strings.ToLower(strings.TrimSpace(fragment))
		if len(skill) <= 2 || skillStopwords[skill] || seen[skill] {
			continue
		}
		skills = append(skills, skill)
		seen[skill] = true
	}

	return skills
}

// Percentage computes round(count / max(1, total) * 100) with rounding half
// away from zero.
func Percentage(count, total int) int {
	if total < 1 {
		total = 1
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
