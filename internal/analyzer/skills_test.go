package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/catalog"
)

func testCatalog() *catalog.SkillCatalog {
	return &catalog.SkillCatalog{
		Technical:      []string{"python", "java", "docker"},
		Soft:           []string{"teamwork", "communication"},
		Certifications: []string{"aws certified"},
		Languages:      []string{"german"},
	}
}

func TestExtractSkills_WholeWordMatching(t *testing.T) {
	matcher := NewMatcher(testCatalog())

	skills := matcher.ExtractSkills("Expert in JavaScript and Docker")

	// "java" must not match inside "javascript".
	assert.NotContains(t, skills.Technical, "java")
	assert.Contains(t, skills.Technical, "docker")
	assert.Equal(t, []string{"docker"}, skills.Skills)
}

func TestExtractSkills_SkillsSectionScenario(t *testing.T) {
	matcher := NewMatcher(testCatalog())

	skills := matcher.ExtractSkills("Skills\npython, teamwork\nExperience\nDid stuff")

	assert.Contains(t, skills.Technical, "python")
	assert.Contains(t, skills.Soft, "teamwork")
	assert.Contains(t, skills.Skills, "python")
	assert.Contains(t, skills.Skills, "teamwork")
	assert.Equal(t, len(skills.Skills), skills.TotalCount)
}

func TestExtractSkills_SectionMiningAddsUncategorized(t *testing.T) {
	matcher := NewMatcher(testCatalog())

	skills := matcher.ExtractSkills("Skills\nkafka; terraform, and, it\nEducation\nBSc")

	assert.Contains(t, skills.Skills, "kafka")
	assert.Contains(t, skills.Skills, "terraform")
	// Stopwords and short fragments are filtered.
	assert.NotContains(t, skills.Skills, "and")
	assert.NotContains(t, skills.Skills, "it")
	// Mined fragments stay out of the categorized lists.
	assert.NotContains(t, skills.Technical, "kafka")
}

func TestExtractSkills_NoDuplicates(t *testing.T) {
	matcher := NewMatcher(testCatalog())

	skills := matcher.ExtractSkills("Skills\npython, docker\nand python appears again: docker docker")

	seen := map[string]int{}
	for _, s := range skills.Skills {
		seen[s]++
	}
	for s, n := range seen {
		assert.Equal(t, 1, n, "duplicate skill %q", s)
	}
	assert.Equal(t, len(skills.Skills), skills.TotalCount)
}

func TestExtractSkills_CertificationsAndLanguagesSeparate(t *testing.T) {
	matcher := NewMatcher(testCatalog())

	skills := matcher.ExtractSkills("AWS Certified engineer, fluent German speaker")

	assert.Contains(t, skills.Certifications, "aws certified")
	assert.Contains(t, skills.Languages, "german")
	assert.NotContains(t, skills.Skills, "aws certified")
	assert.NotContains(t, skills.Skills, "german")
}

func TestExtractSkills_PercentagesUseFlooredTotal(t *testing.T) {
	matcher := NewMatcher(testCatalog())

	skills := matcher.ExtractSkills("nothing relevant here at all")

	require.Equal(t, 0, skills.TotalCount)
	assert.Equal(t, 0, skills.TechnicalPercentage)
	assert.Equal(t, 0, skills.SoftPercentage)
}

func TestPercentage_RoundsHalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 67, Percentage(2, 3))
	assert.Equal(t, 33, Percentage(1, 3))
	assert.Equal(t, 50, Percentage(1, 2))
	assert.Equal(t, 13, Percentage(1, 8))
	assert.Equal(t, 0, Percentage(0, 0))
	assert.Equal(t, 100, Percentage(1, 0))
}
