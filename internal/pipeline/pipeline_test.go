package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/annotate"
	"github.com/jonathan/resume-analyzer/internal/catalog"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const sampleResume = `John Smith
john.smith@example.com
(555) 123-4567

Skills
python, docker, teamwork

Experience
Software Engineer at Initech
Built internal services in Python.`

func newTestPipeline() *Pipeline {
	return New(catalog.DefaultSkillCatalog(), catalog.DefaultRoleCatalog(), annotate.NewHeuristic())
}

func TestAnalyze_WithoutJobDescription(t *testing.T) {
	result := newTestPipeline().Analyze(sampleResume, "")

	require.NotNil(t, result.PersonalInfo)
	assert.Equal(t, "John Smith", result.PersonalInfo.Name)
	assert.Equal(t, "john.smith@example.com", result.PersonalInfo.Email)

	require.NotNil(t, result.Skills)
	assert.Contains(t, result.Skills.Technical, "python")
	assert.Contains(t, result.Skills.Soft, "teamwork")

	require.NotNil(t, result.JobRolePrediction)
	assert.NotEmpty(t, result.JobRolePrediction.TopRoles)

	assert.Nil(t, result.JobMatch)
}

func TestAnalyze_WithJobDescription(t *testing.T) {
	result := newTestPipeline().Analyze(sampleResume, "Requirements: python, aws, docker")

	require.NotNil(t, result.JobMatch)
	assert.Contains(t, result.JobMatch.MatchedKeywords, "python")
	assert.Contains(t, result.JobMatch.MatchedKeywords, "docker")
	assert.Contains(t, result.JobMatch.MissingKeywords, "aws")
	assert.Equal(t, 67, result.JobMatch.MatchPercentage)
}

func TestAnalyze_SparseTextUsesSentinels(t *testing.T) {
	result := newTestPipeline().Analyze("nothing useful here", "")

	assert.Equal(t, types.NameNotDetected, result.PersonalInfo.Name)
	assert.Equal(t, types.EmailNotDetected, result.PersonalInfo.Email)
	assert.Equal(t, types.PhoneNotDetected, result.PersonalInfo.Phone)
	assert.Equal(t, 0, result.Skills.TotalCount)
}

func TestAnalyze_JobMatchOmittedFromJSONWhenNil(t *testing.T) {
	result := newTestPipeline().Analyze(sampleResume, "")

	assert.Nil(t, result.JobMatch)
}
