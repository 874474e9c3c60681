// Package pipeline wires the extraction and scoring stages into the single
// synchronous analysis operation exposed to the HTTP layer and the CLI.
package pipeline

import (
	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/annotate"
	"github.com/jonathan/resume-analyzer/internal/catalog"
	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Pipeline runs resume analysis against a fixed pair of catalogs. The
// catalogs are immutable after construction, so one Pipeline serves
// concurrent requests without coordination.
type Pipeline struct {
	roles     *catalog.RoleCatalog
	annotator annotate.Annotator
	matcher   *analyzer.Matcher
	extractor *parsing.Extractor
}

// New creates a Pipeline over the given catalogs and annotator.
func New(skills *catalog.SkillCatalog, roles *catalog.RoleCatalog, annotator annotate.Annotator) *Pipeline {
	return &Pipeline{
		roles:     roles,
		annotator: annotator,
		matcher:   analyzer.NewMatcher(skills),
		extractor: parsing.NewExtractor(annotator),
	}
}

// Analyze produces the full analysis for one resume text and an optional job
// description. Job matching is skipped when no job description is given; role
// prediction always runs.
func (p *Pipeline) Analyze(text, jobDescription string) *types.AnalyzeResult {
	doc := annotate.Annotate(p.annotator, text)

	info := p.extractor.ExtractInfo(doc, text)
	skills := p.matcher.ExtractSkills(text)

	result := &types.AnalyzeResult{
		PersonalInfo:      info,
		Skills:            skills,
		JobRolePrediction: matching.PredictRole(text, skills.Skills, p.roles),
	}

	if jobDescription != "" {
		result.JobMatch = matching.MatchJobDescription(text, jobDescription, skills.Skills)
	}

	return result
}
