package matching

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// contextWindow is how many characters before and after a matched keyword are
// included in its context snippet.
const contextWindow = 50

// MatchJobDescription scores a resume against the keywords mined from a job
// description. A keyword matches when it occurs as a substring of the
// lowercased resume text or as an exact element of the extracted resume
// skills. An empty job description yields the zero result.
func MatchJobDescription(resumeText, jobDescription string, resumeSkills []string) *types.JobMatchResult {
	if jobDescription == "" {
		return &types.JobMatchResult{
			MatchedKeywords: []string{},
			MissingKeywords: []string{},
			MatchedDetails:  []types.MatchDetail{},
		}
	}

	keywords := ExtractKeywords(jobDescription)
	resumeLower := strings.ToLower(resumeText)

	skillSet := make(map[string]bool, len(resumeSkills))
	for _, skill := range resumeSkills {
		skillSet[skill] = true
	}

	matched := []string{}
	missing := []string{}
	details := []types.MatchDetail{}

	for _, keyword := range keywords {
		if strings.Contains(resumeLower, keyword) || skillSet[keyword] {
			matched = append(matched, keyword)
			details = append(details, types.MatchDetail{
				Keyword: keyword,
				Found:   true,
				Context: keywordContext(resumeLower, keyword),
			})
		} else {
			missing = append(missing, keyword)
			details = append(details, types.MatchDetail{
				Keyword: keyword,
				Found:   false,
			})
		}
	}

	return &types.JobMatchResult{
		MatchPercentage: analyzer.Percentage(len(matched), len(keywords)),
		MatchedKeywords: matched,
		MissingKeywords: missing,
		MatchedDetails:  details,
	}
}

// keywordContext returns a window of text around the keyword's first
// occurrence with the keyword wrapped in bold markers, or nil when the
// keyword does not occur as a raw substring (e.g. matched only via the skill
// list).
func keywordContext(textLower, keyword string) *string {
	idx := strings.Index(textLower, keyword)
	if idx < 0 {
		return nil
	}

	start := max(0, idx-contextWindow)
	end := min(len(textLower), idx+len(keyword)+contextWindow)

	context := strings.ReplaceAll(textLower[start:end], keyword, "**"+keyword+"**")
	return &context
}
