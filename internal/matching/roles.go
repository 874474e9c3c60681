package matching

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/catalog"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// topRoleCount is how many ranked roles are reported.
const topRoleCount = 3

// maxRecommendedSkills caps the missing keywords listed in a recommendation.
const maxRecommendedSkills = 5

// lowFitThreshold is the top-role score below which the generic
// differentiation recommendation is added.
const lowFitThreshold = 50

const genericRecommendation = "Your profile seems to differ from common job roles. " +
	"Consider highlighting your unique skills and experience."

// PredictRole scores the resume against every role in the catalog, ranks the
// roles by score with catalog order breaking ties, and generates up to two
// recommendations for the best-fitting role.
func PredictRole(resumeText string, skills []string, roles *catalog.RoleCatalog) *types.RolePrediction {
	resumeLower := strings.ToLower(resumeText)

	skillSet := make(map[string]bool, len(skills))
	for _, skill := range skills {
		skillSet[skill] = true
	}

	keywordPresent := func(keyword string) bool {
		return strings.Contains(resumeLower, keyword) || skillSet[keyword]
	}

	scores := make([]types.RoleScore, 0, len(roles.Roles))
	for _, role := range roles.Roles {
		matched := []string{}
		for _, keyword := range role.Keywords {
			if keywordPresent(keyword) {
				matched = append(matched, keyword)
			}
		}

		score := 0
		if len(role.Keywords) > 0 {
			score = analyzer.Percentage(len(matched), len(role.Keywords))
		}

		scores = append(scores, types.RoleScore{
			Title:           role.Title,
			Score:           score,
			MatchedKeywords: matched,
		})
	}

	// Stable sort keeps catalog order between equally scored roles.
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	topRoles := scores[:min(len(scores), topRoleCount)]

	recommendations := []string{}
	if len(topRoles) > 0 {
		top := topRoles[0]

		var missing []string
		for _, role := range roles.Roles {
			if role.Title != top.Title {
				continue
			}
			for _, keyword := range role.Keywords {
				if !keywordPresent(keyword) {
					missing = append(missing, keyword)
				}
			}
			break
		}

		if len(missing) > 0 {
			listed := missing[:min(len(missing), maxRecommendedSkills)]
			recommendations = append(recommendations,
				fmt.Sprintf("Consider adding skills in: %s", strings.Join(listed, ", ")))
		}

		if top.Score < lowFitThreshold {
			recommendations = append(recommendations, genericRecommendation)
		}
	}

	return &types.RolePrediction{
		TopRoles:        topRoles,
		Recommendations: recommendations,
	}
}
