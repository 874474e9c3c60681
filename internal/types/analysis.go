// Package types provides type definitions for structured data used throughout the resume-analyzer system.
package types

// Sentinel values returned when a piece of contact information cannot be found.
const (
	NameNotDetected  = "Name not detected"
	EmailNotDetected = "Email not detected"
	PhoneNotDetected = "Phone not detected"
)

// ResumeInfo holds the structured personal information extracted from a resume.
type ResumeInfo struct {
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`
}

// EducationEntry is a single education item. When structured fields could be
// extracted, Degree/Institution/Year are populated; otherwise Description
// carries the raw section text. Both shapes are variants of the same entity.
type EducationEntry struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
	Description string `json:"description,omitempty"`
}

// ExperienceEntry is a single work experience item.
type ExperienceEntry struct {
	Description string `json:"description"`
}

// ExtractedSkills holds skills found in a resume, categorized by catalog set.
// Skills contains no duplicates and Certifications/Languages are tracked
// outside of it.
type ExtractedSkills struct {
	Skills              []string `json:"skills"`
	Technical           []string `json:"technical"`
	Soft                []string `json:"soft"`
	Certifications      []string `json:"certifications"`
	Languages           []string `json:"languages"`
	TotalCount          int      `json:"total_count"`
	TechnicalCount      int      `json:"technical_count"`
	SoftCount           int      `json:"soft_count"`
	TechnicalPercentage int      `json:"technical_percentage"`
	SoftPercentage      int      `json:"soft_percentage"`
}

// MatchDetail records whether one mined job keyword was found in the resume,
// with a bounded context snippet when it occurs as a raw substring.
type MatchDetail struct {
	Keyword string  `json:"keyword"`
	Found   bool    `json:"found"`
	Context *string `json:"context"`
}

// JobMatchResult scores a resume against a job description. MatchedKeywords
// and MissingKeywords partition the full mined keyword set, and MatchedDetails
// preserves mining order.
type JobMatchResult struct {
	MatchPercentage int           `json:"match_percentage"`
	MatchedKeywords []string      `json:"matched_keywords"`
	MissingKeywords []string      `json:"missing_keywords"`
	MatchedDetails  []MatchDetail `json:"matched_details"`
}

// RoleScore is one role's score against a resume.
type RoleScore struct {
	Title           string   `json:"title"`
	Score           int      `json:"score"`
	MatchedKeywords []string `json:"matched_keywords"`
}

// RolePrediction ranks the best-fitting roles (at most three) and carries
// zero to two recommendation strings.
type RolePrediction struct {
	TopRoles        []RoleScore `json:"top_roles"`
	Recommendations []string    `json:"recommendations"`
}

// AnalyzeResult is the full analysis payload returned for one resume.
// JobMatch is nil when no job description was supplied.
type AnalyzeResult struct {
	PersonalInfo      *ResumeInfo      `json:"personal_info"`
	Skills            *ExtractedSkills `json:"skills"`
	JobMatch          *JobMatchResult  `json:"job_match,omitempty"`
	JobRolePrediction *RolePrediction  `json:"job_role_prediction"`
}
