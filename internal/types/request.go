package types

import "github.com/go-playground/validator/v10"

// AnalyzeRequest carries the optional job-description inputs that accompany a
// resume upload. JobDescription and JobURL are mutually exclusive.
type AnalyzeRequest struct {
	JobDescription string `json:"job_description,omitempty" validate:"excluded_with=JobURL"`
	JobURL         string `json:"job_description_url,omitempty" validate:"omitempty,url"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
