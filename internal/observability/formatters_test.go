package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestPrintPersonalInfo(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPersonalInfo(&types.ResumeInfo{
		Name:  "John Smith",
		Email: "john@example.com",
		Phone: types.PhoneNotDetected,
	})

	out := buf.String()
	assert.Contains(t, out, "PERSONAL INFO")
	assert.Contains(t, out, "John Smith")
	assert.Contains(t, out, "john@example.com")
}

func TestPrintSkills_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkills(&types.ExtractedSkills{
		Technical:  []string{"python", "java", "go", "rust", "ruby", "php", "perl"},
		TotalCount: 7,
	})

	out := buf.String()
	assert.Contains(t, out, "SKILLS")
	assert.Contains(t, out, "and 2 more")
	assert.NotContains(t, out, "perl")
}

func TestPrintJobMatch_NilPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobMatch(nil)

	assert.Empty(t, buf.String())
}

func TestPrintRolePrediction(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRolePrediction(&types.RolePrediction{
		TopRoles: []types.RoleScore{
			{Title: "Software Engineer", Score: 80},
			{Title: "Data Scientist", Score: 40},
		},
		Recommendations: []string{"Consider adding skills in: aws"},
	})

	out := buf.String()
	assert.Contains(t, out, "ROLE PREDICTION")
	assert.Contains(t, out, "1. Software Engineer (80%)")
	assert.Contains(t, out, "Consider adding skills in: aws")
}

func TestPrintAnalysis_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAnalysis(nil)

	assert.Empty(t, buf.String())
}
