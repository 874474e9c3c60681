// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable summary of the full analysis result.
func (p *Printer) PrintAnalysis(result *types.AnalyzeResult) {
	if result == nil {
		return
	}
	p.PrintPersonalInfo(result.PersonalInfo)
	p.PrintSkills(result.Skills)
	p.PrintJobMatch(result.JobMatch)
	p.PrintRolePrediction(result.JobRolePrediction)
}

// PrintPersonalInfo outputs the extracted contact details and section
// summaries.
func (p *Printer) PrintPersonalInfo(info *types.ResumeInfo) {
	if info == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:   %s\n", info.Name))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", info.Email))
	sb.WriteString(fmt.Sprintf("Phone:  %s\n", info.Phone))
	sb.WriteString(fmt.Sprintf("\nEducation entries:  %d\n", len(info.Education)))
	sb.WriteString(fmt.Sprintf("Experience entries: %d", len(info.Experience)))

	p.printBox("PERSONAL INFO", sb.String())
}

// PrintSkills outputs the skill breakdown with counts and percentages.
func (p *Printer) PrintSkills(skills *types.ExtractedSkills) {
	if skills == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total: %d  (technical %d%%, soft %d%%)\n",
		skills.TotalCount, skills.TechnicalPercentage, skills.SoftPercentage))

	writeSkillList(&sb, "Technical", skills.Technical)
	writeSkillList(&sb, "Soft", skills.Soft)
	writeSkillList(&sb, "Certifications", skills.Certifications)
	writeSkillList(&sb, "Languages", skills.Languages)

	p.printBox("SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

func writeSkillList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	count := min(len(items), maxItemsToShow)
	sb.WriteString(fmt.Sprintf("%s: %s", label, strings.Join(items[:count], ", ")))
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf(" ... and %d more", len(items)-maxItemsToShow))
	}
	sb.WriteString("\n")
}

// PrintJobMatch outputs the match percentage and keyword partition. A nil
// result (no job description given) prints nothing.
func (p *Printer) PrintJobMatch(match *types.JobMatchResult) {
	if match == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match: %d%%\n", match.MatchPercentage))
	writeSkillList(&sb, "Matched", match.MatchedKeywords)
	writeSkillList(&sb, "Missing", match.MissingKeywords)

	p.printBox("JOB MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRolePrediction outputs the top ranked roles with scores and any
// recommendations.
func (p *Printer) PrintRolePrediction(prediction *types.RolePrediction) {
	if prediction == nil || len(prediction.TopRoles) == 0 {
		return
	}

	var sb strings.Builder
	for i, role := range prediction.TopRoles {
		sb.WriteString(fmt.Sprintf("%d. %s (%d%%)\n", i+1, role.Title, role.Score))
	}
	for _, rec := range prediction.Recommendations {
		sb.WriteString(fmt.Sprintf("• %s\n", rec))
	}

	p.printBox("ROLE PREDICTION", strings.TrimSuffix(sb.String(), "\n"))
}
