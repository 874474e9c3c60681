// Package matching mines requirement keywords out of job descriptions and
// scores resumes against them and against the role catalog. Mining is driven
// by ordered pattern tables so extraction order stays deterministic.
package matching

import (
	"regexp"
	"strings"
)

// requirementHeaders, in match order, introduce the sections of a job
// description that carry requirements. Each candidate section runs from the
// header to the next blank line or the end of the text.
var requirementHeaders = []string{
	"requirements:",
	"qualifications:",
	"skills:",
	"what you need:",
	"what you'll need:",
	"required skills:",
}

// techTerms is the fixed vocabulary of common technical and process terms
// mined by substring occurrence, in mining order.
var techTerms = []string{
	"python", "java", "javascript", "html", "css", "react", "angular", "vue",
	"node", "express", "django", "flask", "sql", "nosql", "aws", "azure", "gcp",
	"docker", "kubernetes", "devops", "ci/cd", "git", "agile", "scrum", "jira",
	"machine learning", "deep learning", "ai", "data science", "tensorflow", "pytorch",
	"ux", "ui", "design", "product", "management", "analytics", "marketing", "sales",
}

var (
	bulletPattern      = regexp.MustCompile(`(?:•|\*|-|\d+\.)[ \t]*([^\n]+)`)
	experiencePattern  = regexp.MustCompile(`experience (?:with|in) ([\w\s/+#]+)`)
	familiarityPattern = regexp.MustCompile(`familiarity with ([\w\s/+#]+)`)
)

// Keywords passing the final filter must be longer than this and not a
// stopword.
const minKeywordLength = 2

var keywordStopwords = map[string]bool{
	"and": true, "or": true, "the": true, "a": true,
	"an": true, "in": true, "with": true, "to": true,
}

// keywordMiners run in order over the concatenated candidate sections:
// bullet-list items, vocabulary terms, "experience with/in" objects, then
// "familiarity with" objects.
var keywordMiners = []func(string) []string{
	mineBullets,
	mineTechTerms,
	minePhrases(experiencePattern),
	minePhrases(familiarityPattern),
}

// ExtractKeywords mines candidate requirement keywords out of a job
// description, deduplicated in first-seen order. When no requirement header
// matches, the entire text is the sole candidate section.
func ExtractKeywords(jobDescription string) []string {
	lowered := strings.ToLower(jobDescription)

	sections := candidateSections(lowered)
	if len(sections) == 0 {
		sections = []string{lowered}
	}
	combined := strings.Join(sections, " ")

	var mined []string
	for _, mine := range keywordMiners {
		mined = append(mined, mine(combined)...)
	}

	keywords := []string{}
	seen := make(map[string]bool)
	for _, keyword := range mined {
		if seen[keyword] || keywordStopwords[keyword] || len(keyword) <= minKeywordLength {
			continue
		}
		keywords = append(keywords, keyword)
		seen[keyword] = true
	}

	return keywords
}

// candidateSections collects every run from a requirement header to the next
// blank line, across all headers in table order.
func candidateSections(lowered string) []string {
	var sections []string
	for _, header := range requirementHeaders {
		offset := 0
		for {
			i := strings.Index(lowered[offset:], header)
			if i < 0 {
				break
			}
			start := offset + i
			end := len(lowered)
			if blank := strings.Index(lowered[start:], "\n\n"); blank >= 0 {
				end = start + blank
			}
			sections = append(sections, lowered[start:end])
			offset = end
		}
	}
	return sections
}

func mineBullets(text string) []string {
	var out []string
	for _, match := range bulletPattern.FindAllStringSubmatch(text, -1) {
		if item := strings.TrimSpace(match[1]); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func mineTechTerms(text string) []string {
	var out []string
	for _, term := range techTerms {
		if strings.Contains(text, term) {
			out = append(out, term)
		}
	}
	return out
}

func minePhrases(pattern *regexp.Regexp) func(string) []string {
	return func(text string) []string {
		var out []string
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			if phrase := strings.TrimSpace(match[1]); phrase != "" {
				out = append(out, phrase)
			}
		}
		return out
	}
}
