package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	analyzeJob     string
	analyzeJobURL  string
	analyzeOutput  string
	analyzeVerbose bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume-file>",
	Short: "Analyze a resume file",
	Long: `Analyze a resume (pdf, docx or txt) and print the extracted information,
skills, role prediction, and, when a job description is given, the match result.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeJob, "job", "", "Path to a job description text file")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL of a job posting to match against")
	analyzeCmd.Flags().StringVar(&analyzeOutput, "output", "", "Write the JSON result to a file instead of stdout")
	analyzeCmd.Flags().BoolVar(&analyzeVerbose, "verbose", false, "Print a human-readable summary instead of JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	resumePath := args[0]
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(resumePath)), ".")
	if !ingestion.IsSupportedExtension(ext) {
		return fmt.Errorf("unsupported resume file type: %q", ext)
	}

	jobDescription, err := loadJobDescription(cmd.Context())
	if err != nil {
		return err
	}

	text, err := ingestion.ExtractText(resumePath, ext)
	if err != nil {
		return fmt.Errorf("failed to extract resume text: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("no text could be extracted from %s", resumePath)
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	result := newPipeline(cfg).Analyze(text, jobDescription)

	if analyzeVerbose {
		observability.NewPrinter(os.Stdout).PrintAnalysis(result)
		return nil
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	if analyzeOutput != "" {
		if err := os.WriteFile(analyzeOutput, output, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}

	fmt.Println(string(output))
	return nil
}

// loadJobDescription resolves the optional job description from a file or a
// posting URL. The two flags are mutually exclusive.
func loadJobDescription(ctx context.Context) (string, error) {
	req := types.AnalyzeRequest{JobURL: analyzeJobURL}
	if analyzeJob != "" {
		data, err := os.ReadFile(analyzeJob)
		if err != nil {
			return "", fmt.Errorf("failed to read job description file: %w", err)
		}
		req.JobDescription = string(data)
	}
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("invalid job description flags: %w", err)
	}

	if req.JobDescription != "" {
		return req.JobDescription, nil
	}
	if req.JobURL != "" {
		if ctx == nil {
			ctx = context.Background()
		}
		return fetch.JobDescription(ctx, req.JobURL)
	}
	return "", nil
}
