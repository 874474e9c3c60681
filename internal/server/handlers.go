package server

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// maxUploadSize caps the resume upload at 16 MiB, which also bounds the text
// the regex miners run over.
const maxUploadSize = 16 << 20

// handleAnalyze accepts a multipart resume upload with an optional job
// description (inline text or URL) and returns the full analysis.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer func() { _ = file.Close() }()

	if header.Filename == "" {
		s.errorResponse(w, http.StatusBadRequest, "No file selected")
		return
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(header.Filename)), ".")
	if !ingestion.IsSupportedExtension(ext) {
		s.errorResponse(w, http.StatusBadRequest,
			"File type not supported. Please upload a PDF, DOCX or TXT file.")
		return
	}

	req := types.AnalyzeRequest{
		JobDescription: r.FormValue("job_description"),
		JobURL:         r.FormValue("job_description_url"),
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	tempPath, err := saveTempFile(file, ext)
	if err != nil {
		log.Printf("Error saving upload: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Could not save the uploaded file")
		return
	}
	defer func() { _ = os.Remove(tempPath) }()

	text, err := ingestion.ExtractText(tempPath, ext)
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			log.Printf("Error extracting resume text: %v", err)
		}
		s.errorResponse(w, http.StatusBadRequest, "Could not extract text from the resume")
		return
	}

	jobDescription := req.JobDescription
	if jobDescription == "" && req.JobURL != "" {
		jobDescription, err = fetch.JobDescription(r.Context(), req.JobURL)
		if err != nil {
			log.Printf("Error fetching job description: %v", err)
			s.errorResponse(w, http.StatusBadRequest, "Could not fetch the job description URL")
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, s.pipeline.Analyze(text, jobDescription))
}

// saveTempFile writes the upload to a uniquely named file in the temp
// directory and returns its path.
func saveTempFile(file io.Reader, ext string) (string, error) {
	path := filepath.Join(os.TempDir(), fmt.Sprintf("%s.%s", uuid.New().String(), ext))

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, file); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}

	return path, nil
}
