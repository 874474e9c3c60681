// Package ingestion extracts plain text from uploaded resume documents.
package ingestion

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// SupportedExtensions lists the resume file types the analyzer accepts.
var SupportedExtensions = []string{"pdf", "docx", "txt"}

// IsSupportedExtension reports whether ext (without the dot, any case) is an
// accepted resume file type.
func IsSupportedExtension(ext string) bool {
	lower := strings.ToLower(ext)
	for _, supported := range SupportedExtensions {
		if lower == supported {
			return true
		}
	}
	return false
}

// ExtractText extracts the text content of the resume at path according to
// its file extension. It returns an error for unsupported extensions or
// undecodable files; the caller maps that to a user-visible failure.
func ExtractText(path, ext string) (string, error) {
	switch strings.ToLower(ext) {
	case "pdf":
		return extractPDFText(path)
	case "docx":
		return extractDocxText(path)
	case "txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read text file: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported file extension: %s", ext)
	}
}

func extractPDFText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

func extractDocxText(path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	return doc.Editable().GetContent(), nil
}
