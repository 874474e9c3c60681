package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestExtractEmail_FirstMatch(t *testing.T) {
	text := "Contact: jane.doe@example.com or backup@other.org"

	assert.Equal(t, "jane.doe@example.com", ExtractEmail(text))
}

func TestExtractEmail_Sentinel(t *testing.T) {
	assert.Equal(t, types.EmailNotDetected, ExtractEmail("no contact information here"))
}

func TestExtractPhone_CommonFormats(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"dashes", "call 555-123-4567 today", "555-123-4567"},
		{"parentheses", "phone: (555) 123-4567", "(555) 123-4567"},
		{"international prefix", "reach me at +1 555 123 4567", "+1 555 123 4567"},
		{"plain digits", "number 5551234567", "5551234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPhone(tt.text))
		})
	}
}

func TestExtractPhone_Sentinel(t *testing.T) {
	assert.Equal(t, types.PhoneNotDetected, ExtractPhone("call me maybe"))
}

func TestExtractYear(t *testing.T) {
	assert.Equal(t, "2018", ExtractYear("Graduated State University in 2018 with honors"))
	assert.Equal(t, "1999", ExtractYear("class of 1999"))
	assert.Equal(t, "", ExtractYear("graduated in 1899"))
	assert.Equal(t, "", ExtractYear("no year at all"))
}

func TestExtractYear_IgnoresLongerDigitRuns(t *testing.T) {
	assert.Equal(t, "", ExtractYear("id 201855"))
}
