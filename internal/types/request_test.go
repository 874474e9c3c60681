package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request AnalyzeRequest
		wantErr bool
	}{
		{
			name:    "empty request is valid",
			request: AnalyzeRequest{},
			wantErr: false,
		},
		{
			name:    "inline description only",
			request: AnalyzeRequest{JobDescription: "Requirements: python"},
			wantErr: false,
		},
		{
			name:    "url only",
			request: AnalyzeRequest{JobURL: "https://example.com/job/123"},
			wantErr: false,
		},
		{
			name: "both fields set",
			request: AnalyzeRequest{
				JobDescription: "Requirements: python",
				JobURL:         "https://example.com/job/123",
			},
			wantErr: true,
		},
		{
			name:    "malformed url",
			request: AnalyzeRequest{JobURL: "not a url"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
