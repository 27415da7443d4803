package isbn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-management-backend/internal/shared/apierror"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		candidate  string
		wantDetail string
	}{
		{
			name:      "well formed",
			candidate: "123-456789-0",
		},
		{
			name:      "lower prefix bound",
			candidate: "100-456789-0",
		},
		{
			name:      "upper prefix bound",
			candidate: "900-456789-0",
		},
		{
			name:       "blank",
			candidate:  " ",
			wantDetail: "ISBN-10 must not be blank",
		},
		{
			name:       "empty",
			candidate:  "",
			wantDetail: "ISBN-10 must not be blank",
		},
		{
			name:       "no hyphens",
			candidate:  "1005689010",
			wantDetail: "ISBN-10[1005689010] must contain two hyphens",
		},
		{
			name:       "one hyphen",
			candidate:  "100-5689010",
			wantDetail: "ISBN-10[100-5689010] must contain two hyphens",
		},
		{
			name:       "three hyphens",
			candidate:  "100-56-8901-0",
			wantDetail: "ISBN-10[100-56-8901-0] must contain two hyphens",
		},
		{
			name:       "nine digits",
			candidate:  "99-568901-0",
			wantDetail: "ISBN-10[99-568901-0] must be 10 digits",
		},
		{
			name:       "eleven digits",
			candidate:  "100-5689012-0",
			wantDetail: "ISBN-10[100-5689012-0] must be 10 digits",
		},
		{
			name:       "non digit character",
			candidate:  "100-56890a-0",
			wantDetail: "ISBN-10[100-56890a-0] must be 10 digits",
		},
		{
			name:       "prefix below range",
			candidate:  "099-568901-0",
			wantDetail: "ISBN-10[099-568901-0] prefix out of range (100-900)",
		},
		{
			name:       "prefix above range",
			candidate:  "901-568901-0",
			wantDetail: "ISBN-10[901-568901-0] prefix out of range (100-900)",
		},
		{
			name:       "checksum digit not zero",
			candidate:  "100-568901-1",
			wantDetail: "ISBN-10[100-568901-1] checksum digit must be 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.candidate)

			if tt.wantDetail == "" {
				assert.NoError(t, err)
				return
			}

			apiErr, ok := apierror.From(err)
			require.True(t, ok, "expected a typed failure, got %v", err)
			assert.Equal(t, apierror.InvalidInput, apiErr.Kind)
			assert.Equal(t, tt.wantDetail, apiErr.Detail)
		})
	}
}

// Rules are checked in a fixed order, so a candidate violating several of
// them reports only the first violation.
func TestValidate_FirstViolationWins(t *testing.T) {
	err := Validate("0991")

	apiErr, ok := apierror.From(err)
	require.True(t, ok)
	assert.Equal(t, "ISBN-10[0991] must contain two hyphens", apiErr.Detail)
}
