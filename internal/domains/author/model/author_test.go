package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-management-backend/internal/shared/apierror"
)

func TestAuthor_UpdateName(t *testing.T) {
	t.Run("replaces the name", func(t *testing.T) {
		author := New("Kim Younghan", "kim@example.com")

		require.NoError(t, author.UpdateName("Kim Youngwon"))
		assert.Equal(t, "Kim Youngwon", author.Name)
	})

	t.Run("email stays untouched", func(t *testing.T) {
		author := New("Kim Younghan", "kim@example.com")

		require.NoError(t, author.UpdateName("Kim Youngwon"))
		assert.Equal(t, "kim@example.com", author.Email)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		for _, blank := range []string{"", " ", "\t"} {
			author := New("Kim Younghan", "kim@example.com")

			err := author.UpdateName(blank)

			apiErr, ok := apierror.From(err)
			require.True(t, ok)
			assert.Equal(t, apierror.RequiredInput, apiErr.Kind)
			assert.Equal(t, "Kim Younghan", author.Name, "a rejected update must not mutate")
		}
	})
}

func TestCreateAuthorRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateAuthorRequest
		wantErr bool
	}{
		{"valid", CreateAuthorRequest{Name: "Kim", Email: "kim@example.com"}, false},
		{"missing name", CreateAuthorRequest{Email: "kim@example.com"}, true},
		{"missing email", CreateAuthorRequest{Name: "Kim"}, true},
		{"malformed email", CreateAuthorRequest{Name: "Kim", Email: "not-an-email"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
