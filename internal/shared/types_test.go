package shared

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-management-backend/internal/shared/apierror"
)

func TestDate_MarshalJSON(t *testing.T) {
	d := NewDate(time.Date(2023, 4, 9, 15, 30, 0, 0, time.UTC))

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2023-04-09"`, string(data))
}

func TestDate_UnmarshalJSON(t *testing.T) {
	t.Run("well formed", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"2023-04-09"`), &d))
		assert.Equal(t, time.Date(2023, 4, 9, 0, 0, 0, 0, time.UTC), d.Time)
	})

	t.Run("null leaves zero value", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`null`), &d))
		assert.True(t, d.IsZero())
	})

	t.Run("bad format is a typed failure", func(t *testing.T) {
		var d Date
		err := json.Unmarshal([]byte(`"09-04-2023"`), &d)

		apiErr, ok := apierror.From(err)
		require.True(t, ok)
		assert.Equal(t, apierror.InvalidInput, apiErr.Kind)
		assert.Equal(t, "date[09-04-2023] must match format yyyy-mm-dd", apiErr.Detail)
	})
}

func TestToday(t *testing.T) {
	d := Today()

	assert.Equal(t, 0, d.Hour())
	assert.Equal(t, 0, d.Minute())
	assert.Equal(t, time.Now().Format(DateFormat), d.String())
}
