package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, Request{Page: 0, Size: 10}.Offset())
	assert.Equal(t, 30, Request{Page: 3, Size: 10}.Offset())
}

func TestNewPage(t *testing.T) {
	t.Run("rounds total pages up", func(t *testing.T) {
		page := NewPage([]string{"a", "b"}, Request{Page: 0, Size: 10}, 25)

		assert.Equal(t, int64(25), page.TotalItems)
		assert.Equal(t, 3, page.TotalPages)
	})

	t.Run("nil items marshal as an empty array", func(t *testing.T) {
		page := NewPage[string](nil, Request{Page: 0, Size: 10}, 0)

		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
		assert.Equal(t, 0, page.TotalPages)
	})
}
