package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		query    string
		wantPage int
		wantSize int
	}{
		{"defaults", "", 1, DefaultPageSize},
		{"explicit", "?page=3&size=25", 3, 25},
		{"invalid page", "?page=zero&size=5", 1, 5},
		{"size too large", "?page=2&size=1000", 2, DefaultPageSize},
		{"negative", "?page=-1&size=-5", 1, DefaultPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/items"+tt.query, nil)

			page, size := ParsePaginationParams(c)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantSize, size)
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	first := Paginate(items, 1, 2)
	assert.Equal(t, []int{1, 2}, first.Items)
	assert.Equal(t, 3, first.Pagination.TotalPages)
	assert.Equal(t, 5, first.Pagination.TotalItems)

	last := Paginate(items, 3, 2)
	assert.Equal(t, []int{5}, last.Items)

	beyond := Paginate(items, 9, 2)
	assert.Equal(t, []int{}, beyond.Items)
	assert.Equal(t, 3, beyond.Pagination.CurrentPage)

	empty := Paginate([]string{}, 1, 10)
	assert.Equal(t, 1, empty.Pagination.TotalPages)
}
