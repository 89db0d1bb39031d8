package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paginationContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/v1/gallery?"+rawQuery, nil)
	return c
}

func TestParsePaginationDefaults(t *testing.T) {
	page, limit, err := ParsePagination(paginationContext(t, ""))
	require.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
}

func TestParsePaginationClamping(t *testing.T) {
	page, limit, err := ParsePagination(paginationContext(t, "page=0&limit=5000"))
	require.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Equal(t, 100, limit)
}

func TestParsePaginationInvalid(t *testing.T) {
	_, _, err := ParsePagination(paginationContext(t, "page=abc"))
	assert.Error(t, err)
}
