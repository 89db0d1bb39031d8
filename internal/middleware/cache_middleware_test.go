package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cachedEngine(mw gin.HandlerFunc, hits *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/v1/gallery", mw, func(c *gin.Context) {
		*hits++
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestCacheKeyStable(t *testing.T) {
	first := CacheKey("/v1/gallery", "page=1")
	second := CacheKey("/v1/gallery", "page=1")
	other := CacheKey("/v1/gallery", "page=2")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
}

func TestResponseCacheNilClientPassthrough(t *testing.T) {
	hits := 0
	r := cachedEngine(ResponseCache(nil, time.Minute), &hits)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/v1/gallery", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, hits)
	assert.Empty(t, w.Header().Get("X-Cache"))
}

func TestResponseCacheMissStoresBody(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	key := CacheKey("/v1/gallery", "")

	mock.ExpectGet(key).RedisNil()
	mock.ExpectSet(key, []byte(`{"ok":true}`), time.Minute).SetVal("OK")

	hits := 0
	r := cachedEngine(ResponseCache(rdb, time.Minute), &hits)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/v1/gallery", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, hits)
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResponseCacheSkipsNonJSONBody(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	key := CacheKey("/v1/gallery", "")

	// Only the lookup is expected; a text body must not be stored.
	mock.ExpectGet(key).RedisNil()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/v1/gallery", ResponseCache(rdb, time.Minute), func(c *gin.Context) {
		c.String(http.StatusOK, "plain text")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/v1/gallery", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResponseCacheHitSkipsHandler(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	key := CacheKey("/v1/gallery", "")

	mock.ExpectGet(key).SetVal(`{"ok":true}`)

	hits := 0
	r := cachedEngine(ResponseCache(rdb, time.Minute), &hits)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/v1/gallery", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, hits)
	assert.Equal(t, "HIT", w.Header().Get("X-Cache"))
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}
