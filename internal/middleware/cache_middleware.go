package middleware

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "kalakritam:cache"

// cacheWriter duplicates the response body so a successful response can be
// stored after the handler runs.
type cacheWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *cacheWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// CacheKey builds a stable Redis key from the request path and raw query.
func CacheKey(path, rawQuery string) string {
	sum := sha1.Sum([]byte(path + "?" + rawQuery))
	return fmt.Sprintf("%s:%x", cacheKeyPrefix, sum)
}

// ResponseCache serves public GET responses from Redis with the given TTL.
// With a nil client it is a pass-through. Only 200 JSON responses are stored.
func ResponseCache(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	if rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}
	if ttl <= 0 {
		ttl = time.Minute
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := CacheKey(c.Request.URL.Path, c.Request.URL.RawQuery)

		if body, err := rdb.Get(ctx, key).Bytes(); err == nil && len(body) > 0 {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		writer := &cacheWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Header("X-Cache", "MISS")

		c.Next()

		// Hits are replayed with a JSON content type, so only JSON bodies
		// may be stored.
		if c.Writer.Status() == http.StatusOK && writer.buf.Len() > 0 &&
			strings.HasPrefix(c.Writer.Header().Get("Content-Type"), "application/json") {
			rdb.Set(ctx, key, writer.buf.Bytes(), ttl)
		}
	}
}

// CacheInvalidator drops all cached public responses after a successful
// mutating request, so public reads never serve stale admin edits.
func CacheInvalidator(rdb *redis.Client) gin.HandlerFunc {
	if rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method == http.MethodGet || c.Writer.Status() >= 400 {
			return
		}
		ctx := c.Request.Context()
		iter := rdb.Scan(ctx, 0, cacheKeyPrefix+":*", 0).Iterator()
		for iter.Next(ctx) {
			rdb.Del(ctx, iter.Val())
		}
	}
}
