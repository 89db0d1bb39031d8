package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func DatabaseMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("db", db)
		c.Next()
	}
}

// RedisMiddleware injects the shared Redis client. The client may be nil when
// Redis is unavailable; consumers must degrade to uncached behavior.
func RedisMiddleware(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("redis", rdb)
		c.Next()
	}
}

func GetRedis(c *gin.Context) *redis.Client {
	client, exists := c.Get("redis")
	if !exists {
		return nil
	}
	rdb, ok := client.(*redis.Client)
	if !ok {
		return nil
	}
	return rdb
}
