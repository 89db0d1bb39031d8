package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

// Health reports liveness and presence (not validity) of required
// configuration.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"status":       "ok",
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"hasDatabase":  os.Getenv("DB_HOST") != "",
		"hasJwtSecret": os.Getenv("JWT_SECRET") != "",
	})
}
