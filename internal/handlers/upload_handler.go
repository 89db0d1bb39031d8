package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kalakritam/kalakritam-api/internal/helpers"
)

// UploadImage stores an admin-uploaded image and returns its path for use as
// artwork, event, workshop, artist or blog imagery.
func UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "No image file provided.")
		return
	}

	uploadType := c.DefaultPostForm("type", "general")

	path, err := helpers.UploadFile(c, fileHeader, uploadType)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Image uploaded successfully.",
		"path":    path,
	})
}
