package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kalakritam/kalakritam-api/internal/helpers"
	"github.com/kalakritam/kalakritam-api/internal/models"
)

type ArtistRequest struct {
	Name           string            `json:"name" binding:"required"`
	Bio            string            `json:"bio"`
	Specialization string            `json:"specialization"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone"`
	Website        string            `json:"website"`
	SocialLinks    map[string]string `json:"social_links"`
	ImageURL       string            `json:"image_url"`
	IsFeatured     bool              `json:"is_featured"`
	IsActive       *bool             `json:"is_active"`
	SEO            *models.SEOFields `json:"seo"`
}

func (req *ArtistRequest) seoFields() models.SEOFields {
	if req.SEO == nil {
		return helpers.GenerateSEOFields(helpers.SEOTypeArtist, helpers.SEOInput{
			Title:       req.Name,
			Description: req.Bio,
			Category:    req.Specialization,
			Image:       req.ImageURL,
		})
	}
	seo := *req.SEO
	if seo.Slug == "" {
		seo.Slug = helpers.GenerateSlug(req.Name)
	}
	return seo
}

// socialLinksJSON normalizes the social links map to its stored JSON form.
// Free-form strings from older clients are not accepted; the map is the one
// canonical shape.
func (req *ArtistRequest) socialLinksJSON() string {
	if len(req.SocialLinks) == 0 {
		return "{}"
	}
	encoded, err := json.Marshal(req.SocialLinks)
	if err != nil {
		return "{}"
	}
	return string(encoded)
}

func ListArtists(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB).WithContext(c.Request.Context())

	page, limit, err := helpers.ParsePagination(c)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid page or limit.")
		return
	}

	query := gormDB.Model(&models.Artist{})
	if c.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}
	if c.Query("featured") == "true" {
		query = query.Where("is_featured = ?", true)
	}
	if specialization := c.Query("specialization"); specialization != "" {
		query = query.Where("specialization = ?", specialization)
	}

	var totalCount int64
	query.Count(&totalCount)

	var artists []models.Artist
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("name ASC").Find(&artists).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving artists.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"artists":     artists,
		"total":       totalCount,
		"page":        page,
		"limit":       limit,
		"total_pages": (totalCount + int64(limit) - 1) / int64(limit),
	})
}

func GetArtist(c *gin.Context) {
	artistID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB).WithContext(c.Request.Context())

	var artist models.Artist
	if err := gormDB.Where("id = ?", artistID).First(&artist).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving artist.")
		return
	}

	c.JSON(http.StatusOK, artist)
}

func CreateArtist(c *gin.Context) {
	var req ArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB).WithContext(c.Request.Context())

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	artist := models.Artist{
		Name:           req.Name,
		Bio:            req.Bio,
		Specialization: req.Specialization,
		Email:          req.Email,
		Phone:          req.Phone,
		Website:        req.Website,
		SocialLinks:    req.socialLinksJSON(),
		ImageURL:       req.ImageURL,
		IsFeatured:     req.IsFeatured,
		IsActive:       isActive,
		SEOFields:      req.seoFields(),
	}

	if err := gormDB.Create(&artist).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create artist.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Artist created successfully.",
		"artist":  artist,
	})
}

func UpdateArtist(c *gin.Context) {
	artistID := c.Param("id")

	var req ArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB).WithContext(c.Request.Context())

	var artist models.Artist
	if err := gormDB.Where("id = ?", artistID).First(&artist).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding artist.")
		return
	}

	artist.Name = req.Name
	artist.Bio = req.Bio
	artist.Specialization = req.Specialization
	artist.Email = req.Email
	artist.Phone = req.Phone
	artist.Website = req.Website
	artist.SocialLinks = req.socialLinksJSON()
	artist.ImageURL = req.ImageURL
	artist.IsFeatured = req.IsFeatured
	if req.IsActive != nil {
		artist.IsActive = *req.IsActive
	}
	artist.SEOFields = req.seoFields()

	if err := gormDB.Save(&artist).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update artist.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Artist updated successfully.",
		"artist":  artist,
	})
}

func DeleteArtist(c *gin.Context) {
	artistID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB).WithContext(c.Request.Context())

	var artist models.Artist
	if err := gormDB.Where("id = ?", artistID).First(&artist).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding artist.")
		return
	}

	if err := gormDB.Delete(&artist).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete artist.")
		return
	}

	if err := helpers.DeleteFile(artist.ImageURL); err != nil {
		fmt.Printf("Error deleting artist image: %v\n", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Artist deleted successfully.",
	})
}
