package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/kalakritam/kalakritam-api/internal/helpers"
	"github.com/kalakritam/kalakritam-api/internal/models"
)

type ArtworkRequest struct {
	Title       string            `json:"title" binding:"required"`
	Artist      string            `json:"artist" binding:"required"`
	Description string            `json:"description"`
	Medium      string            `json:"medium"`
	Dimensions  string            `json:"dimensions"`
	Year        string            `json:"year"`
	Price       decimal.Decimal   `json:"price"`
	Category    string            `json:"category"`
	ImageURL    string            `json:"image_url"`
	IsAvailable *bool             `json:"is_available"`
	IsFeatured  bool              `json:"is_featured"`
	SEO         *models.SEOFields `json:"seo"`
}

func (req *ArtworkRequest) seoFields() models.SEOFields {
	if req.SEO == nil {
		return helpers.GenerateSEOFields(helpers.SEOTypeArtwork, helpers.SEOInput{
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Category,
			Image:       req.ImageURL,
		})
	}
	seo := *req.SEO
	if seo.Slug == "" {
		seo.Slug = helpers.GenerateSlug(req.Title)
	}
	return seo
}

func ListArtworks(c *gin.Context) {
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

	query := gormDB.Model(&models.Artwork{})
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if c.Query("featured") == "true" {
		query = query.Where("is_featured = ?", true)
	}
	if c.Query("available") == "true" {
		query = query.Where("is_available = ?", true)
	}

	var totalCount int64
	query.Count(&totalCount)

	var artworks []models.Artwork
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&artworks).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving artworks.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"artworks":    artworks,
		"total":       totalCount,
		"page":        page,
		"limit":       limit,
		"total_pages": (totalCount + int64(limit) - 1) / int64(limit),
	})
}

func GetArtwork(c *gin.Context) {
	artworkID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB).WithContext(c.Request.Context())

	var artwork models.Artwork
	if err := gormDB.Where("id = ?", artworkID).First(&artwork).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Artwork not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving artwork.")
		return
	}

	c.JSON(http.StatusOK, artwork)
}

func CreateArtwork(c *gin.Context) {
	var req ArtworkRequest
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

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	artwork := models.Artwork{
		Title:       req.Title,
		Artist:      req.Artist,
		Description: req.Description,
		Medium:      req.Medium,
		Dimensions:  req.Dimensions,
		Year:        req.Year,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		IsAvailable: isAvailable,
		IsFeatured:  req.IsFeatured,
		SEOFields:   req.seoFields(),
	}

	if err := gormDB.Create(&artwork).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create artwork.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Artwork created successfully.",
		"artwork": artwork,
	})
}

func UpdateArtwork(c *gin.Context) {
	artworkID := c.Param("id")

	var req ArtworkRequest
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

	var artwork models.Artwork
	if err := gormDB.Where("id = ?", artworkID).First(&artwork).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Artwork not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding artwork.")
		return
	}

	artwork.Title = req.Title
	artwork.Artist = req.Artist
	artwork.Description = req.Description
	artwork.Medium = req.Medium
	artwork.Dimensions = req.Dimensions
	artwork.Year = req.Year
	artwork.Price = req.Price
	artwork.Category = req.Category
	artwork.ImageURL = req.ImageURL
	if req.IsAvailable != nil {
		artwork.IsAvailable = *req.IsAvailable
	}
	artwork.IsFeatured = req.IsFeatured
	artwork.SEOFields = req.seoFields()

	if err := gormDB.Save(&artwork).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update artwork.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Artwork updated successfully.",
		"artwork": artwork,
	})
}

func DeleteArtwork(c *gin.Context) {
	artworkID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB).WithContext(c.Request.Context())

	var artwork models.Artwork
	if err := gormDB.Where("id = ?", artworkID).First(&artwork).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Artwork not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding artwork.")
		return
	}

	if err := gormDB.Delete(&artwork).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete artwork.")
		return
	}

	if err := helpers.DeleteFile(artwork.ImageURL); err != nil {
		fmt.Printf("Error deleting artwork image: %v\n", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Artwork deleted successfully.",
	})
}
