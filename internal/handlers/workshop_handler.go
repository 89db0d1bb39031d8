package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/kalakritam/kalakritam-api/internal/helpers"
	"github.com/kalakritam/kalakritam-api/internal/models"
)

type WorkshopRequest struct {
	Title               string            `json:"title" binding:"required"`
	Instructor          string            `json:"instructor" binding:"required"`
	Description         string            `json:"description"`
	StartTime           time.Time         `json:"start_time" binding:"required"`
	EndTime             time.Time         `json:"end_time" binding:"required"`
	Duration            string            `json:"duration"`
	Price               decimal.Decimal   `json:"price"`
	MaxParticipants     int               `json:"max_participants"`
	CurrentParticipants int               `json:"current_participants"`
	ImageURL            string            `json:"image_url"`
	IsFeatured          bool              `json:"is_featured"`
	IsActive            *bool             `json:"is_active"`
	SEO                 *models.SEOFields `json:"seo"`
}

func (req *WorkshopRequest) seoFields() models.SEOFields {
	if req.SEO == nil {
		return helpers.GenerateSEOFields(helpers.SEOTypeWorkshop, helpers.SEOInput{
			Title:       req.Title,
			Description: req.Description,
			Image:       req.ImageURL,
		})
	}
	seo := *req.SEO
	if seo.Slug == "" {
		seo.Slug = helpers.GenerateSlug(req.Title)
	}
	return seo
}

func (req *WorkshopRequest) validate() string {
	if req.EndTime.Before(req.StartTime) {
		return "End time must not be before start time."
	}
	if req.MaxParticipants < 0 || req.CurrentParticipants < 0 {
		return "Participant counts must not be negative."
	}
	if req.MaxParticipants > 0 && req.CurrentParticipants > req.MaxParticipants {
		return "Current participants must not exceed max participants."
	}
	return ""
}

func ListWorkshops(c *gin.Context) {
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

	query := gormDB.Model(&models.Workshop{})
	if c.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}
	if c.Query("featured") == "true" {
		query = query.Where("is_featured = ?", true)
	}

	var totalCount int64
	query.Count(&totalCount)

	var workshops []models.Workshop
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("start_time ASC").Find(&workshops).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving workshops.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"workshops":   workshops,
		"total":       totalCount,
		"page":        page,
		"limit":       limit,
		"total_pages": (totalCount + int64(limit) - 1) / int64(limit),
	})
}

func GetWorkshop(c *gin.Context) {
	workshopID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB).WithContext(c.Request.Context())

	var workshop models.Workshop
	if err := gormDB.Where("id = ?", workshopID).First(&workshop).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Workshop not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving workshop.")
		return
	}

	c.JSON(http.StatusOK, workshop)
}

func CreateWorkshop(c *gin.Context) {
	var req WorkshopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}
	if msg := req.validate(); msg != "" {
		helpers.RespondWithError(c, http.StatusBadRequest, msg)
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

	workshop := models.Workshop{
		Title:               req.Title,
		Instructor:          req.Instructor,
		Description:         req.Description,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		Duration:            req.Duration,
		Price:               req.Price,
		MaxParticipants:     req.MaxParticipants,
		CurrentParticipants: req.CurrentParticipants,
		ImageURL:            req.ImageURL,
		IsFeatured:          req.IsFeatured,
		IsActive:            isActive,
		SEOFields:           req.seoFields(),
	}

	if err := gormDB.Create(&workshop).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create workshop.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Workshop created successfully.",
		"workshop": workshop,
	})
}

func UpdateWorkshop(c *gin.Context) {
	workshopID := c.Param("id")

	var req WorkshopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}
	if msg := req.validate(); msg != "" {
		helpers.RespondWithError(c, http.StatusBadRequest, msg)
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB).WithContext(c.Request.Context())

	var workshop models.Workshop
	if err := gormDB.Where("id = ?", workshopID).First(&workshop).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Workshop not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding workshop.")
		return
	}

	workshop.Title = req.Title
	workshop.Instructor = req.Instructor
	workshop.Description = req.Description
	workshop.StartTime = req.StartTime
	workshop.EndTime = req.EndTime
	workshop.Duration = req.Duration
	workshop.Price = req.Price
	workshop.MaxParticipants = req.MaxParticipants
	workshop.CurrentParticipants = req.CurrentParticipants
	workshop.ImageURL = req.ImageURL
	workshop.IsFeatured = req.IsFeatured
	if req.IsActive != nil {
		workshop.IsActive = *req.IsActive
	}
	workshop.SEOFields = req.seoFields()

	if err := gormDB.Save(&workshop).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update workshop.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Workshop updated successfully.",
		"workshop": workshop,
	})
}

func DeleteWorkshop(c *gin.Context) {
	workshopID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB).WithContext(c.Request.Context())

	var workshop models.Workshop
	if err := gormDB.Where("id = ?", workshopID).First(&workshop).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Workshop not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding workshop.")
		return
	}

	if err := gormDB.Delete(&workshop).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete workshop.")
		return
	}

	if err := helpers.DeleteFile(workshop.ImageURL); err != nil {
		fmt.Printf("Error deleting workshop image: %v\n", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Workshop deleted successfully.",
	})
}
