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

type EventRequest struct {
	Title            string            `json:"title" binding:"required"`
	Description      string            `json:"description"`
	StartTime        time.Time         `json:"start_time" binding:"required"`
	EndTime          time.Time         `json:"end_time" binding:"required"`
	Venue            string            `json:"venue"`
	TicketPrice      decimal.Decimal   `json:"ticket_price"`
	MaxAttendees     int               `json:"max_attendees"`
	CurrentAttendees int               `json:"current_attendees"`
	ImageURL         string            `json:"image_url"`
	IsFeatured       bool              `json:"is_featured"`
	IsActive         *bool             `json:"is_active"`
	SEO              *models.SEOFields `json:"seo"`
}

func (req *EventRequest) seoFields() models.SEOFields {
	if req.SEO == nil {
		return helpers.GenerateSEOFields(helpers.SEOTypeEvent, helpers.SEOInput{
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

func (req *EventRequest) validate() string {
	if req.EndTime.Before(req.StartTime) {
		return "End time must not be before start time."
	}
	if req.MaxAttendees < 0 || req.CurrentAttendees < 0 {
		return "Attendee counts must not be negative."
	}
	if req.MaxAttendees > 0 && req.CurrentAttendees > req.MaxAttendees {
		return "Current attendees must not exceed max attendees."
	}
	return ""
}

func ListEvents(c *gin.Context) {
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

	query := gormDB.Model(&models.Event{})
	if c.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}
	if c.Query("featured") == "true" {
		query = query.Where("is_featured = ?", true)
	}

	var totalCount int64
	query.Count(&totalCount)

	var events []models.Event
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("start_time ASC").Find(&events).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events":      events,
		"total":       totalCount,
		"page":        page,
		"limit":       limit,
		"total_pages": (totalCount + int64(limit) - 1) / int64(limit),
	})
}

func GetEvent(c *gin.Context) {
	eventID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB).WithContext(c.Request.Context())

	var event models.Event
	if err := gormDB.Where("id = ?", eventID).First(&event).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}

	c.JSON(http.StatusOK, event)
}

func CreateEvent(c *gin.Context) {
	var req EventRequest
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

	event := models.Event{
		Title:            req.Title,
		Description:      req.Description,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		Venue:            req.Venue,
		TicketPrice:      req.TicketPrice,
		MaxAttendees:     req.MaxAttendees,
		CurrentAttendees: req.CurrentAttendees,
		ImageURL:         req.ImageURL,
		IsFeatured:       req.IsFeatured,
		IsActive:         isActive,
		SEOFields:        req.seoFields(),
	}

	if err := gormDB.Create(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create event.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Event created successfully.",
		"event":   event,
	})
}

func UpdateEvent(c *gin.Context) {
	eventID := c.Param("id")

	var req EventRequest
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

	var event models.Event
	if err := gormDB.Where("id = ?", eventID).First(&event).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding event.")
		return
	}

	event.Title = req.Title
	event.Description = req.Description
	event.StartTime = req.StartTime
	event.EndTime = req.EndTime
	event.Venue = req.Venue
	event.TicketPrice = req.TicketPrice
	event.MaxAttendees = req.MaxAttendees
	event.CurrentAttendees = req.CurrentAttendees
	event.ImageURL = req.ImageURL
	event.IsFeatured = req.IsFeatured
	if req.IsActive != nil {
		event.IsActive = *req.IsActive
	}
	event.SEOFields = req.seoFields()

	if err := gormDB.Save(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event updated successfully.",
		"event":   event,
	})
}

// DeleteEvent soft-deletes an event. Tickets referencing it are left intact;
// they carry their own copy of the event details.
func DeleteEvent(c *gin.Context) {
	eventID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB).WithContext(c.Request.Context())

	var event models.Event
	if err := gormDB.Where("id = ?", eventID).First(&event).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding event.")
		return
	}

	if err := gormDB.Delete(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete event.")
		return
	}

	if err := helpers.DeleteFile(event.ImageURL); err != nil {
		fmt.Printf("Error deleting event image: %v\n", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event deleted successfully.",
	})
}
