package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kalakritam/kalakritam-api/internal/helpers"
	"github.com/kalakritam/kalakritam-api/internal/models"
)

type ContactRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Subject     string `json:"subject"`
	Message     string `json:"message" binding:"required"`
	Phone       string `json:"phone"`
	InquiryType string `json:"inquiry_type"`
}

type InquiryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SubmitContact receives a public contact-form submission. New inquiries
// always start unread.
func SubmitContact(c *gin.Context) {
	var req ContactRequest
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

	inquiry := models.ContactInquiry{
		Name:        req.Name,
		Email:       req.Email,
		Subject:     req.Subject,
		Message:     req.Message,
		Phone:       req.Phone,
		InquiryType: req.InquiryType,
		Status:      models.InquiryStatusUnread,
	}

	if err := gormDB.Create(&inquiry).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to submit inquiry.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Inquiry submitted successfully.",
		"inquiry_id": inquiry.ID,
	})
}

func ListInquiries(c *gin.Context) {
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

	query := gormDB.Model(&models.ContactInquiry{})
	if status := c.Query("status"); status != "" {
		if !models.ValidInquiryStatus(status) {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid inquiry status.")
			return
		}
		query = query.Where("status = ?", status)
	}

	var totalCount int64
	query.Count(&totalCount)

	var inquiries []models.ContactInquiry
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&inquiries).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving inquiries.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"inquiries":   inquiries,
		"total":       totalCount,
		"page":        page,
		"limit":       limit,
		"total_pages": (totalCount + int64(limit) - 1) / int64(limit),
	})
}

// UpdateInquiryStatus sets an inquiry's status. Any status may be set from
// any other; the set of values is validated, the transition is not.
func UpdateInquiryStatus(c *gin.Context) {
	inquiryID := c.Param("id")

	var req InquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}
	if !models.ValidInquiryStatus(req.Status) {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid inquiry status.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB).WithContext(c.Request.Context())

	var inquiry models.ContactInquiry
	if err := gormDB.Where("id = ?", inquiryID).First(&inquiry).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Inquiry not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding inquiry.")
		return
	}

	inquiry.Status = req.Status

	if err := gormDB.Save(&inquiry).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update inquiry status.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Inquiry status updated successfully.",
		"inquiry": inquiry,
	})
}

func DeleteInquiry(c *gin.Context) {
	inquiryID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB).WithContext(c.Request.Context())

	result := gormDB.Where("id = ?", inquiryID).Delete(&models.ContactInquiry{})
	if result.Error != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete inquiry.")
		return
	}
	if result.RowsAffected == 0 {
		helpers.RespondWithError(c, http.StatusNotFound, "Inquiry not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Inquiry deleted successfully.",
	})
}
