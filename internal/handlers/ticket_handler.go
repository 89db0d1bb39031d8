package handlers

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"github.com/kalakritam/kalakritam-api/internal/helpers"
	"github.com/kalakritam/kalakritam-api/internal/models"
	"github.com/kalakritam/kalakritam-api/internal/pdf"
)

const (
	qrFallbackService   = "https://api.qrserver.com/v1/create-qr-code/"
	ticketCreateRetries = 3
)

var ticketPDFExporter = pdf.NewExporter()

type TicketRequest struct {
	CustomerName  string          `json:"customer_name" binding:"required"`
	CustomerEmail string          `json:"customer_email" binding:"required,email"`
	CustomerPhone string          `json:"customer_phone"`
	EventName     string          `json:"event_name" binding:"required"`
	EventID       *uuid.UUID      `json:"event_id"`
	Quantity      int             `json:"quantity"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	Venue         string          `json:"venue"`
	EventDate     string          `json:"event_date"`
	EventTime     string          `json:"event_time"`
}

type TicketUpdateRequest struct {
	TicketRequest
	Status string `json:"status"`
}

func publicBaseURL() string {
	if base := os.Getenv("PUBLIC_BASE_URL"); base != "" {
		return strings.TrimRight(base, "/")
	}
	return "https://kalakritam.in"
}

func verificationURL(ticketNumber string) string {
	return fmt.Sprintf("%s/verify-ticket/%s", publicBaseURL(), ticketNumber)
}

// encodeTicketQR renders the verification URL as a PNG data URL. When local
// encoding fails it degrades to an external QR image service URL built from
// the same payload.
func encodeTicketQR(verifyURL string) string {
	png, err := qrcode.Encode(verifyURL, qrcode.Medium, 256)
	if err != nil {
		return qrFallbackService + "?size=256x256&data=" + url.QueryEscape(verifyURL)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}

// verificationMessage maps a ticket status to the message shown on the
// verification page.
func verificationMessage(status string) string {
	switch status {
	case models.TicketStatusValid:
		return "Ticket is valid and ready for entry."
	case models.TicketStatusUsed:
		return "Ticket has already been successfully verified."
	case models.TicketStatusCancelled:
		return "Ticket is cancelled and no longer valid."
	default:
		return "Ticket status could not be determined."
	}
}

// applyTicketStatus moves a ticket to a new status and keeps the
// verification fields in step: entering used stamps them, leaving used
// clears them.
func applyTicketStatus(ticket *models.Ticket, status string) {
	if status == "" || status == ticket.Status {
		return
	}
	ticket.Status = status
	if status == models.TicketStatusUsed {
		now := time.Now()
		ticket.IsVerified = true
		ticket.VerifiedAt = &now
	} else {
		ticket.IsVerified = false
		ticket.VerifiedAt = nil
	}
}

func CreateTicket(c *gin.Context) {
	var req TicketRequest
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

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	if req.EventID != nil {
		var event models.Event
		if err := gormDB.Where("id = ?", req.EventID).First(&event).Error; err == nil {
			if req.Venue == "" {
				req.Venue = event.Venue
			}
			if req.EventDate == "" {
				req.EventDate = event.StartTime.Format("2006-01-02")
			}
			if req.EventTime == "" {
				req.EventTime = event.StartTime.Format("3:04 PM")
			}
		}
	}

	ticket := models.Ticket{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		EventName:     req.EventName,
		EventID:       req.EventID,
		Quantity:      quantity,
		AmountPaid:    req.AmountPaid,
		Venue:         req.Venue,
		EventDate:     req.EventDate,
		EventTime:     req.EventTime,
		Status:        models.TicketStatusValid,
	}

	// Ticket numbers are issued here, not by the client. The unique
	// constraint closes the generator's collision window; colliding inserts
	// retry with a fresh number.
	var err error
	for attempt := 0; attempt < ticketCreateRetries; attempt++ {
		ticket.TicketNumber = helpers.GenerateTicketNumber()
		ticket.QRCode = encodeTicketQR(verificationURL(ticket.TicketNumber))

		err = gormDB.Create(&ticket).Error
		if err == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
		ticket.ID = uuid.Nil
	}
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create ticket.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Ticket created successfully.",
		"ticket":  ticket,
	})
}

func ListTickets(c *gin.Context) {
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

	query := gormDB.Model(&models.Ticket{})
	if status := c.Query("status"); status != "" {
		if !models.ValidTicketStatus(status) {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid ticket status.")
			return
		}
		query = query.Where("status = ?", status)
	}
	if eventID := c.Query("event_id"); eventID != "" {
		query = query.Where("event_id = ?", eventID)
	}

	var totalCount int64
	query.Count(&totalCount)

	var tickets []models.Ticket
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&tickets).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving tickets.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tickets":     tickets,
		"total":       totalCount,
		"page":        page,
		"limit":       limit,
		"total_pages": (totalCount + int64(limit) - 1) / int64(limit),
	})
}

func GetTicket(c *gin.Context) {
	ticketID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB).WithContext(c.Request.Context())

	var ticket models.Ticket
	if err := gormDB.Where("id = ?", ticketID).First(&ticket).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Ticket not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving ticket.")
		return
	}

	c.JSON(http.StatusOK, ticket)
}

func UpdateTicket(c *gin.Context) {
	ticketID := c.Param("id")

	var req TicketUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}
	if req.Status != "" && !models.ValidTicketStatus(req.Status) {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid ticket status.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB).WithContext(c.Request.Context())

	var ticket models.Ticket
	if err := gormDB.Where("id = ?", ticketID).First(&ticket).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Ticket not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding ticket.")
		return
	}

	ticket.CustomerName = req.CustomerName
	ticket.CustomerEmail = req.CustomerEmail
	ticket.CustomerPhone = req.CustomerPhone
	ticket.EventName = req.EventName
	ticket.EventID = req.EventID
	if req.Quantity > 0 {
		ticket.Quantity = req.Quantity
	}
	ticket.AmountPaid = req.AmountPaid
	ticket.Venue = req.Venue
	ticket.EventDate = req.EventDate
	ticket.EventTime = req.EventTime

	applyTicketStatus(&ticket, req.Status)

	if err := gormDB.Save(&ticket).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update ticket.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ticket updated successfully.",
		"ticket":  ticket,
	})
}

func DeleteTicket(c *gin.Context) {
	ticketID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB).WithContext(c.Request.Context())

	result := gormDB.Where("id = ?", ticketID).Delete(&models.Ticket{})
	if result.Error != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete ticket.")
		return
	}
	if result.RowsAffected == 0 {
		helpers.RespondWithError(c, http.StatusNotFound, "Ticket not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ticket deleted successfully.",
	})
}

// VerifyTicket is the unauthenticated lookup behind the QR code on every
// ticket. It reports status without mutating it; marking a ticket used is an
// explicit admin action.
func VerifyTicket(c *gin.Context) {
	ticketNumber := c.Param("number")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB).WithContext(c.Request.Context())

	var ticket models.Ticket
	if err := gormDB.Where("ticket_number = ?", ticketNumber).First(&ticket).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Ticket not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error verifying ticket.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"is_valid": ticket.Status == models.TicketStatusValid,
		"ticket":   ticket,
		"message":  verificationMessage(ticket.Status),
	})
}

// TicketQR serves the ticket's QR code as a PNG, re-encoding from the
// verification URL rather than unpacking the stored data URL.
func TicketQR(c *gin.Context) {
	ticketID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB).WithContext(c.Request.Context())

	var ticket models.Ticket
	if err := gormDB.Where("id = ?", ticketID).First(&ticket).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Ticket not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving ticket.")
		return
	}

	png, err := qrcode.Encode(verificationURL(ticket.TicketNumber), qrcode.Medium, 256)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate QR code.")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// TicketPDF streams the two-face printable ticket. Rapid repeated requests
// for the same ticket are debounced by the exporter.
func TicketPDF(c *gin.Context) {
	ticketID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB).WithContext(c.Request.Context())

	var ticket models.Ticket
	if err := gormDB.Where("id = ?", ticketID).First(&ticket).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Ticket not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving ticket.")
		return
	}

	document, err := ticketPDFExporter.Export(&ticket, verificationURL(ticket.TicketNumber))
	if err != nil {
		if errors.Is(err, pdf.ErrExportInFlight) {
			helpers.RespondWithError(c, http.StatusTooManyRequests, "A download for this ticket is already in progress.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate ticket PDF.")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", ticket.TicketNumber))
	c.Data(http.StatusOK, "application/pdf", document)
}
