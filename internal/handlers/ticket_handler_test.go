package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/kalakritam/kalakritam-api/internal/models"
)

func TestVerificationMessage(t *testing.T) {
	cases := map[string]string{
		models.TicketStatusValid:     "Ticket is valid and ready for entry.",
		models.TicketStatusUsed:      "Ticket has already been successfully verified.",
		models.TicketStatusCancelled: "Ticket is cancelled and no longer valid.",
		"":                           "Ticket status could not be determined.",
		"refunded":                   "Ticket status could not be determined.",
	}
	for status, want := range cases {
		assert.Equal(t, want, verificationMessage(status), "status %q", status)
	}
}

func TestVerificationURL(t *testing.T) {
	t.Setenv("PUBLIC_BASE_URL", "https://staging.kalakritam.in/")

	url := verificationURL("TKT123456ABCDEF")
	assert.Equal(t, "https://staging.kalakritam.in/verify-ticket/TKT123456ABCDEF", url)
}

func TestVerificationURLDefaultBase(t *testing.T) {
	t.Setenv("PUBLIC_BASE_URL", "")

	url := verificationURL("TKT123456ABCDEF")
	assert.Equal(t, "https://kalakritam.in/verify-ticket/TKT123456ABCDEF", url)
}

func TestEncodeTicketQRDataURL(t *testing.T) {
	encoded := encodeTicketQR("https://kalakritam.in/verify-ticket/TKT123456ABCDEF")
	assert.True(t, strings.HasPrefix(encoded, "data:image/png;base64,"))
}

func TestCreateTicketValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/tickets", CreateTicket)

	// Missing fields and a malformed email both fail before any database
	// access, with the same generic message.
	for _, body := range []string{
		`{"customer_email":"asha@example.com"}`,
		`{"customer_name":"Asha","customer_email":"not-an-email","event_name":"Opening"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/tickets", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Contains(t, w.Body.String(), "Invalid input", body)
	}
}

func TestApplyTicketStatus(t *testing.T) {
	ticket := models.Ticket{Status: models.TicketStatusValid}

	applyTicketStatus(&ticket, models.TicketStatusUsed)
	assert.Equal(t, models.TicketStatusUsed, ticket.Status)
	assert.True(t, ticket.IsVerified)
	assert.NotNil(t, ticket.VerifiedAt)

	// Reverting an accidental scan clears the verification stamp.
	applyTicketStatus(&ticket, models.TicketStatusValid)
	assert.Equal(t, models.TicketStatusValid, ticket.Status)
	assert.False(t, ticket.IsVerified)
	assert.Nil(t, ticket.VerifiedAt)

	// No-op on empty or unchanged status.
	stamped := time.Now()
	ticket = models.Ticket{Status: models.TicketStatusUsed, IsVerified: true, VerifiedAt: &stamped}
	applyTicketStatus(&ticket, "")
	applyTicketStatus(&ticket, models.TicketStatusUsed)
	assert.True(t, ticket.IsVerified)
	assert.NotNil(t, ticket.VerifiedAt)
}

func TestUpdateTicketRejectsUnknownStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/tickets/:id", UpdateTicket)

	body := `{"customer_name":"Asha","customer_email":"asha@example.com","event_name":"Opening","status":"refunded"}`
	req := httptest.NewRequest(http.MethodPut, "/tickets/abc", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid ticket status")
}
