package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TicketStatusValid     = "valid"
	TicketStatusUsed      = "used"
	TicketStatusCancelled = "cancelled"
)

// ValidTicketStatus reports whether s is an accepted ticket status. Admins
// may set any status directly (manual override), so no ordering is imposed.
func ValidTicketStatus(s string) bool {
	switch s {
	case TicketStatusValid, TicketStatusUsed, TicketStatusCancelled:
		return true
	}
	return false
}

type Ticket struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	TicketNumber  string          `gorm:"unique;not null" json:"ticket_number"`
	CustomerName  string          `gorm:"not null" json:"customer_name"`
	CustomerEmail string          `gorm:"not null" json:"customer_email"`
	CustomerPhone string          `json:"customer_phone"`
	EventName     string          `gorm:"not null" json:"event_name"`
	EventID       *uuid.UUID      `gorm:"type:uuid;index" json:"event_id"`
	Quantity      int             `gorm:"not null;default:1" json:"quantity"`
	AmountPaid    decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount_paid"`
	Venue         string          `json:"venue"`
	EventDate     string          `json:"event_date"`
	EventTime     string          `json:"event_time"`
	Status        string          `gorm:"not null;default:'valid';index" json:"status"`
	IsVerified    bool            `gorm:"not null;default:false" json:"is_verified"`
	QRCode        string          `gorm:"type:text" json:"qr_code"`
	VerifiedAt    *time.Time      `json:"verified_at"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (ticket *Ticket) BeforeCreate(tx *gorm.DB) (err error) {
	if ticket.ID == uuid.Nil {
		ticket.ID = uuid.New()
	}
	return
}
