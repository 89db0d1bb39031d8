package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Event struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Title            string          `gorm:"not null" json:"title"`
	Description      string          `json:"description"`
	StartTime        time.Time       `gorm:"not null" json:"start_time"`
	EndTime          time.Time       `gorm:"not null" json:"end_time"`
	Venue            string          `json:"venue"`
	TicketPrice      decimal.Decimal `gorm:"type:decimal(12,2)" json:"ticket_price"`
	MaxAttendees     int             `gorm:"not null;default:0" json:"max_attendees"`
	CurrentAttendees int             `gorm:"not null;default:0" json:"current_attendees"`
	ImageURL         string          `json:"image_url"`
	IsFeatured       bool            `gorm:"not null;default:false" json:"is_featured"`
	IsActive         bool            `gorm:"not null;default:true" json:"is_active"`
	SEOFields        `gorm:"embedded"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (event *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return
}
