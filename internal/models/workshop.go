package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Workshop struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Title               string          `gorm:"not null" json:"title"`
	Instructor          string          `gorm:"not null" json:"instructor"`
	Description         string          `json:"description"`
	StartTime           time.Time       `gorm:"not null" json:"start_time"`
	EndTime             time.Time       `gorm:"not null" json:"end_time"`
	Duration            string          `json:"duration"`
	Price               decimal.Decimal `gorm:"type:decimal(12,2)" json:"price"`
	MaxParticipants     int             `gorm:"not null;default:0" json:"max_participants"`
	CurrentParticipants int             `gorm:"not null;default:0" json:"current_participants"`
	ImageURL            string          `json:"image_url"`
	IsFeatured          bool            `gorm:"not null;default:false" json:"is_featured"`
	IsActive            bool            `gorm:"not null;default:true" json:"is_active"`
	SEOFields           `gorm:"embedded"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

func (workshop *Workshop) BeforeCreate(tx *gorm.DB) (err error) {
	if workshop.ID == uuid.Nil {
		workshop.ID = uuid.New()
	}
	return
}
