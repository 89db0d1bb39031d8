package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Artist struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	Bio            string    `json:"bio"`
	Specialization string    `gorm:"index" json:"specialization"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Website        string    `json:"website"`
	// JSON-encoded map of platform name to profile URL.
	SocialLinks string `gorm:"type:jsonb;default:'{}'" json:"social_links"`
	ImageURL    string `json:"image_url"`
	IsFeatured  bool   `gorm:"not null;default:false" json:"is_featured"`
	IsActive    bool   `gorm:"not null;default:true" json:"is_active"`
	SEOFields   `gorm:"embedded"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (artist *Artist) BeforeCreate(tx *gorm.DB) (err error) {
	if artist.ID == uuid.Nil {
		artist.ID = uuid.New()
	}
	return
}
