package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Artwork struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Title       string          `gorm:"not null" json:"title"`
	Artist      string          `gorm:"not null" json:"artist"`
	Description string          `json:"description"`
	Medium      string          `json:"medium"`
	Dimensions  string          `json:"dimensions"`
	Year        string          `json:"year"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2)" json:"price"`
	Category    string          `gorm:"index" json:"category"`
	ImageURL    string          `json:"image_url"`
	IsAvailable bool            `gorm:"not null;default:true" json:"is_available"`
	IsFeatured  bool            `gorm:"not null;default:false" json:"is_featured"`
	SEOFields   `gorm:"embedded"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (artwork *Artwork) BeforeCreate(tx *gorm.DB) (err error) {
	if artwork.ID == uuid.Nil {
		artwork.ID = uuid.New()
	}
	return
}
