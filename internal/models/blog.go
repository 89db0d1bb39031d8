package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Blog struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Content     string         `gorm:"type:text" json:"content"`
	Excerpt     string         `json:"excerpt"`
	Author      string         `json:"author"`
	Category    string         `gorm:"index" json:"category"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
	ImageURL    string         `json:"image_url"`
	IsPublished bool           `gorm:"not null;default:false" json:"is_published"`
	IsFeatured  bool           `gorm:"not null;default:false" json:"is_featured"`
	ReadTime    string         `json:"read_time"`
	SEOFields   `gorm:"embedded"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (blog *Blog) BeforeCreate(tx *gorm.DB) (err error) {
	if blog.ID == uuid.Nil {
		blog.ID = uuid.New()
	}
	return
}
