package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	InquiryStatusUnread   = "unread"
	InquiryStatusRead     = "read"
	InquiryStatusReplied  = "replied"
	InquiryStatusArchived = "archived"
)

// ValidInquiryStatus reports whether s is one of the accepted inquiry
// statuses. Any status may move to any other; there is no transition matrix.
func ValidInquiryStatus(s string) bool {
	switch s {
	case InquiryStatusUnread, InquiryStatusRead, InquiryStatusReplied, InquiryStatusArchived:
		return true
	}
	return false
}

type ContactInquiry struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Email       string         `gorm:"not null" json:"email"`
	Subject     string         `json:"subject"`
	Message     string         `gorm:"type:text;not null" json:"message"`
	Phone       string         `json:"phone"`
	InquiryType string         `json:"inquiry_type"`
	Status      string         `gorm:"not null;default:'unread';index" json:"status"`
	IsRead      bool           `gorm:"not null;default:false" json:"is_read"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (inquiry *ContactInquiry) BeforeCreate(tx *gorm.DB) (err error) {
	if inquiry.ID == uuid.Nil {
		inquiry.ID = uuid.New()
	}
	return
}

// BeforeSave keeps the derived is_read flag consistent with status.
func (inquiry *ContactInquiry) BeforeSave(tx *gorm.DB) (err error) {
	inquiry.IsRead = inquiry.Status != InquiryStatusUnread
	return
}
