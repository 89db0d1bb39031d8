package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidInquiryStatus(t *testing.T) {
	for _, status := range []string{"unread", "read", "replied", "archived"} {
		assert.True(t, ValidInquiryStatus(status), status)
	}
	for _, status := range []string{"", "deleted", "Read", "UNREAD"} {
		assert.False(t, ValidInquiryStatus(status), status)
	}
}

func TestValidTicketStatus(t *testing.T) {
	for _, status := range []string{"valid", "used", "cancelled"} {
		assert.True(t, ValidTicketStatus(status), status)
	}
	for _, status := range []string{"", "expired", "Valid"} {
		assert.False(t, ValidTicketStatus(status), status)
	}
}

func TestInquiryIsReadDerivation(t *testing.T) {
	inquiry := ContactInquiry{Status: InquiryStatusUnread}
	assert.NoError(t, inquiry.BeforeSave(nil))
	assert.False(t, inquiry.IsRead)

	inquiry.Status = InquiryStatusRead
	assert.NoError(t, inquiry.BeforeSave(nil))
	assert.True(t, inquiry.IsRead)

	inquiry.Status = InquiryStatusArchived
	assert.NoError(t, inquiry.BeforeSave(nil))
	assert.True(t, inquiry.IsRead)
}
