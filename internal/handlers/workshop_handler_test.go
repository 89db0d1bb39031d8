package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkshopRequestValidate(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	valid := WorkshopRequest{StartTime: start, EndTime: start.Add(2 * time.Hour), MaxParticipants: 20, CurrentParticipants: 5}
	assert.Empty(t, valid.validate())

	full := WorkshopRequest{StartTime: start, EndTime: start.Add(2 * time.Hour), MaxParticipants: 20, CurrentParticipants: 20}
	assert.Empty(t, full.validate())

	overbooked := WorkshopRequest{StartTime: start, EndTime: start.Add(2 * time.Hour), MaxParticipants: 20, CurrentParticipants: 21}
	assert.Contains(t, overbooked.validate(), "exceed")

	backwards := WorkshopRequest{StartTime: start, EndTime: start.Add(-time.Hour)}
	assert.Contains(t, backwards.validate(), "before start")

	negative := WorkshopRequest{StartTime: start, EndTime: start, CurrentParticipants: -1}
	assert.Contains(t, negative.validate(), "negative")

	// Zero max means no cap.
	uncapped := WorkshopRequest{StartTime: start, EndTime: start.Add(time.Hour), MaxParticipants: 0, CurrentParticipants: 50}
	assert.Empty(t, uncapped.validate())
}

func TestEventRequestValidate(t *testing.T) {
	start := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

	overbooked := EventRequest{StartTime: start, EndTime: start.Add(3 * time.Hour), MaxAttendees: 100, CurrentAttendees: 120}
	assert.Contains(t, overbooked.validate(), "exceed")

	valid := EventRequest{StartTime: start, EndTime: start.Add(3 * time.Hour), MaxAttendees: 100, CurrentAttendees: 99}
	assert.Empty(t, valid.validate())
}

func TestBlogRequestReadTime(t *testing.T) {
	explicit := BlogRequest{ReadTime: "7 min read"}
	assert.Equal(t, "7 min read", explicit.readTime())

	short := BlogRequest{Content: "a few words only"}
	assert.Equal(t, "1 min read", short.readTime())
}
