package pdf

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalakritam/kalakritam-api/internal/models"
)

func sampleTicket(number string) *models.Ticket {
	return &models.Ticket{
		TicketNumber:  number,
		CustomerName:  "Asha Rao",
		CustomerEmail: "asha@example.com",
		EventName:     "Pichwai Retrospective",
		Quantity:      2,
		AmountPaid:    decimal.NewFromInt(500),
		Venue:         "Kalakritam Gallery, Hyderabad",
		EventDate:     "2025-03-14",
		EventTime:     "6:00 PM",
		Status:        models.TicketStatusValid,
	}
}

func TestExportProducesPDF(t *testing.T) {
	exporter := NewExporter()

	document, err := exporter.Export(sampleTicket("TKT123456ABCDEF"), "https://kalakritam.in/verify-ticket/TKT123456ABCDEF")
	require.NoError(t, err)
	require.NotEmpty(t, document)
	assert.Equal(t, "%PDF", string(document[:4]))
}

func TestExportDebounceSameTicket(t *testing.T) {
	exporter := NewExporter()
	now := time.Now()
	exporter.now = func() time.Time { return now }

	ticket := sampleTicket("TKT654321ZZZZZZ")
	url := "https://kalakritam.in/verify-ticket/TKT654321ZZZZZZ"

	_, err := exporter.Export(ticket, url)
	require.NoError(t, err)

	_, err = exporter.Export(ticket, url)
	assert.ErrorIs(t, err, ErrExportInFlight)

	// Past the debounce window the same ticket may be exported again.
	now = now.Add(debounceWindow + time.Millisecond)
	_, err = exporter.Export(ticket, url)
	assert.NoError(t, err)
}

func TestExportDebounceDistinctTickets(t *testing.T) {
	exporter := NewExporter()
	now := time.Now()
	exporter.now = func() time.Time { return now }

	_, err := exporter.Export(sampleTicket("TKT111111AAAAAA"), "https://kalakritam.in/verify-ticket/TKT111111AAAAAA")
	require.NoError(t, err)

	_, err = exporter.Export(sampleTicket("TKT222222BBBBBB"), "https://kalakritam.in/verify-ticket/TKT222222BBBBBB")
	assert.NoError(t, err)
}
