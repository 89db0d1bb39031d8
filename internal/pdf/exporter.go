// Package pdf renders printable two-face ticket documents.
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/skip2/go-qrcode"

	"github.com/kalakritam/kalakritam-api/internal/models"
)

var (
	// ErrExportInFlight is returned when an export for the same ticket was
	// started within the debounce window.
	ErrExportInFlight = errors.New("ticket export already in progress")

	ErrQRGenerate     = errors.New("failed to generate QR code for ticket")
	ErrZeroDimensions = errors.New("ticket face has zero dimensions")
)

// Face and page geometry in millimeters. A face pair is laid side by side on
// one page when the combined width fits maxPageWidth, otherwise each face
// gets its own page. Pages are sized exactly to content, no margins.
const (
	faceWidth    = 180.0
	faceHeight   = 80.0
	maxPageWidth = 297.0
	qrSize       = 50.0
)

const debounceWindow = time.Second

// Exporter produces ticket PDFs and guards against duplicate concurrent
// downloads of the same ticket.
type Exporter struct {
	mu       sync.Mutex
	inFlight map[string]time.Time

	now func() time.Time
}

func NewExporter() *Exporter {
	return &Exporter{
		inFlight: make(map[string]time.Time),
		now:      time.Now,
	}
}

// reserve records an export start for the ticket number, rejecting a second
// start inside the debounce window.
func (e *Exporter) reserve(ticketNumber string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	if started, ok := e.inFlight[ticketNumber]; ok && now.Sub(started) < debounceWindow {
		return ErrExportInFlight
	}
	e.inFlight[ticketNumber] = now

	for number, started := range e.inFlight {
		if now.Sub(started) >= debounceWindow {
			delete(e.inFlight, number)
		}
	}
	return nil
}

// Export renders the ticket's front and back faces into a PDF document. The
// QR code is re-derived from the verification URL rather than decoded from
// the stored data URL.
func (e *Exporter) Export(ticket *models.Ticket, verifyURL string) ([]byte, error) {
	if err := e.reserve(ticket.TicketNumber); err != nil {
		return nil, err
	}

	if faceWidth <= 0 || faceHeight <= 0 {
		return nil, ErrZeroDimensions
	}

	qrPNG, err := qrcode.Encode(verifyURL, qrcode.Medium, 512)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQRGenerate, err)
	}

	sideBySide := faceWidth*2 <= maxPageWidth
	pageWidth := faceWidth
	if sideBySide {
		pageWidth = faceWidth * 2
	}

	// Orientation is "P" so fpdf takes the custom size as given instead of
	// swapping width and height.
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: pageWidth, Ht: faceHeight},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)

	doc.RegisterImageOptionsReader("ticket-qr", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	doc.AddPage()
	e.drawFront(doc, ticket, 0)
	if sideBySide {
		e.drawBack(doc, ticket, verifyURL, faceWidth)
	} else {
		doc.AddPage()
		e.drawBack(doc, ticket, verifyURL, 0)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering ticket %s: %w", ticket.TicketNumber, err)
	}
	return buf.Bytes(), nil
}

func (e *Exporter) drawFront(doc *fpdf.Fpdf, ticket *models.Ticket, offsetX float64) {
	doc.SetDrawColor(120, 53, 15)
	doc.SetLineWidth(0.6)
	doc.Rect(offsetX+2, 2, faceWidth-4, faceHeight-4, "D")

	doc.SetTextColor(120, 53, 15)
	doc.SetFont("Helvetica", "B", 18)
	doc.Text(offsetX+8, 14, "KALAKRITAM")
	doc.SetFont("Helvetica", "", 9)
	doc.Text(offsetX+8, 19, "Art Gallery & Workshops")

	doc.SetTextColor(30, 30, 30)
	doc.SetFont("Helvetica", "B", 13)
	doc.Text(offsetX+8, 30, ticket.EventName)

	doc.SetFont("Helvetica", "", 10)
	line := 38.0
	for _, row := range [][2]string{
		{"Name", ticket.CustomerName},
		{"Tickets", fmt.Sprintf("%d", ticket.Quantity)},
		{"Amount", ticket.AmountPaid.StringFixed(2)},
		{"Venue", ticket.Venue},
		{"Date", ticket.EventDate},
		{"Time", ticket.EventTime},
	} {
		if row[1] == "" {
			continue
		}
		doc.SetFont("Helvetica", "B", 10)
		doc.Text(offsetX+8, line, row[0]+":")
		doc.SetFont("Helvetica", "", 10)
		doc.Text(offsetX+30, line, row[1])
		line += 6
	}

	qrX := offsetX + faceWidth - qrSize - 8
	qrY := (faceHeight - qrSize) / 2
	doc.ImageOptions("ticket-qr", qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	doc.SetFont("Helvetica", "B", 10)
	doc.Text(offsetX+8, faceHeight-8, ticket.TicketNumber)
}

func (e *Exporter) drawBack(doc *fpdf.Fpdf, ticket *models.Ticket, verifyURL string, offsetX float64) {
	doc.SetDrawColor(120, 53, 15)
	doc.SetLineWidth(0.6)
	doc.Rect(offsetX+2, 2, faceWidth-4, faceHeight-4, "D")

	doc.SetTextColor(120, 53, 15)
	doc.SetFont("Helvetica", "B", 12)
	doc.Text(offsetX+8, 14, "Ticket Terms")

	doc.SetTextColor(30, 30, 30)
	doc.SetFont("Helvetica", "", 9)
	terms := []string{
		"Present this ticket with the QR code at the entrance.",
		"Each ticket admits the number of guests printed on the front.",
		"Tickets are non-transferable once verified at the venue.",
		"Cancelled tickets are not valid for entry or refund at the gate.",
	}
	line := 24.0
	for _, term := range terms {
		doc.Text(offsetX+8, line, "- "+term)
		line += 6
	}

	doc.SetFont("Helvetica", "", 8)
	doc.Text(offsetX+8, faceHeight-14, "Verify at:")
	doc.Text(offsetX+8, faceHeight-9, verifyURL)
}
