package services

import (
	"bytes"
	"database/sql"
	"fmt"
	"strings"

	"busbackend/internal/domain"
	"busbackend/internal/repositories"
	"busbackend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the e-ticket PDF for a booking.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	DB          *sql.DB
	RequestID   string
}

func (s DocsService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.DB}
}

func (s DocsService) GenerateETicket(bookingID int64) ([]byte, string, error) {
	data, found, err := s.bookings().TicketData(bookingID)
	if err != nil {
		return nil, "", domain.InternalError{Err: err}
	}
	if !found {
		return nil, "", domain.NotFoundError{Resource: "booking"}
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", fmt.Sprintf("booking_id=%d", bookingID))
	return buildETicketPDF(data)
}

func buildETicketPDF(d repositories.TicketData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	paid := "No"
	if d.IsPaid {
		paid = "Yes"
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger      : %s", safe(d.PassengerName, "-")),
		fmt.Sprintf("Phone          : %d", d.PassengerPhone),
		fmt.Sprintf("Seat           : %s", safe(d.SeatLabel, "-")),
		fmt.Sprintf("Route          : %s -> %s", safe(d.Source, "-"), safe(d.Destination, "-")),
		fmt.Sprintf("Departure      : %s %s", safe(d.Date, "-"), safe(d.Time, "-")),
		fmt.Sprintf("Vehicle        : %s", safe(d.NumberPlate, "-")),
		fmt.Sprintf("Amount         : %d", d.Amount),
		fmt.Sprintf("Paid           : %s (%s)", paid, safe(d.PaymentMethod, "-")),
		fmt.Sprintf("Booking Code   : #%d", d.BookingID),
		fmt.Sprintf("Ticket Code    : TCK-%d-%s", d.BookingID, safeFilenamePart(d.SeatLabel)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Note: this e-ticket covers one passenger on one seat. Present it at departure.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%d_%s.pdf", d.BookingID, safeFilenamePart(d.PassengerName+"_"+d.SeatLabel))
	return buf.Bytes(), filename, nil
}

func safe(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "X"
	}
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
