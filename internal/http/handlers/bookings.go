package handlers

import (
	"net/http"
	"time"

	"busbackend/internal/cache"
	"busbackend/internal/http/middleware"
	"busbackend/internal/services"

	"github.com/gin-gonic/gin"
)

var seatMaps *cache.SeatMapCache

// SetSeatMapCache wires the optional redis seat-map cache; called once at
// router setup. A nil cache keeps everything working off the database.
func SetSeatMapCache(c *cache.SeatMapCache) {
	seatMaps = c
}

type bookingPayload struct {
	Trip           int64     `json:"trip"`
	Schedule       int64     `json:"schedule"`
	Seat           string    `json:"seat"`
	BookedBy       string    `json:"bookedBy"`
	PassengerName  string    `json:"passengerName"`
	PassengerPhone int64     `json:"passengerPhone"`
	Amount         int64     `json:"amount"`
	IsPaid         bool      `json:"isPaid"`
	PaymentMethod  string    `json:"paymentMethod"`
	BookedOn       time.Time `json:"bookedOn"`
}

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		SeatMaps:  seatMaps,
		RequestID: middleware.GetRequestID(c),
	}
}

// POST /api/bookings
// The response key "bookedingId" is a historical misspelling that clients
// depend on; do not correct it.
func CreateBooking(c *gin.Context) {
	var req bookingPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Trip <= 0 || req.Schedule <= 0 || req.Seat == "" {
		RespondFormatError(c, "trip, schedule and seat are required", nil)
		return
	}

	id, err := bookingService(c).Book(services.BookingInput{
		TripID:         req.Trip,
		ScheduleID:     req.Schedule,
		SeatLabel:      req.Seat,
		BookedBy:       req.BookedBy,
		PassengerName:  req.PassengerName,
		PassengerPhone: req.PassengerPhone,
		Amount:         req.Amount,
		IsPaid:         req.IsPaid,
		PaymentMethod:  req.PaymentMethod,
		BookedOn:       req.BookedOn,
	}, middleware.CurrentUser(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"bookedingId": id})
}

// POST /api/trips/:id/initialize
// Eagerly creates the placeholder booking row for every seat of the trip.
func InitializeBookings(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}
	if err := bookingService(c).InitializeBookings(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"initialized": id})
}

// GET /api/bookings/:id/e-ticket
func GetBookingETicket(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}
	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateETicket(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
