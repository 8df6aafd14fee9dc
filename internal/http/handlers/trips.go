package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"busbackend/internal/services"
)

type scheduleVehiclePayload struct {
	VehicleID  int64                    `json:"vehicleId"`
	Schedules  []services.ScheduleInput `json:"schedules"`
	Initialize bool                     `json:"initialize"`
}

// POST /api/trips
// Schedules a vehicle: creates the trip, reusing existing schedule slots, and
// optionally pre-creates a booking placeholder per seat.
func CreateTrip(c *gin.Context) {
	var req scheduleVehiclePayload
	if !BindJSONOrError(c, &req) {
		return
	}
	trip, err := tripService(c).ScheduleVehicle(req.VehicleID, req.Schedules, req.Initialize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

// GET /api/trips/:id
func GetTrip(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}
	detail, schedules, err := tripService(c).GetTrip(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"scheduledVehicle": detail,
		"schedules":        schedules,
	})
}

// GET /api/trips/:id/seats?schedule=N
// Seat-state map for one trip+schedule, shaped like the layout grid.
func GetTripSeatStates(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}
	scheduleID, err := strconv.ParseInt(c.Query("schedule"), 10, 64)
	if err != nil || scheduleID <= 0 {
		RespondFormatError(c, "invalid schedule query parameter", err)
		return
	}

	detail, states, err := bookingService(c).SeatStates(id, scheduleID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"scheduledVehicle": detail,
		"booked_seats":     states,
	})
}
