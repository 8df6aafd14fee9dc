package models

import "time"

// Booking holds one seat of one trip+schedule. The triple
// (scheduled_vehicle, schedule, seat) is unique at the storage layer; that
// unique key, not the service-level existence check, is what actually wins
// a race between two bookers.
type Booking struct {
	ID                 int64     `json:"id"`
	ScheduledVehicleID int64     `json:"trip"`
	ScheduleID         int64     `json:"schedule"`
	SeatID             int64     `json:"seatId"`
	BookedBy           string    `json:"bookedBy"` // uuid of the booking user
	PassengerName      string    `json:"passengerName"`
	PassengerPhone     int64     `json:"passengerPhone"`
	Amount             int64     `json:"amount"`
	IsPaid             bool      `json:"isPaid"`
	PaymentMethod      string    `json:"paymentMethod"`
	BookedOn           time.Time `json:"bookedOn"`
	State              string    `json:"state"`
}
