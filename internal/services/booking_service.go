package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"busbackend/internal/cache"
	intdb "busbackend/internal/db"
	"busbackend/internal/domain"
	"busbackend/internal/domain/models"
	"busbackend/internal/grid"
	"busbackend/internal/repositories"
	"busbackend/internal/utils"
)

// BookingService allocates seats for a trip+schedule combination. The
// service-level existence check is an early exit only; the unique key on
// (scheduled_vehicle_id, schedule_id, seat_id) is the actual arbiter when
// two bookers race.
type BookingService struct {
	BookingRepo  repositories.BookingRepository
	TripRepo     repositories.TripRepository
	LayoutRepo   repositories.LayoutRepository
	ScheduleRepo repositories.ScheduleRepository
	SeatMaps     *cache.SeatMapCache
	DB           *sql.DB
	RequestID    string
}

func (s BookingService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.DB}
}

func (s BookingService) trips() repositories.TripRepository {
	if s.TripRepo.DB != nil {
		return s.TripRepo
	}
	return repositories.TripRepository{DB: s.DB}
}

func (s BookingService) layouts() repositories.LayoutRepository {
	if s.LayoutRepo.DB != nil {
		return s.LayoutRepo
	}
	return repositories.LayoutRepository{DB: s.DB}
}

func (s BookingService) schedules() repositories.ScheduleRepository {
	if s.ScheduleRepo.DB != nil {
		return s.ScheduleRepo
	}
	return repositories.ScheduleRepository{DB: s.DB}
}

// BookingInput is the booking request after JSON binding.
type BookingInput struct {
	TripID         int64
	ScheduleID     int64
	SeatLabel      string
	BookedBy       string
	PassengerName  string
	PassengerPhone int64
	Amount         int64
	IsPaid         bool
	PaymentMethod  string
	BookedOn       time.Time
}

// Book resolves trip, seat and schedule, verifies the caller's identity, and
// creates the booking row. The identity check runs strictly before any
// booking row is read or written, so an impersonator learns nothing about
// seat state. Any existing row for the triple blocks the booking, even a
// stale "locked" one; there is no release path for those.
func (s BookingService) Book(input BookingInput, currentUser string) (int64, error) {
	trip, found, err := s.trips().GetDetail(input.TripID)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	if !found {
		return 0, domain.NotFoundError{Resource: "scheduled vehicle"}
	}

	seat, found, err := s.layouts().SeatByLabel(trip.LayoutID, input.SeatLabel)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	if !found {
		return 0, domain.NotFoundError{Resource: "seat"}
	}

	_, found, err = s.schedules().GetByID(input.ScheduleID)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	if !found {
		return 0, domain.NotFoundError{Resource: "schedule"}
	}

	if input.BookedBy == "" || input.BookedBy != currentUser {
		return 0, domain.AuthorizationError{Msg: "Intrusion Detected"}
	}

	_, exists, err := s.bookings().FindBySeat(input.TripID, input.ScheduleID, seat.ID)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	if exists {
		return 0, domain.SeatBookedError{Seat: seat.Label}
	}

	bookedOn := input.BookedOn
	if bookedOn.IsZero() {
		bookedOn = time.Now()
	}
	id, err := s.bookings().Create(models.Booking{
		ScheduledVehicleID: input.TripID,
		ScheduleID:         input.ScheduleID,
		SeatID:             seat.ID,
		BookedBy:           input.BookedBy,
		PassengerName:      input.PassengerName,
		PassengerPhone:     input.PassengerPhone,
		Amount:             input.Amount,
		IsPaid:             input.IsPaid,
		PaymentMethod:      input.PaymentMethod,
		BookedOn:           bookedOn,
		State:              models.SeatStateBooked,
	})
	if err != nil {
		if intdb.IsDuplicate(err) {
			// Lost the race between the existence check and the insert.
			return 0, domain.SeatBookedError{Seat: seat.Label, Err: err}
		}
		return 0, domain.InternalError{Msg: "failed to save booking", Err: err}
	}

	s.SeatMaps.Invalidate(context.Background(), input.TripID, input.ScheduleID)
	utils.LogEvent(s.RequestID, "booking", "book", fmt.Sprintf("seat=%s trip=%d", seat.Label, input.TripID))
	return id, nil
}

// SeatStates renders the per-seat state map for a trip+schedule: the state of
// the booking row when one exists, "available" otherwise, shaped like the
// layout grid.
func (s BookingService) SeatStates(tripID, scheduleID int64) (repositories.TripDetail, grid.StateGrid, error) {
	trip, found, err := s.trips().GetDetail(tripID)
	if err != nil {
		return repositories.TripDetail{}, nil, domain.InternalError{Err: err}
	}
	if !found {
		return repositories.TripDetail{}, nil, domain.NotFoundError{Resource: "scheduled vehicle"}
	}
	_, found, err = s.schedules().GetByID(scheduleID)
	if err != nil {
		return repositories.TripDetail{}, nil, domain.InternalError{Err: err}
	}
	if !found {
		return repositories.TripDetail{}, nil, domain.NotFoundError{Resource: "schedule"}
	}

	ctx := context.Background()
	if cached, ok := s.SeatMaps.Get(ctx, tripID, scheduleID); ok {
		return trip, cached, nil
	}

	seats, err := s.layouts().SeatsByLayout(trip.LayoutID)
	if err != nil {
		return repositories.TripDetail{}, nil, domain.InternalError{Err: err}
	}
	states, err := s.bookings().StatesForTrip(tripID, scheduleID)
	if err != nil {
		return repositories.TripDetail{}, nil, domain.InternalError{Err: err}
	}

	g := grid.EncodeStates(seats, func(seat models.Seat) string {
		if state, ok := states[seat.ID]; ok {
			return state
		}
		return models.SeatStateAvailable
	})
	s.SeatMaps.Set(ctx, tripID, scheduleID, g)
	return trip, g, nil
}

// InitializeBookings eagerly creates an "available" placeholder row for every
// seat of the trip's layout, per attached schedule. This establishes the full
// seat universe up front, in contrast with the lazy creation Book does; both
// paths stay supported because different call sites use either.
func (s BookingService) InitializeBookings(tripID int64) error {
	trip, found, err := s.trips().GetDetail(tripID)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if !found {
		return domain.NotFoundError{Resource: "scheduled vehicle"}
	}

	seats, err := s.layouts().SeatsByLayout(trip.LayoutID)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	scheds, err := s.trips().Schedules(tripID)
	if err != nil {
		return domain.InternalError{Err: err}
	}

	now := time.Now()
	for _, sched := range scheds {
		for _, seat := range seats {
			err := s.bookings().CreatePlaceholder(models.Booking{
				ScheduledVehicleID: tripID,
				ScheduleID:         sched.ID,
				SeatID:             seat.ID,
				BookedOn:           now,
				State:              models.SeatStateAvailable,
			})
			if err != nil {
				return domain.InternalError{Msg: "failed to initialize bookings", Err: err}
			}
		}
		s.SeatMaps.Invalidate(context.Background(), tripID, sched.ID)
	}
	utils.LogEvent(s.RequestID, "booking", "initialize", fmt.Sprintf("trip=%d seats=%d", tripID, len(seats)))
	return nil
}
