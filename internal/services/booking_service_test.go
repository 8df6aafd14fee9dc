package services

import (
	"testing"
	"time"

	"busbackend/internal/domain"
	"busbackend/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

const (
	bookerUUID   = "1b671a64-40d5-491e-99b0-da01ff1f3341"
	intruderUUID = "9e107d9d-372b-4500-9a2b-6c6c1d6f3c1a"
)

func expectTripDetail(mock sqlmock.Sqlmock, tripID int64) {
	mock.ExpectQuery("FROM scheduled_vehicles").
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "v_id", "vehicle_type_id", "number_plate", "vt_id", "name", "layout_id",
		}).AddRow(tripID, 2, 1, "BA 2 KHA 9133", 1, "Super Deluxe", 4))
}

func expectSeatLookup(mock sqlmock.Sqlmock, layoutID int64, label string, seatID int64) {
	mock.ExpectQuery("FROM seats WHERE layout_id").
		WithArgs(layoutID, label).
		WillReturnRows(sqlmock.NewRows([]string{"id", "layout_id", "label", "row_no", "col_no"}).
			AddRow(seatID, layoutID, label, 0, 0))
}

func expectScheduleLookup(mock sqlmock.Sqlmock, scheduleID int64) {
	mock.ExpectQuery("FROM schedules WHERE id").
		WithArgs(scheduleID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "route_id", "departure_date", "departure_time", "nature"}).
			AddRow(scheduleID, 1, "2026-09-01", "19:30", "Night"))
}

func bookingInput() BookingInput {
	return BookingInput{
		TripID:         1,
		ScheduleID:     3,
		SeatLabel:      "A",
		BookedBy:       bookerUUID,
		PassengerName:  "Sita Sharma",
		PassengerPhone: 9841000000,
		Amount:         1200,
		IsPaid:         true,
		PaymentMethod:  "cash",
		BookedOn:       time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC),
	}
}

func TestBookSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectTripDetail(mock, 1)
	expectSeatLookup(mock, 4, "A", 9)
	expectScheduleLookup(mock, 3)
	mock.ExpectQuery("FROM bookings").
		WithArgs(int64(1), int64(3), int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(42, 1))

	svc := BookingService{DB: db}
	id, err := svc.Book(bookingInput(), bookerUUID)
	if err != nil {
		t.Fatalf("book error: %v", err)
	}
	if id != 42 {
		t.Fatalf("booking id = %d, want 42", id)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// Any existing row for the triple blocks a new booking, even a stale
// "locked" one left over from an abandoned flow. There is no release path
// for locked rows; this documents the behavior rather than fixing it.
func TestBookBlockedByExistingRowRegardlessOfState(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectTripDetail(mock, 1)
	expectSeatLookup(mock, 4, "A", 9)
	expectScheduleLookup(mock, 3)
	mock.ExpectQuery("FROM bookings").
		WithArgs(int64(1), int64(3), int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "scheduled_vehicle_id", "schedule_id", "seat_id", "booked_by",
			"passenger_name", "passenger_phone", "amount", "is_paid", "payment_method",
			"booked_on", "state",
		}).AddRow(40, 1, 3, 9, intruderUUID, "Someone Else", 98, 0, false, "", time.Now(), models.SeatStateLocked))

	svc := BookingService{DB: db}
	_, err = svc.Book(bookingInput(), bookerUUID)
	if !domain.IsSeatBooked(err) {
		t.Fatalf("expected SeatAlreadyBooked, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// The identity check runs before any booking row is read or written, so an
// impersonator learns nothing about seat state. Expectations stop at the
// schedule lookup; a bookings query would fail the test.
func TestBookImpersonationFailsBeforeBookingLookup(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectTripDetail(mock, 1)
	expectSeatLookup(mock, 4, "A", 9)
	expectScheduleLookup(mock, 3)

	svc := BookingService{DB: db}
	_, err = svc.Book(bookingInput(), intruderUUID)
	if !domain.IsAuthorization(err) {
		t.Fatalf("expected AuthorizationError, got %v", err)
	}
	if err.Error() != "Intrusion Detected" {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookLosingInsertRaceReportsSeatBooked(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectTripDetail(mock, 1)
	expectSeatLookup(mock, 4, "A", 9)
	expectScheduleLookup(mock, 3)
	mock.ExpectQuery("FROM bookings").
		WithArgs(int64(1), int64(3), int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	svc := BookingService{DB: db}
	_, err = svc.Book(bookingInput(), bookerUUID)
	if !domain.IsSeatBooked(err) {
		t.Fatalf("expected SeatAlreadyBooked on duplicate key, got %v", err)
	}
}

func TestBookUnknownTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM scheduled_vehicles").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	svc := BookingService{DB: db}
	_, err = svc.Book(bookingInput(), bookerUUID)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestSeatStatesMergesBookingsOverLayout(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectTripDetail(mock, 1)
	expectScheduleLookup(mock, 3)
	mock.ExpectQuery("FROM seats WHERE layout_id").
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "layout_id", "label", "row_no", "col_no"}).
			AddRow(9, 4, "A", 0, 0).
			AddRow(10, 4, "B", 0, 2))
	mock.ExpectQuery("SELECT seat_id, state FROM bookings").
		WithArgs(int64(1), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"seat_id", "state"}).
			AddRow(9, models.SeatStateBooked))

	svc := BookingService{DB: db}
	_, states, err := svc.SeatStates(1, 3)
	if err != nil {
		t.Fatalf("seat states error: %v", err)
	}

	if len(states) != 1 || len(states[0]) != 3 {
		t.Fatalf("unexpected grid shape: %+v", states)
	}
	if states[0][0].State != "booked" {
		t.Fatalf("seat A state = %q, want booked", states[0][0].State)
	}
	if states[0][1].State != "none" {
		t.Fatalf("gap state = %q, want none", states[0][1].State)
	}
	if states[0][2].State != "available" {
		t.Fatalf("seat B state = %q, want available", states[0][2].State)
	}
}

func TestInitializeBookingsCreatesPlaceholderPerSeat(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectTripDetail(mock, 1)
	mock.ExpectQuery("FROM seats WHERE layout_id").
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "layout_id", "label", "row_no", "col_no"}).
			AddRow(9, 4, "A", 0, 0).
			AddRow(10, 4, "B", 0, 1))
	mock.ExpectQuery("FROM schedules").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "route_id", "departure_date", "departure_time", "nature"}).
			AddRow(3, 1, "2026-09-01", "19:30", "Night"))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(2, 1))

	svc := BookingService{DB: db}
	if err := svc.InitializeBookings(1); err != nil {
		t.Fatalf("initialize error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
