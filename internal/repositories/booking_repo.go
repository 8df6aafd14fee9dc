package repositories

import (
	"database/sql"

	intconfig "busbackend/internal/config"
	"busbackend/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingColumns = `id, scheduled_vehicle_id, schedule_id, seat_id, booked_by,
	passenger_name, passenger_phone, amount, is_paid, payment_method, booked_on, state`

func scanBooking(row *sql.Row) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(&b.ID, &b.ScheduledVehicleID, &b.ScheduleID, &b.SeatID, &b.BookedBy,
		&b.PassengerName, &b.PassengerPhone, &b.Amount, &b.IsPaid, &b.PaymentMethod,
		&b.BookedOn, &b.State)
	return b, err
}

// FindBySeat returns the booking row holding (trip, schedule, seat), if any.
// Whatever its state, an existing row blocks a new booking.
func (r BookingRepository) FindBySeat(tripID, scheduleID, seatID int64) (models.Booking, bool, error) {
	row := r.db().QueryRow(
		`SELECT `+bookingColumns+` FROM bookings
		 WHERE scheduled_vehicle_id=? AND schedule_id=? AND seat_id=? LIMIT 1`,
		tripID, scheduleID, seatID,
	)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return models.Booking{}, false, nil
	}
	if err != nil {
		return models.Booking{}, false, err
	}
	return b, true, nil
}

func (r BookingRepository) GetByID(id int64) (models.Booking, bool, error) {
	row := r.db().QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id=?`, id)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return models.Booking{}, false, nil
	}
	if err != nil {
		return models.Booking{}, false, err
	}
	return b, true, nil
}

// Create inserts the booking row. A duplicate-key error here means another
// booker won the race for the same triple since the caller's existence check.
func (r BookingRepository) Create(b models.Booking) (int64, error) {
	res, err := r.db().Exec(
		`INSERT INTO bookings (scheduled_vehicle_id, schedule_id, seat_id, booked_by,
			passenger_name, passenger_phone, amount, is_paid, payment_method, booked_on, state)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		b.ScheduledVehicleID, b.ScheduleID, b.SeatID, b.BookedBy,
		b.PassengerName, b.PassengerPhone, b.Amount, b.IsPaid, b.PaymentMethod,
		b.BookedOn, b.State,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// StatesForTrip maps seat_id -> state for every booking of (trip, schedule).
func (r BookingRepository) StatesForTrip(tripID, scheduleID int64) (map[int64]string, error) {
	rows, err := r.db().Query(
		`SELECT seat_id, state FROM bookings WHERE scheduled_vehicle_id=? AND schedule_id=?`,
		tripID, scheduleID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[int64]string{}
	for rows.Next() {
		var seatID int64
		var state string
		if err := rows.Scan(&seatID, &state); err != nil {
			return out, err
		}
		out[seatID] = state
	}
	return out, rows.Err()
}

// CreatePlaceholder inserts an "available" placeholder row, ignoring seats
// that already hold a booking. Used by the eager initialization path only.
func (r BookingRepository) CreatePlaceholder(b models.Booking) error {
	_, err := r.db().Exec(
		`INSERT INTO bookings (scheduled_vehicle_id, schedule_id, seat_id, booked_by,
			passenger_name, passenger_phone, amount, is_paid, payment_method, booked_on, state)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?)
		 ON DUPLICATE KEY UPDATE id=id`,
		b.ScheduledVehicleID, b.ScheduleID, b.SeatID, b.BookedBy,
		b.PassengerName, b.PassengerPhone, b.Amount, b.IsPaid, b.PaymentMethod,
		b.BookedOn, b.State,
	)
	return err
}
