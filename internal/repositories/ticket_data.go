package repositories

import "database/sql"

// TicketData is the flattened view of one booking used by e-ticket rendering.
type TicketData struct {
	BookingID      int64
	PassengerName  string
	PassengerPhone int64
	SeatLabel      string
	NumberPlate    string
	Source         string
	Destination    string
	Date           string
	Time           string
	Amount         int64
	IsPaid         bool
	PaymentMethod  string
	State          string
}

func (r BookingRepository) TicketData(bookingID int64) (TicketData, bool, error) {
	var t TicketData
	err := r.db().QueryRow(
		`SELECT b.id, b.passenger_name, b.passenger_phone, st.label, v.number_plate,
		        rt.source, rt.destination, s.departure_date, s.departure_time,
		        b.amount, b.is_paid, b.payment_method, b.state
		 FROM bookings b
		 JOIN seats st ON st.id = b.seat_id
		 JOIN scheduled_vehicles sv ON sv.id = b.scheduled_vehicle_id
		 JOIN vehicles v ON v.id = sv.vehicle_id
		 JOIN schedules s ON s.id = b.schedule_id
		 JOIN routes rt ON rt.id = s.route_id
		 WHERE b.id=?`,
		bookingID,
	).Scan(&t.BookingID, &t.PassengerName, &t.PassengerPhone, &t.SeatLabel, &t.NumberPlate,
		&t.Source, &t.Destination, &t.Date, &t.Time,
		&t.Amount, &t.IsPaid, &t.PaymentMethod, &t.State)
	if err == sql.ErrNoRows {
		return TicketData{}, false, nil
	}
	if err != nil {
		return TicketData{}, false, err
	}
	return t, true, nil
}
