package db

import "database/sql"

// schemaStatements bootstrap the tables this service owns. Unique keys carry
// the invariants: a route pair exists once, a seat position exists once per
// layout, and a booking triple exists once across the whole booking set.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(16) NOT NULL DEFAULT 'CUSTOMER',
		unique_id CHAR(36) NOT NULL,
		UNIQUE KEY uq_users_email (email),
		UNIQUE KEY uq_users_unique_id (unique_id)
	)`,
	`CREATE TABLE IF NOT EXISTS layouts (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS seats (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		layout_id BIGINT NOT NULL,
		label VARCHAR(8) NOT NULL DEFAULT '',
		row_no INT NOT NULL,
		col_no INT NOT NULL,
		UNIQUE KEY uq_seats_position (layout_id, row_no, col_no),
		CONSTRAINT fk_seats_layout FOREIGN KEY (layout_id) REFERENCES layouts(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS vehicle_types (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		layout_id BIGINT NOT NULL,
		CONSTRAINT fk_vehicle_types_layout FOREIGN KEY (layout_id) REFERENCES layouts(id)
	)`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		vehicle_type_id BIGINT NOT NULL,
		number_plate VARCHAR(64) NOT NULL,
		CONSTRAINT fk_vehicles_type FOREIGN KEY (vehicle_type_id) REFERENCES vehicle_types(id)
	)`,
	`CREATE TABLE IF NOT EXISTS routes (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		source VARCHAR(255) NOT NULL,
		destination VARCHAR(255) NOT NULL,
		UNIQUE KEY uq_routes_pair (source, destination)
	)`,
	`CREATE TABLE IF NOT EXISTS schedules (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		route_id BIGINT NOT NULL,
		departure_date VARCHAR(10) NOT NULL,
		departure_time VARCHAR(5) NOT NULL,
		nature VARCHAR(8) NOT NULL DEFAULT 'Day',
		CONSTRAINT fk_schedules_route FOREIGN KEY (route_id) REFERENCES routes(id)
	)`,
	`CREATE TABLE IF NOT EXISTS scheduled_vehicles (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		vehicle_id BIGINT NOT NULL,
		CONSTRAINT fk_scheduled_vehicles_vehicle FOREIGN KEY (vehicle_id) REFERENCES vehicles(id)
	)`,
	`CREATE TABLE IF NOT EXISTS scheduled_vehicle_schedules (
		scheduled_vehicle_id BIGINT NOT NULL,
		schedule_id BIGINT NOT NULL,
		PRIMARY KEY (scheduled_vehicle_id, schedule_id),
		CONSTRAINT fk_svs_trip FOREIGN KEY (scheduled_vehicle_id) REFERENCES scheduled_vehicles(id),
		CONSTRAINT fk_svs_schedule FOREIGN KEY (schedule_id) REFERENCES schedules(id)
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		scheduled_vehicle_id BIGINT NOT NULL,
		schedule_id BIGINT NOT NULL,
		seat_id BIGINT NOT NULL,
		booked_by CHAR(36) NOT NULL DEFAULT '',
		passenger_name VARCHAR(255) NOT NULL DEFAULT '',
		passenger_phone BIGINT NOT NULL DEFAULT 0,
		amount BIGINT NOT NULL DEFAULT 0,
		is_paid TINYINT(1) NOT NULL DEFAULT 0,
		payment_method VARCHAR(64) NOT NULL DEFAULT '',
		booked_on DATETIME NOT NULL,
		state VARCHAR(15) NOT NULL DEFAULT 'available',
		UNIQUE KEY uq_bookings_seat (scheduled_vehicle_id, schedule_id, seat_id),
		CONSTRAINT fk_bookings_trip FOREIGN KEY (scheduled_vehicle_id) REFERENCES scheduled_vehicles(id),
		CONSTRAINT fk_bookings_schedule FOREIGN KEY (schedule_id) REFERENCES schedules(id),
		CONSTRAINT fk_bookings_seat FOREIGN KEY (seat_id) REFERENCES seats(id)
	)`,
}

// EnsureSchema creates missing tables on startup.
func EnsureSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
