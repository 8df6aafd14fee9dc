package repositories

import (
	"database/sql"

	intconfig "busbackend/internal/config"
	"busbackend/internal/domain/models"
)

// TripDetail is a scheduled vehicle joined with its vehicle, type and layout,
// shaped for the nested wire payloads clients expect.
type TripDetail struct {
	ID       int64              `json:"id"`
	Vehicle  models.Vehicle     `json:"vehicle"`
	Type     models.VehicleType `json:"vehicleType"`
	LayoutID int64              `json:"layoutId"`
}

type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r TripRepository) Create(vehicleID int64) (models.ScheduledVehicle, error) {
	res, err := r.db().Exec(`INSERT INTO scheduled_vehicles (vehicle_id) VALUES (?)`, vehicleID)
	if err != nil {
		return models.ScheduledVehicle{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.ScheduledVehicle{}, err
	}
	return models.ScheduledVehicle{ID: id, VehicleID: vehicleID}, nil
}

func (r TripRepository) AttachSchedule(tripID, scheduleID int64) error {
	_, err := r.db().Exec(
		`INSERT INTO scheduled_vehicle_schedules (scheduled_vehicle_id, schedule_id) VALUES (?,?)`,
		tripID, scheduleID,
	)
	return err
}

// GetDetail resolves the trip together with the layout its seats come from
// (trip -> vehicle -> vehicle type -> layout).
func (r TripRepository) GetDetail(tripID int64) (TripDetail, bool, error) {
	var d TripDetail
	err := r.db().QueryRow(
		`SELECT sv.id, v.id, v.vehicle_type_id, v.number_plate, vt.id, vt.name, vt.layout_id
		 FROM scheduled_vehicles sv
		 JOIN vehicles v ON v.id = sv.vehicle_id
		 JOIN vehicle_types vt ON vt.id = v.vehicle_type_id
		 WHERE sv.id=?`,
		tripID,
	).Scan(&d.ID, &d.Vehicle.ID, &d.Vehicle.VehicleTypeID, &d.Vehicle.NumberPlate,
		&d.Type.ID, &d.Type.Name, &d.Type.LayoutID)
	if err == sql.ErrNoRows {
		return TripDetail{}, false, nil
	}
	if err != nil {
		return TripDetail{}, false, err
	}
	d.LayoutID = d.Type.LayoutID
	return d, true, nil
}

func (r TripRepository) Schedules(tripID int64) ([]models.Schedule, error) {
	rows, err := r.db().Query(
		`SELECT s.id, s.route_id, s.departure_date, s.departure_time, s.nature
		 FROM schedules s
		 JOIN scheduled_vehicle_schedules svs ON svs.schedule_id = s.id
		 WHERE svs.scheduled_vehicle_id=?
		 ORDER BY s.id`,
		tripID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Schedule{}
	for rows.Next() {
		var s models.Schedule
		if err := rows.Scan(&s.ID, &s.RouteID, &s.Date, &s.Time, &s.Nature); err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
