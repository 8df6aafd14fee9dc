package repositories

import (
	"database/sql"

	intconfig "busbackend/internal/config"
	"busbackend/internal/domain/models"
)

type ScheduleRepository struct {
	DB *sql.DB
}

func (r ScheduleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Find looks up an existing schedule with the exact same slot. The schedules
// table carries no unique key; de-duplication happens here, in the caller's
// find-or-create sequence.
func (r ScheduleRepository) Find(routeID int64, date, tm, nature string) (models.Schedule, bool, error) {
	var s models.Schedule
	err := r.db().QueryRow(
		`SELECT id, route_id, departure_date, departure_time, nature
		 FROM schedules
		 WHERE route_id=? AND departure_date=? AND departure_time=? AND nature=?
		 LIMIT 1`,
		routeID, date, tm, nature,
	).Scan(&s.ID, &s.RouteID, &s.Date, &s.Time, &s.Nature)
	if err == sql.ErrNoRows {
		return models.Schedule{}, false, nil
	}
	if err != nil {
		return models.Schedule{}, false, err
	}
	return s, true, nil
}

func (r ScheduleRepository) Create(routeID int64, date, tm, nature string) (models.Schedule, error) {
	res, err := r.db().Exec(
		`INSERT INTO schedules (route_id, departure_date, departure_time, nature) VALUES (?,?,?,?)`,
		routeID, date, tm, nature,
	)
	if err != nil {
		return models.Schedule{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Schedule{}, err
	}
	return models.Schedule{ID: id, RouteID: routeID, Date: date, Time: tm, Nature: nature}, nil
}

func (r ScheduleRepository) GetByID(id int64) (models.Schedule, bool, error) {
	var s models.Schedule
	err := r.db().QueryRow(
		`SELECT id, route_id, departure_date, departure_time, nature FROM schedules WHERE id=?`, id,
	).Scan(&s.ID, &s.RouteID, &s.Date, &s.Time, &s.Nature)
	if err == sql.ErrNoRows {
		return models.Schedule{}, false, nil
	}
	if err != nil {
		return models.Schedule{}, false, err
	}
	return s, true, nil
}
