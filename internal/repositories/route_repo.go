package repositories

import (
	"database/sql"

	intconfig "busbackend/internal/config"
	"busbackend/internal/domain/models"
)

type RouteRepository struct {
	DB *sql.DB
}

func (r RouteRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Create inserts a route pair. The unique key on (source, destination) makes
// a duplicate insert fail; callers translate that into DuplicateRouteError.
func (r RouteRepository) Create(source, destination string) (models.Route, error) {
	res, err := r.db().Exec(
		`INSERT INTO routes (source, destination) VALUES (?,?)`,
		source, destination,
	)
	if err != nil {
		return models.Route{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Route{}, err
	}
	return models.Route{ID: id, Source: source, Destination: destination}, nil
}

func (r RouteRepository) GetByID(id int64) (models.Route, bool, error) {
	var rt models.Route
	err := r.db().QueryRow(
		`SELECT id, source, destination FROM routes WHERE id=?`, id,
	).Scan(&rt.ID, &rt.Source, &rt.Destination)
	if err == sql.ErrNoRows {
		return models.Route{}, false, nil
	}
	if err != nil {
		return models.Route{}, false, err
	}
	return rt, true, nil
}

func (r RouteRepository) List() ([]models.Route, error) {
	rows, err := r.db().Query(`SELECT id, source, destination FROM routes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Route{}
	for rows.Next() {
		var rt models.Route
		if err := rows.Scan(&rt.ID, &rt.Source, &rt.Destination); err != nil {
			return out, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}
