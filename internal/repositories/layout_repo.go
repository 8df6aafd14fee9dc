package repositories

import (
	"database/sql"

	intconfig "busbackend/internal/config"
	intdb "busbackend/internal/db"
	"busbackend/internal/domain/models"
)

type LayoutRepository struct {
	DB *sql.DB
}

func (r LayoutRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// CreateWithSeats inserts the layout and all of its seats in one transaction.
// Layouts are never touched again after this commit.
func (r LayoutRepository) CreateWithSeats(name string, seats []models.Seat) (models.Layout, error) {
	var layout models.Layout
	err := intdb.WithTx(r.db(), func(tx *sql.Tx) error {
		res, err := tx.Exec(`INSERT INTO layouts (name) VALUES (?)`, name)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		layout = models.Layout{ID: id, Name: name}

		for _, s := range seats {
			if _, err := tx.Exec(
				`INSERT INTO seats (layout_id, label, row_no, col_no) VALUES (?,?,?,?)`,
				id, s.Label, s.Row, s.Col,
			); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.Layout{}, err
	}
	return layout, nil
}

func (r LayoutRepository) GetByID(id int64) (models.Layout, bool, error) {
	var l models.Layout
	err := r.db().QueryRow(`SELECT id, name FROM layouts WHERE id=?`, id).Scan(&l.ID, &l.Name)
	if err == sql.ErrNoRows {
		return models.Layout{}, false, nil
	}
	if err != nil {
		return models.Layout{}, false, err
	}
	return l, true, nil
}

func (r LayoutRepository) List() ([]models.Layout, error) {
	rows, err := r.db().Query(`SELECT id, name FROM layouts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Layout{}
	for rows.Next() {
		var l models.Layout
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return out, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r LayoutRepository) SeatsByLayout(layoutID int64) ([]models.Seat, error) {
	rows, err := r.db().Query(
		`SELECT id, layout_id, label, row_no, col_no FROM seats WHERE layout_id=? ORDER BY row_no, col_no`,
		layoutID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Seat{}
	for rows.Next() {
		var s models.Seat
		if err := rows.Scan(&s.ID, &s.LayoutID, &s.Label, &s.Row, &s.Col); err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r LayoutRepository) SeatByLabel(layoutID int64, label string) (models.Seat, bool, error) {
	var s models.Seat
	err := r.db().QueryRow(
		`SELECT id, layout_id, label, row_no, col_no FROM seats WHERE layout_id=? AND label=? LIMIT 1`,
		layoutID, label,
	).Scan(&s.ID, &s.LayoutID, &s.Label, &s.Row, &s.Col)
	if err == sql.ErrNoRows {
		return models.Seat{}, false, nil
	}
	if err != nil {
		return models.Seat{}, false, err
	}
	return s, true, nil
}
