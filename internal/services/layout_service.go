package services

import (
	"database/sql"

	"busbackend/internal/domain"
	"busbackend/internal/domain/models"
	"busbackend/internal/grid"
	"busbackend/internal/repositories"
	"busbackend/internal/utils"
)

// LayoutService owns the Layout + Seat entities. Layouts are write-once: the
// only mutation path is SaveLayout, and every later edit or delete attempt
// fails with ReadOnlyViolation.
type LayoutService struct {
	LayoutRepo repositories.LayoutRepository
	DB         *sql.DB
	RequestID  string
}

func (s LayoutService) layouts() repositories.LayoutRepository {
	if s.LayoutRepo.DB != nil {
		return s.LayoutRepo
	}
	return repositories.LayoutRepository{DB: s.DB}
}

// SaveLayout decodes the grid and persists the layout with its seats.
func (s LayoutService) SaveLayout(name string, g grid.Grid) (models.Layout, error) {
	normalized, seats, err := grid.Decode(g, name)
	if err != nil {
		return models.Layout{}, err
	}

	layout, err := s.layouts().CreateWithSeats(normalized, seats)
	if err != nil {
		return models.Layout{}, domain.InternalError{Msg: "failed to save layout", Err: err}
	}
	utils.LogEvent(s.RequestID, "layout", "save", layout.Name)
	return layout, nil
}

// GetLayout returns the stored layout with its grid rendering.
func (s LayoutService) GetLayout(id int64) (models.Layout, grid.Grid, error) {
	layout, found, err := s.layouts().GetByID(id)
	if err != nil {
		return models.Layout{}, nil, domain.InternalError{Err: err}
	}
	if !found {
		return models.Layout{}, nil, domain.NotFoundError{Resource: "layout"}
	}

	seats, err := s.layouts().SeatsByLayout(id)
	if err != nil {
		return models.Layout{}, nil, domain.InternalError{Err: err}
	}
	return layout, grid.Encode(seats), nil
}

func (s LayoutService) ListLayouts() ([]models.Layout, error) {
	layouts, err := s.layouts().List()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return layouts, nil
}

// UpdateLayout always fails: a persisted layout is a frozen snapshot.
func (s LayoutService) UpdateLayout(id int64) error {
	if err := s.mustExist(id); err != nil {
		return err
	}
	return domain.ReadOnlyError{Entity: "layout"}
}

// DeleteLayout always fails for the same reason.
func (s LayoutService) DeleteLayout(id int64) error {
	if err := s.mustExist(id); err != nil {
		return err
	}
	return domain.ReadOnlyError{Entity: "layout"}
}

func (s LayoutService) mustExist(id int64) error {
	_, found, err := s.layouts().GetByID(id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if !found {
		return domain.NotFoundError{Resource: "layout"}
	}
	return nil
}
