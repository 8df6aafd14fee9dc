// Package grid converts between the nested-array seat layout wire format and
// the flat seat records the database stores.
package grid

import (
	"busbackend/internal/domain"
	"busbackend/internal/domain/models"
	"busbackend/internal/utils"
)

// Cell is one position of a layout grid as clients draw it.
type Cell struct {
	IsActive bool   `json:"is_active"`
	Label    string `json:"label"`
}

type Grid [][]Cell

// Encode renders stored seats back into a rectangular grid. Width and height
// come from the highest coordinates present, so every row of the output has
// the same length even when the grid was decoded from ragged input. Positions
// without a seat render as {is_active: false, label: "none"}.
func Encode(seats []models.Seat) Grid {
	if len(seats) == 0 {
		return Grid{}
	}

	height, width := 0, 0
	for _, s := range seats {
		if s.Row+1 > height {
			height = s.Row + 1
		}
		if s.Col+1 > width {
			width = s.Col + 1
		}
	}

	g := make(Grid, height)
	for r := range g {
		g[r] = make([]Cell, width)
		for c := range g[r] {
			g[r][c] = Cell{IsActive: false, Label: models.SeatStateNone}
		}
	}
	for _, s := range seats {
		g[s.Row][s.Col] = Cell{IsActive: true, Label: s.Label}
	}
	return g
}

// Decode walks the grid in row-major order and produces one seat per active
// cell. Inactive cells are skipped entirely, not stored. Rows may be ragged;
// each row's length is taken as-is, which means Encode(Decode(g)) squares the
// grid off and is only a strict round trip for rectangular input.
func Decode(g Grid, name string) (string, []models.Seat, error) {
	normalized := utils.TitleCase(name)
	if normalized == "" {
		return "", nil, domain.FormatError{Msg: "layout name must not be empty"}
	}

	seats := []models.Seat{}
	for r, row := range g {
		for c, cell := range row {
			if !cell.IsActive {
				continue
			}
			seats = append(seats, models.Seat{Label: cell.Label, Row: r, Col: c})
		}
	}
	return normalized, seats, nil
}

// StateCell is one position of the seat-state map shown to booking clients.
type StateCell struct {
	State string `json:"state"`
}

type StateGrid [][]StateCell

// EncodeStates shapes per-seat states the same way Encode shapes the layout,
// so a client can overlay the two. stateFor is consulted once per seat;
// positions without a seat report "none".
func EncodeStates(seats []models.Seat, stateFor func(models.Seat) string) StateGrid {
	if len(seats) == 0 {
		return StateGrid{}
	}

	height, width := 0, 0
	for _, s := range seats {
		if s.Row+1 > height {
			height = s.Row + 1
		}
		if s.Col+1 > width {
			width = s.Col + 1
		}
	}

	g := make(StateGrid, height)
	for r := range g {
		g[r] = make([]StateCell, width)
		for c := range g[r] {
			g[r][c] = StateCell{State: models.SeatStateNone}
		}
	}
	for _, s := range seats {
		g[s.Row][s.Col] = StateCell{State: stateFor(s)}
	}
	return g
}
