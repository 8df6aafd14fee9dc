package models

// Layout is a frozen snapshot of a vehicle seat arrangement. It is never
// edited or deleted after creation; a changed arrangement is a new layout.
type Layout struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Seat is one physical position inside a layout. Inactive grid positions are
// not stored at all; a row in the seats table always means a real seat.
type Seat struct {
	ID       int64  `json:"id"`
	LayoutID int64  `json:"layoutId"`
	Label    string `json:"label"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
}

const (
	SeatStateAvailable   = "available"
	SeatStateUnavailable = "unavailable"
	SeatStateLocked      = "locked"
	SeatStateBooked      = "booked"

	// SeatStateNone marks grid positions that hold no seat (aisles, doors).
	SeatStateNone = "none"
)
