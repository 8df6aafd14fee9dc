package models

// Route is a (source, destination) pair, title-cased and unique. The reverse
// direction is a distinct route.
type Route struct {
	ID          int64  `json:"id"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

type VehicleType struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	LayoutID int64  `json:"layoutId"`
}

type Vehicle struct {
	ID            int64  `json:"id"`
	VehicleTypeID int64  `json:"vehicleTypeId"`
	NumberPlate   string `json:"numberPlate"`
}

const (
	NatureDay   = "Day"
	NatureNight = "Night"
	NatureBoth  = "Both"
)

// Schedule is one departure slot on a route. Uniqueness of
// (route, date, time, nature) is not enforced here; callers look up an
// existing match before creating a new row.
type Schedule struct {
	ID      int64  `json:"id"`
	RouteID int64  `json:"routeId"`
	Date    string `json:"date"` // YYYY-MM-DD
	Time    string `json:"time"` // HH:MM
	Nature  string `json:"nature"`
}

// ScheduledVehicle is a trip: one vehicle running a set of schedules.
type ScheduledVehicle struct {
	ID        int64 `json:"id"`
	VehicleID int64 `json:"vehicleId"`
}
