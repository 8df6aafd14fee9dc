package services

import (
	"database/sql"
	"strings"

	intdb "busbackend/internal/db"
	"busbackend/internal/domain"
	"busbackend/internal/domain/models"
	"busbackend/internal/repositories"
	"busbackend/internal/utils"
)

// TripService owns routes, vehicle types, vehicles, schedules and scheduled
// vehicles. All of them are write-once; only vehicles have a privileged
// delete path.
type TripService struct {
	RouteRepo    repositories.RouteRepository
	ScheduleRepo repositories.ScheduleRepository
	VehicleRepo  repositories.VehicleRepository
	TripRepo     repositories.TripRepository
	LayoutRepo   repositories.LayoutRepository
	Bookings     BookingService
	DB           *sql.DB
	RequestID    string
}

func (s TripService) routes() repositories.RouteRepository {
	if s.RouteRepo.DB != nil {
		return s.RouteRepo
	}
	return repositories.RouteRepository{DB: s.DB}
}

func (s TripService) schedules() repositories.ScheduleRepository {
	if s.ScheduleRepo.DB != nil {
		return s.ScheduleRepo
	}
	return repositories.ScheduleRepository{DB: s.DB}
}

func (s TripService) vehicles() repositories.VehicleRepository {
	if s.VehicleRepo.DB != nil {
		return s.VehicleRepo
	}
	return repositories.VehicleRepository{DB: s.DB}
}

func (s TripService) trips() repositories.TripRepository {
	if s.TripRepo.DB != nil {
		return s.TripRepo
	}
	return repositories.TripRepository{DB: s.DB}
}

func (s TripService) layoutRepo() repositories.LayoutRepository {
	if s.LayoutRepo.DB != nil {
		return s.LayoutRepo
	}
	return repositories.LayoutRepository{DB: s.DB}
}

// CreateRoute validates, normalizes and persists a route pair. The reverse
// direction is a different route; the exact pair must not exist yet.
func (s TripService) CreateRoute(source, destination string) (models.Route, error) {
	src := strings.TrimSpace(source)
	dst := strings.TrimSpace(destination)
	if src == "" {
		return models.Route{}, domain.ValidationError{Field: "source", Msg: "must not be empty"}
	}
	if dst == "" {
		return models.Route{}, domain.ValidationError{Field: "destination", Msg: "must not be empty"}
	}
	if strings.EqualFold(src, dst) {
		return models.Route{}, domain.ValidationError{Field: "route", Msg: "source and destination must differ"}
	}

	src = utils.TitleCase(src)
	dst = utils.TitleCase(dst)

	route, err := s.routes().Create(src, dst)
	if err != nil {
		if intdb.IsDuplicate(err) {
			return models.Route{}, domain.DuplicateRouteError{Source: src, Destination: dst, Err: err}
		}
		return models.Route{}, domain.InternalError{Msg: "failed to save route", Err: err}
	}
	utils.LogEvent(s.RequestID, "trip", "create_route", src+" - "+dst)
	return route, nil
}

func (s TripService) ListRoutes() ([]models.Route, error) {
	routes, err := s.routes().List()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return routes, nil
}

// UpdateRoute and DeleteRoute always fail once the route exists.
func (s TripService) UpdateRoute(id int64) error {
	if err := s.routeMustExist(id); err != nil {
		return err
	}
	return domain.ReadOnlyError{Entity: "route"}
}

func (s TripService) DeleteRoute(id int64) error {
	if err := s.routeMustExist(id); err != nil {
		return err
	}
	return domain.ReadOnlyError{Entity: "route"}
}

func (s TripService) routeMustExist(id int64) error {
	_, found, err := s.routes().GetByID(id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if !found {
		return domain.NotFoundError{Resource: "route"}
	}
	return nil
}

// CreateVehicleType attaches a name to an existing layout.
func (s TripService) CreateVehicleType(name string, layoutID int64) (models.VehicleType, error) {
	name = utils.TitleCase(name)
	if name == "" {
		return models.VehicleType{}, domain.ValidationError{Field: "name", Msg: "must not be empty"}
	}
	_, found, err := s.layoutRepo().GetByID(layoutID)
	if err != nil {
		return models.VehicleType{}, domain.InternalError{Err: err}
	}
	if !found {
		return models.VehicleType{}, domain.NotFoundError{Resource: "layout"}
	}

	vt, err := s.vehicles().CreateType(name, layoutID)
	if err != nil {
		return models.VehicleType{}, domain.InternalError{Msg: "failed to save vehicle type", Err: err}
	}
	return vt, nil
}

// CreateVehicle registers a vehicle of a known type, plate uppercased.
func (s TripService) CreateVehicle(typeID int64, numberPlate string) (models.Vehicle, error) {
	plate := utils.NormalizePlate(numberPlate)
	if plate == "" {
		return models.Vehicle{}, domain.ValidationError{Field: "numberPlate", Msg: "must not be empty"}
	}
	_, found, err := s.vehicles().GetType(typeID)
	if err != nil {
		return models.Vehicle{}, domain.InternalError{Err: err}
	}
	if !found {
		return models.Vehicle{}, domain.NotFoundError{Resource: "vehicle type"}
	}

	v, err := s.vehicles().CreateVehicle(typeID, plate)
	if err != nil {
		return models.Vehicle{}, domain.InternalError{Msg: "failed to save vehicle", Err: err}
	}
	return v, nil
}

// UpdateVehicle always fails once the vehicle exists; there is no privileged
// path for updates, only for deletes.
func (s TripService) UpdateVehicle(id int64) error {
	_, found, err := s.vehicles().GetVehicle(id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if !found {
		return domain.NotFoundError{Resource: "vehicle"}
	}
	return domain.ReadOnlyError{Entity: "vehicle"}
}

// DeleteVehicle is the single privileged escape hatch from the read-only
// rule. Without the flag it fails exactly like every other entity.
func (s TripService) DeleteVehicle(id int64, privileged bool) error {
	_, found, err := s.vehicles().GetVehicle(id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if !found {
		return domain.NotFoundError{Resource: "vehicle"}
	}
	if !privileged {
		return domain.ReadOnlyError{Entity: "vehicle"}
	}
	if err := s.vehicles().DeleteVehicle(id); err != nil {
		return domain.InternalError{Msg: "failed to delete vehicle", Err: err}
	}
	utils.LogEvent(s.RequestID, "trip", "delete_vehicle", "privileged delete")
	return nil
}

// ScheduleInput is one departure slot requested for a vehicle.
type ScheduleInput struct {
	RouteID int64  `json:"route"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Nature  string `json:"nature"`
}

// ScheduleVehicle creates a trip for the vehicle and attaches one schedule
// per input, reusing an existing (route, date, time, nature) row instead of
// inserting a duplicate. With initialize set, every seat of the vehicle's
// layout gets an eager booking placeholder per schedule.
func (s TripService) ScheduleVehicle(vehicleID int64, inputs []ScheduleInput, initialize bool) (models.ScheduledVehicle, error) {
	if len(inputs) == 0 {
		return models.ScheduledVehicle{}, domain.ValidationError{Field: "schedules", Msg: "must not be empty"}
	}

	_, found, err := s.vehicles().GetVehicle(vehicleID)
	if err != nil {
		return models.ScheduledVehicle{}, domain.InternalError{Err: err}
	}
	if !found {
		return models.ScheduledVehicle{}, domain.NotFoundError{Resource: "vehicle"}
	}

	resolved := make([]models.Schedule, 0, len(inputs))
	for _, in := range inputs {
		sched, err := s.findOrCreateSchedule(in)
		if err != nil {
			return models.ScheduledVehicle{}, err
		}
		resolved = append(resolved, sched)
	}

	trip, err := s.trips().Create(vehicleID)
	if err != nil {
		return models.ScheduledVehicle{}, domain.InternalError{Msg: "failed to save trip", Err: err}
	}
	for _, sched := range resolved {
		if err := s.trips().AttachSchedule(trip.ID, sched.ID); err != nil {
			return models.ScheduledVehicle{}, domain.InternalError{Msg: "failed to attach schedule", Err: err}
		}
	}

	if initialize {
		if err := s.Bookings.InitializeBookings(trip.ID); err != nil {
			return models.ScheduledVehicle{}, err
		}
	}
	utils.LogEvent(s.RequestID, "trip", "schedule_vehicle", "trip created")
	return trip, nil
}

func (s TripService) findOrCreateSchedule(in ScheduleInput) (models.Schedule, error) {
	nature := strings.TrimSpace(in.Nature)
	switch nature {
	case models.NatureDay, models.NatureNight, models.NatureBoth:
	default:
		return models.Schedule{}, domain.ValidationError{Field: "nature", Msg: "must be Day, Night or Both"}
	}

	_, found, err := s.routes().GetByID(in.RouteID)
	if err != nil {
		return models.Schedule{}, domain.InternalError{Err: err}
	}
	if !found {
		return models.Schedule{}, domain.NotFoundError{Resource: "route"}
	}

	existing, found, err := s.schedules().Find(in.RouteID, in.Date, in.Time, nature)
	if err != nil {
		return models.Schedule{}, domain.InternalError{Err: err}
	}
	if found {
		return existing, nil
	}

	created, err := s.schedules().Create(in.RouteID, in.Date, in.Time, nature)
	if err != nil {
		return models.Schedule{}, domain.InternalError{Msg: "failed to save schedule", Err: err}
	}
	return created, nil
}

// UpdateSchedule and DeleteSchedule always fail once the schedule exists.
func (s TripService) UpdateSchedule(id int64) error {
	if err := s.scheduleMustExist(id); err != nil {
		return err
	}
	return domain.ReadOnlyError{Entity: "schedule"}
}

func (s TripService) DeleteSchedule(id int64) error {
	if err := s.scheduleMustExist(id); err != nil {
		return err
	}
	return domain.ReadOnlyError{Entity: "schedule"}
}

func (s TripService) scheduleMustExist(id int64) error {
	_, found, err := s.schedules().GetByID(id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if !found {
		return domain.NotFoundError{Resource: "schedule"}
	}
	return nil
}

// GetTrip returns the joined trip detail with its schedules.
func (s TripService) GetTrip(id int64) (repositories.TripDetail, []models.Schedule, error) {
	detail, found, err := s.trips().GetDetail(id)
	if err != nil {
		return repositories.TripDetail{}, nil, domain.InternalError{Err: err}
	}
	if !found {
		return repositories.TripDetail{}, nil, domain.NotFoundError{Resource: "scheduled vehicle"}
	}
	scheds, err := s.trips().Schedules(id)
	if err != nil {
		return repositories.TripDetail{}, nil, domain.InternalError{Err: err}
	}
	return detail, scheds, nil
}
