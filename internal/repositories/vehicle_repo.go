package repositories

import (
	"database/sql"

	intconfig "busbackend/internal/config"
	"busbackend/internal/domain/models"
)

type VehicleRepository struct {
	DB *sql.DB
}

func (r VehicleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r VehicleRepository) CreateType(name string, layoutID int64) (models.VehicleType, error) {
	res, err := r.db().Exec(
		`INSERT INTO vehicle_types (name, layout_id) VALUES (?,?)`, name, layoutID,
	)
	if err != nil {
		return models.VehicleType{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.VehicleType{}, err
	}
	return models.VehicleType{ID: id, Name: name, LayoutID: layoutID}, nil
}

func (r VehicleRepository) GetType(id int64) (models.VehicleType, bool, error) {
	var vt models.VehicleType
	err := r.db().QueryRow(
		`SELECT id, name, layout_id FROM vehicle_types WHERE id=?`, id,
	).Scan(&vt.ID, &vt.Name, &vt.LayoutID)
	if err == sql.ErrNoRows {
		return models.VehicleType{}, false, nil
	}
	if err != nil {
		return models.VehicleType{}, false, err
	}
	return vt, true, nil
}

func (r VehicleRepository) CreateVehicle(typeID int64, numberPlate string) (models.Vehicle, error) {
	res, err := r.db().Exec(
		`INSERT INTO vehicles (vehicle_type_id, number_plate) VALUES (?,?)`, typeID, numberPlate,
	)
	if err != nil {
		return models.Vehicle{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Vehicle{}, err
	}
	return models.Vehicle{ID: id, VehicleTypeID: typeID, NumberPlate: numberPlate}, nil
}

func (r VehicleRepository) GetVehicle(id int64) (models.Vehicle, bool, error) {
	var v models.Vehicle
	err := r.db().QueryRow(
		`SELECT id, vehicle_type_id, number_plate FROM vehicles WHERE id=?`, id,
	).Scan(&v.ID, &v.VehicleTypeID, &v.NumberPlate)
	if err == sql.ErrNoRows {
		return models.Vehicle{}, false, nil
	}
	if err != nil {
		return models.Vehicle{}, false, err
	}
	return v, true, nil
}

// DeleteVehicle removes the row. Only the privileged service path calls this.
func (r VehicleRepository) DeleteVehicle(id int64) error {
	_, err := r.db().Exec(`DELETE FROM vehicles WHERE id=?`, id)
	return err
}
