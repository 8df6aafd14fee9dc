package repositories

import (
	"database/sql"

	intconfig "busbackend/internal/config"
	"busbackend/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r UserRepository) Create(u models.User) (models.User, error) {
	res, err := r.db().Exec(
		`INSERT INTO users (name, email, password_hash, role, unique_id) VALUES (?,?,?,?,?)`,
		u.Name, u.Email, u.PasswordHash, u.Role, u.UniqueID,
	)
	if err != nil {
		return models.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	u.ID = id
	return u, nil
}

func (r UserRepository) GetByEmail(email string) (models.User, bool, error) {
	var u models.User
	err := r.db().QueryRow(
		`SELECT id, name, email, password_hash, role, unique_id FROM users WHERE email=?`, email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.UniqueID)
	if err == sql.ErrNoRows {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, err
	}
	return u, true, nil
}

func (r UserRepository) GetByUniqueID(uniqueID string) (models.User, bool, error) {
	var u models.User
	err := r.db().QueryRow(
		`SELECT id, name, email, password_hash, role, unique_id FROM users WHERE unique_id=?`, uniqueID,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.UniqueID)
	if err == sql.ErrNoRows {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, err
	}
	return u, true, nil
}
