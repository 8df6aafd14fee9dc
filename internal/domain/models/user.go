package models

const (
	RoleOperator = "OPERATOR"
	RoleCustomer = "CUSTOMER"
	RoleAgent    = "AGENT"
)

// User is the base identity record. Role-specific profiles (operator fleet,
// agent credit) live outside this core and key off UniqueID.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	UniqueID     string `json:"uniqueId"` // uuid, also the JWT subject
	PasswordHash string `json:"-"`
}
