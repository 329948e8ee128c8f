package models

// Role defines the user role type
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSupervisor Role = "supervisor"
	RoleStudent    Role = "student"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSupervisor, RoleStudent:
		return true
	}
	return false
}

// Record status values. Account status is advisory: login does not check it.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)
