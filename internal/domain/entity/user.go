package entity

// Roles de un registro de usuario administrado (distintos del rol de sesión).
const (
	UserRoleAdmin    = "Admin"
	UserRoleOperator = "Operator"
)

// Estados comunes Active/Inactive.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// User usuario administrado desde el panel de administración.
type User struct {
	ID     string
	Name   string
	Email  string
	Role   string // Admin, Operator
	Branch string
	Phone  string
	Status string // Active, Inactive
}
