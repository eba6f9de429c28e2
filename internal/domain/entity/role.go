package entity

import "strings"

// Role rol de la sesión activa. La ausencia de rol equivale a RoleGuest.
type Role string

const (
	RoleGuest    Role = "guest"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

// ParseRole interpreta el valor almacenado; cualquier valor desconocido o vacío es RoleGuest.
func ParseRole(s string) Role {
	switch Role(strings.TrimSpace(s)) {
	case RoleOperator:
		return RoleOperator
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleGuest
	}
}

// Valid indica si el rol es uno de los tres valores del enum.
func (r Role) Valid() bool {
	return r == RoleGuest || r == RoleOperator || r == RoleAdmin
}

// Session rol y nombre visible del usuario actual.
type Session struct {
	Role        Role
	DisplayName string
}

// LoggedIn indica si hay un rol distinto de guest.
func (s Session) LoggedIn() bool { return s.Role != RoleGuest && s.Role != "" }

// Claves del almacenamiento durable de sesión.
const (
	SessionKeyRole = "userRole"
	SessionKeyName = "userName"
)
