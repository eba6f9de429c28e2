// Package access decide si una sesión puede entrar a una vista.
package access

import "github.com/jhoicas/fumimanager/internal/domain/entity"

// Rutas a las que redirige el guard.
const (
	LoginPath   = "/login"
	LandingPath = "/dashboard"
)

// Requirement rol exigido por una vista. Any solo pide sesión iniciada.
type Requirement struct {
	Role entity.Role
}

// Any cualquier sesión iniciada.
var Any = Requirement{}

// Only exige exactamente el rol r.
func Only(r entity.Role) Requirement { return Requirement{Role: r} }

// Decision resultado del guard: Allowed o redirección.
type Decision struct {
	Allowed  bool
	Redirect string
}

// Guard es una función pura del estado de la sesión.
// Sin rol redirige a /login; rol distinto del exigido redirige a /dashboard.
// La comparación es exacta: un admin no entra a una vista exclusiva de otro rol.
func Guard(s entity.Session, req Requirement) Decision {
	if !s.LoggedIn() {
		return Decision{Redirect: LoginPath}
	}
	if req.Role != "" && s.Role != req.Role {
		return Decision{Redirect: LandingPath}
	}
	return Decision{Allowed: true}
}
