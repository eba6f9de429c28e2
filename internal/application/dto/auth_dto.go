package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token que transporta el id de sesión, más el rol y nombre ya guardados.
type LoginResponse struct {
	Token     string `json:"token"`
	SessionID string `json:"session_id"`
	Role      string `json:"role"`
	Name      string `json:"name"`
}

// SessionResponse estado actual de la sesión.
type SessionResponse struct {
	LoggedIn bool   `json:"logged_in"`
	Role     string `json:"role"`
	Name     string `json:"name,omitempty"`
	Portal   string `json:"portal,omitempty"`
}
