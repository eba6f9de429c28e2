package dto

import "github.com/jhoicas/fumimanager/internal/domain/navigation"

// NavigationResponse menú visible para la sesión actual.
type NavigationResponse struct {
	Role     string               `json:"role"`
	Name     string               `json:"name,omitempty"`
	Portal   string               `json:"portal"`
	Sections []navigation.Section `json:"sections"`
}
