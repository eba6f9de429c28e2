package dto

import "time"

// SettingsResponse configuración editable del sistema.
type SettingsResponse struct {
	AppName         string `json:"app_name"`
	SupportEmail    string `json:"support_email"`
	MaintenanceMode bool   `json:"maintenance_mode"`
}

// UpdateSettingsRequest campos opcionales.
type UpdateSettingsRequest struct {
	AppName         *string `json:"app_name,omitempty" validate:"omitempty,min=1,max=100"`
	SupportEmail    *string `json:"support_email,omitempty" validate:"omitempty,email"`
	MaintenanceMode *bool   `json:"maintenance_mode,omitempty"`
}

// ActivityFilter filtro por estado (success, error, info, warning; "all" no filtra).
type ActivityFilter struct {
	PageRequest
	Status string `query:"status"`
}

// ActivityResponse entrada del registro de actividad.
type ActivityResponse struct {
	ID     string    `json:"id"`
	Action string    `json:"action"`
	Actor  string    `json:"actor"`
	Status string    `json:"status"`
	At     time.Time `json:"at"`
}
