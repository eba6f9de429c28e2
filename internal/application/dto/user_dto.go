package dto

import "github.com/jhoicas/fumimanager/internal/domain/record"

// CreateUserRequest alta de un usuario administrado.
type CreateUserRequest struct {
	Name   string `json:"name" validate:"required,max=200"`
	Email  string `json:"email" validate:"required,email"`
	Role   string `json:"role" validate:"required,oneof=Admin Operator"`
	Branch string `json:"branch" validate:"max=200"`
	Phone  string `json:"phone" validate:"max=40"`
	Status string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// UpdateUserRequest campos opcionales; nil no modifica.
type UpdateUserRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Email  *string `json:"email,omitempty" validate:"omitempty,email"`
	Role   *string `json:"role,omitempty" validate:"omitempty,oneof=Admin Operator"`
	Branch *string `json:"branch,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=Active Inactive"`
}

// UserFilter búsqueda por nombre/email y filtros de rol y estado ("All" no filtra).
type UserFilter struct {
	PageRequest
	Search string `query:"search"`
	Role   string `query:"role"`
	Status string `query:"status"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Branch string `json:"branch"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

// UserStats contadores del encabezado.
type UserStats struct {
	Total  int `json:"total"`
	Active int `json:"active"`
	Admins int `json:"admins"`
}

// UserListResponse listado paginado.
type UserListResponse struct {
	Items  []UserResponse `json:"items"`
	Page   PageResponse   `json:"page"`
	Stats  UserStats      `json:"stats"`
	ByRole record.Counts  `json:"by_role"`
}
