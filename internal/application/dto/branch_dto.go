package dto

// CreateBranchRequest alta de sucursal. Status por defecto Active.
type CreateBranchRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Code     string `json:"code" validate:"required,max=20"`
	Manager  string `json:"manager"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	GST      string `json:"gst" validate:"max=15"`
	Status   string `json:"status" validate:"omitempty,oneof=Active Maintenance"`
}

// UpdateBranchRequest campos opcionales.
type UpdateBranchRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Code     *string `json:"code,omitempty" validate:"omitempty,min=1,max=20"`
	Manager  *string `json:"manager,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
	GST      *string `json:"gst,omitempty" validate:"omitempty,max=15"`
	Status   *string `json:"status,omitempty" validate:"omitempty,oneof=Active Maintenance"`
}

// BranchFilter búsqueda por nombre, ubicación o código.
type BranchFilter struct {
	PageRequest
	Search string `query:"search"`
	Status string `query:"status"`
}

// BranchResponse salida de una sucursal.
type BranchResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Manager  string `json:"manager"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	GST      string `json:"gst"`
	Status   string `json:"status"`
}

// BranchStats contadores del encabezado.
type BranchStats struct {
	Total       int `json:"total"`
	Active      int `json:"active"`
	Maintenance int `json:"maintenance"`
}

// BranchListResponse listado paginado.
type BranchListResponse struct {
	Items []BranchResponse `json:"items"`
	Page  PageResponse     `json:"page"`
	Stats BranchStats      `json:"stats"`
}
