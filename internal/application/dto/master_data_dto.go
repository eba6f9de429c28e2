package dto

// CreateMasterDataRequest alta en un catálogo. Detail vacío se guarda como "-".
type CreateMasterDataRequest struct {
	Category string `json:"category" validate:"required,oneof=exporters treatments branches"`
	Name     string `json:"name" validate:"required,max=200"`
	Detail   string `json:"detail" validate:"max=200"`
}

// UpdateMasterDataRequest campos opcionales.
type UpdateMasterDataRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Detail *string `json:"detail,omitempty" validate:"omitempty,max=200"`
}

// MasterDataFilter pestaña de categoría y búsqueda por nombre o detalle.
type MasterDataFilter struct {
	PageRequest
	Category string `query:"category"`
	Search   string `query:"search"`
}

// MasterDataResponse salida de una entrada de catálogo.
type MasterDataResponse struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Detail   string `json:"detail"`
	Status   string `json:"status"`
}

// MasterDataStats contadores de la categoría seleccionada.
type MasterDataStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// MasterDataListResponse listado paginado.
type MasterDataListResponse struct {
	Items []MasterDataResponse `json:"items"`
	Page  PageResponse         `json:"page"`
	Stats MasterDataStats      `json:"stats"`
}
