package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fumimanager/internal/domain/record"
)

// CreateInvoiceRequest body para POST /api/invoices. Date vacío usa la fecha actual.
type CreateInvoiceRequest struct {
	Client  string          `json:"client" validate:"required,max=200"`
	Address string          `json:"address" validate:"max=300"`
	Amount  decimal.Decimal `json:"amount" validate:"gt=0"`
	Date    string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// InvoiceFilter búsqueda por cliente o número y filtro de estado ("All" no filtra).
type InvoiceFilter struct {
	PageRequest
	Search string `query:"search"`
	Status string `query:"status"`
}

// InvoiceResponse factura en respuestas.
type InvoiceResponse struct {
	ID      string          `json:"id"`
	Date    string          `json:"date"`
	Client  string          `json:"client"`
	Address string          `json:"address"`
	Amount  decimal.Decimal `json:"amount"`
	Tax     decimal.Decimal `json:"tax"`
	Total   decimal.Decimal `json:"total"`
	Items   int             `json:"items"`
	Status  string          `json:"status"`
}

// InvoiceListResponse listado paginado.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// InvoiceStats totales del encabezado de facturación.
type InvoiceStats struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	PendingAmount decimal.Decimal `json:"pending_amount"`
	PaidCount     int             `json:"paid_count"`
	ByStatus      record.Counts   `json:"by_status"`
}

// ExportFile archivo generado para descarga.
type ExportFile struct {
	Name        string
	ContentType string
	Body        []byte
}
