package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fumimanager/internal/domain/record"
)

// OperatorDashboardResponse tablero del operador.
type OperatorDashboardResponse struct {
	Certificates     record.Counts           `json:"certificates"`
	Tab              string                  `json:"tab"`
	Recent           []CertificateResponse   `json:"recent"`
	LowStock         []LowStockAlertResponse `json:"low_stock"`
	PendingInvoices  int                     `json:"pending_invoices"`
	OverdueInvoices  []InvoiceResponse       `json:"overdue_invoices"`
	OutstandingTotal decimal.Decimal         `json:"outstanding_total"`
}

// AdminDashboardResponse tablero de administración.
type AdminDashboardResponse struct {
	TotalRevenue   decimal.Decimal    `json:"total_revenue"`
	ActiveBranches int                `json:"active_branches"`
	TotalBranches  int                `json:"total_branches"`
	BranchesLabel  string             `json:"branches_label"`
	Users          record.Counts      `json:"users"`
	Certificates   int                `json:"certificates"`
	SystemAlerts   int                `json:"system_alerts"`
	Activity       []ActivityResponse `json:"activity"`
}
