package analytics

import (
	"github.com/jhoicas/fumimanager/internal/application/dto"
	"github.com/jhoicas/fumimanager/internal/domain/entity"
	"github.com/jhoicas/fumimanager/internal/domain/record"
)

// Fuentes de lectura de los tableros; las implementan los casos de uso de cada módulo.
type (
	CertificateSource interface {
		Counts() record.Counts
		Recent(status string, n int) []dto.CertificateResponse
	}
	StockSource interface {
		LowStockAlerts() []dto.LowStockAlertResponse
	}
	InvoiceSource interface {
		Stats() dto.InvoiceStats
		Outstanding() []entity.Invoice
	}
	BranchSource interface {
		Stats() dto.BranchStats
	}
	UserSource interface {
		List(f dto.UserFilter) *dto.UserListResponse
	}
	ActivitySource interface {
		List(f dto.ActivityFilter) []dto.ActivityResponse
	}
)
