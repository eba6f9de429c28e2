// Package analytics arma los tableros del operador y del administrador
// a partir de los módulos de certificados, stock, facturación y administración.
package analytics

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fumimanager/internal/application/billing"
	"github.com/jhoicas/fumimanager/internal/application/dto"
	"github.com/jhoicas/fumimanager/internal/domain"
	"github.com/jhoicas/fumimanager/internal/domain/entity"
	"github.com/jhoicas/fumimanager/internal/domain/record"
)

const (
	recentCertificates = 10 // filas de la tabla del operador
	recentActivity     = 6  // entradas del registro en el tablero de admin
)

// Pestañas del tablero del operador.
const (
	TabAll     = "All"
	TabIssued  = "Issued"
	TabPending = "Pending"
)

// DashboardUseCase genera los tableros.
type DashboardUseCase struct {
	certs    CertificateSource
	stock    StockSource
	invoices InvoiceSource
	branches BranchSource
	users    UserSource
	activity ActivitySource
}

// Sources agrupa las fuentes de datos.
type Sources struct {
	Certificates CertificateSource
	Stock        StockSource
	Invoices     InvoiceSource
	Branches     BranchSource
	Users        UserSource
	Activity     ActivitySource
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(src Sources) *DashboardUseCase {
	return &DashboardUseCase{
		certs:    src.Certificates,
		stock:    src.Stock,
		invoices: src.Invoices,
		branches: src.Branches,
		users:    src.Users,
		activity: src.Activity,
	}
}

// TabStatus traduce la pestaña al estado de certificado; All o vacío no filtra.
func TabStatus(tab string) (string, error) {
	switch strings.TrimSpace(tab) {
	case "", TabAll:
		return record.AllValue, nil
	case TabIssued:
		return entity.CertificateIssued, nil
	case TabPending:
		return entity.CertificatePendingInvoice, nil
	default:
		return "", fmt.Errorf("%w: pestaña desconocida %q", domain.ErrInvalidInput, tab)
	}
}

// Operator conteos de certificados, tabla filtrada por pestaña, alertas de stock y facturas por cobrar.
func (uc *DashboardUseCase) Operator(tab string) (*dto.OperatorDashboardResponse, error) {
	status, err := TabStatus(tab)
	if err != nil {
		return nil, err
	}
	if tab == "" {
		tab = TabAll
	}

	// ── Facturas por cobrar ────────────────────────────────────────────────────
	outstanding := uc.invoices.Outstanding()
	total := decimal.Zero
	pending := 0
	overdue := make([]dto.InvoiceResponse, 0)
	for _, inv := range outstanding {
		total = total.Add(inv.Total())
		switch inv.Status {
		case entity.InvoiceStatusPending:
			pending++
		case entity.InvoiceStatusOverdue:
			overdue = append(overdue, billing.ToInvoiceResponse(inv))
		}
	}

	return &dto.OperatorDashboardResponse{
		Certificates:     uc.certs.Counts(),
		Tab:              tab,
		Recent:           uc.certs.Recent(status, recentCertificates),
		LowStock:         uc.stock.LowStockAlerts(),
		PendingInvoices:  pending,
		OverdueInvoices:  overdue,
		OutstandingTotal: total,
	}, nil
}

// Admin ingresos, sucursales activas, usuarios, certificados, alertas y actividad reciente.
// Las alertas del sistema suman stock bajo y facturas vencidas.
func (uc *DashboardUseCase) Admin() *dto.AdminDashboardResponse {
	inv := uc.invoices.Stats()
	br := uc.branches.Stats()
	users := uc.users.List(dto.UserFilter{PageRequest: dto.PageRequest{Limit: 1}})

	return &dto.AdminDashboardResponse{
		TotalRevenue:   inv.TotalRevenue,
		ActiveBranches: br.Active,
		TotalBranches:  br.Total,
		BranchesLabel:  fmt.Sprintf("%d / %d", br.Active, br.Total),
		Users:          users.ByRole,
		Certificates:   uc.certs.Counts().Total,
		SystemAlerts:   len(uc.stock.LowStockAlerts()) + inv.ByStatus.Of(entity.InvoiceStatusOverdue),
		Activity:       uc.activity.List(dto.ActivityFilter{PageRequest: dto.PageRequest{Limit: recentActivity}}),
	}
}
