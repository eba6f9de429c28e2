package analytics_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fumimanager/internal/application/analytics"
	"github.com/jhoicas/fumimanager/internal/application/billing"
	"github.com/jhoicas/fumimanager/internal/application/certificates"
	"github.com/jhoicas/fumimanager/internal/application/dto"
	appinventory "github.com/jhoicas/fumimanager/internal/application/inventory"
	"github.com/jhoicas/fumimanager/internal/application/usecase"
	"github.com/jhoicas/fumimanager/internal/domain"
	"github.com/jhoicas/fumimanager/internal/domain/entity"
	"github.com/jhoicas/fumimanager/internal/domain/inventory"
	"github.com/jhoicas/fumimanager/internal/domain/record"
	"github.com/jhoicas/fumimanager/internal/infrastructure/memory"
)

var (
	_ analytics.CertificateSource = (*certificates.CertificateUseCase)(nil)
	_ analytics.StockSource       = (*appinventory.StockUseCase)(nil)
	_ analytics.InvoiceSource     = (*billing.InvoiceUseCase)(nil)
	_ analytics.BranchSource      = (*usecase.BranchUseCase)(nil)
	_ analytics.UserSource        = (*usecase.UserUseCase)(nil)
	_ analytics.ActivitySource    = (*usecase.ActivityUseCase)(nil)
)

var testNow = time.Date(2025, 9, 10, 12, 0, 0, 0, time.UTC)

func newDashboard(t *testing.T) (*analytics.DashboardUseCase, *billing.InvoiceUseCase) {
	t.Helper()
	log := zerolog.Nop()
	clock := func() time.Time { return testNow }

	activity := usecase.NewActivityUseCase(memory.NewActivityStore(log, memory.SeedActivity(testNow)...), clock)
	invoices := billing.NewInvoiceUseCase(
		memory.NewInvoiceStore(log, record.NewLabels("INV", memory.SeedInvoiceCounter, clock), memory.SeedInvoices()...),
		nil, nil, activity, billing.Options{TaxRate: decimal.RequireFromString("0.18"), Now: clock}, log)
	certs := certificates.NewCertificateUseCase(memory.NewCertificateStore(log, memory.SeedCertificates()...), nil, activity, log)

	var n int64
	ledger := inventory.NewLedger(func() int64 { n++; return n }, clock)
	require.NoError(t, ledger.Restore(memory.SeedStock()))
	stock := appinventory.NewStockUseCase(ledger, appinventory.Limits{
		Thresholds: map[entity.ItemKey]int{entity.ItemMB: 100, entity.ItemALP: 60, entity.ItemCertificates: 100},
	}, activity, log)

	d := analytics.NewDashboardUseCase(analytics.Sources{
		Certificates: certs,
		Stock:        stock,
		Invoices:     invoices,
		Branches:     usecase.NewBranchUseCase(memory.NewBranchStore(log, memory.SeedBranches()...), log),
		Users:        usecase.NewUserUseCase(memory.NewUserStore(log, memory.SeedUsers()...), log),
		Activity:     activity,
	})
	return d, invoices
}

// ── Operador ──────────────────────────────────────────────────────────────────

func TestOperator_TodasLasPestanas(t *testing.T) {
	d, _ := newDashboard(t)

	got, err := d.Operator("")
	require.NoError(t, err)
	assert.Equal(t, analytics.TabAll, got.Tab)
	assert.Equal(t, 4, got.Certificates.Total)
	assert.Equal(t, 3, got.Certificates.Of(entity.CertificateIssued))
	assert.Len(t, got.Recent, 4)

	require.Len(t, got.LowStock, 1)
	assert.Equal(t, "Punjab", got.LowStock[0].Branch)

	assert.Equal(t, 2, got.PendingInvoices)
	require.Len(t, got.OverdueInvoices, 1)
	assert.Equal(t, "INV-2025-003", got.OverdueInvoices[0].ID)
	assert.True(t, decimal.NewFromInt(63366).Equal(got.OutstandingTotal), "got %s", got.OutstandingTotal)
}

func TestOperator_PestanaPendiente(t *testing.T) {
	d, _ := newDashboard(t)

	got, err := d.Operator(analytics.TabPending)
	require.NoError(t, err)
	require.Len(t, got.Recent, 1)
	assert.Equal(t, "045 A", got.Recent[0].CertNo)
	assert.Equal(t, 4, got.Certificates.Total, "los conteos no dependen de la pestaña")

	got, err = d.Operator(analytics.TabIssued)
	require.NoError(t, err)
	assert.Len(t, got.Recent, 3)
}

func TestOperator_PestanaDesconocida(t *testing.T) {
	d, _ := newDashboard(t)
	_, err := d.Operator("Archived")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── Administración ────────────────────────────────────────────────────────────

func TestAdmin_Resumen(t *testing.T) {
	d, _ := newDashboard(t)

	got := d.Admin()
	assert.True(t, decimal.NewFromInt(122838).Equal(got.TotalRevenue), "got %s", got.TotalRevenue)
	assert.Equal(t, 3, got.ActiveBranches)
	assert.Equal(t, 4, got.TotalBranches)
	assert.Equal(t, "3 / 4", got.BranchesLabel)
	assert.Equal(t, 4, got.Users.Total)
	assert.Equal(t, 1, got.Users.Of(entity.UserRoleAdmin))
	assert.Equal(t, 4, got.Certificates)
	assert.Equal(t, 2, got.SystemAlerts, "ALP en Punjab más una factura vencida")
	require.Len(t, got.Activity, 6)
	assert.Equal(t, "Certificate Created", got.Activity[0].Action)
}

func TestTabStatus(t *testing.T) {
	s, err := analytics.TabStatus("Pending")
	require.NoError(t, err)
	assert.Equal(t, entity.CertificatePendingInvoice, s)

	s, err = analytics.TabStatus("All")
	require.NoError(t, err)
	assert.Equal(t, record.AllValue, s)
}

func TestAdmin_ReflejaNuevasFacturas(t *testing.T) {
	d, invoices := newDashboard(t)

	_, err := invoices.Create(dto.CreateInvoiceRequest{Client: "KRBL Limited", Amount: decimal.NewFromInt(10000)})
	require.NoError(t, err)

	got := d.Admin()
	assert.True(t, decimal.NewFromInt(134638).Equal(got.TotalRevenue), "got %s", got.TotalRevenue)
	assert.Equal(t, "Invoice Generated", got.Activity[0].Action)
}
