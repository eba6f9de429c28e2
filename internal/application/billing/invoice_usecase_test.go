package billing_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fumimanager/internal/application/billing"
	"github.com/jhoicas/fumimanager/internal/application/dto"
	"github.com/jhoicas/fumimanager/internal/domain"
	"github.com/jhoicas/fumimanager/internal/domain/entity"
	"github.com/jhoicas/fumimanager/internal/domain/record"
	"github.com/jhoicas/fumimanager/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2025, 9, 10, 15, 30, 0, 0, time.UTC)

var testCompany = billing.Company{
	Name:         "FumiManager Inc.",
	AddressLines: []string{"123 Industrial Estate, Mundra Port", "Gujarat, India - 370421"},
	GSTIN:        "24AAACC1234J1Z2",
	Currency:     "₹",
	ServiceLabel: "Fumigation Services (Methyl Bromide)",
}

type fakePDF struct{ calls int }

func (f *fakePDF) GenerateInvoicePDF(_ context.Context, inv entity.Invoice, _ billing.Company) ([]byte, error) {
	f.calls++
	return []byte("%PDF " + inv.ID), nil
}

type fakeSheet struct {
	header []string
	rows   [][]string
}

func (f *fakeSheet) Write(_ string, header []string, rows [][]string) ([]byte, error) {
	f.header, f.rows = header, rows
	return []byte("xlsx"), nil
}

func newInvoiceUseCase(t *testing.T) (*billing.InvoiceUseCase, *record.Store[entity.Invoice], *fakePDF, *fakeSheet) {
	t.Helper()
	clock := func() time.Time { return testNow }
	store := memory.NewInvoiceStore(zerolog.Nop(), record.NewLabels("INV", memory.SeedInvoiceCounter, clock), memory.SeedInvoices()...)
	pdf, sheet := &fakePDF{}, &fakeSheet{}
	uc := billing.NewInvoiceUseCase(store, pdf, sheet, nil, billing.Options{
		TaxRate: decimal.RequireFromString("0.18"),
		Company: testCompany,
		Now:     clock,
	}, zerolog.Nop())
	return uc, store, pdf, sheet
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / MarkPaid
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoice_Create_Base10000(t *testing.T) {
	uc, store, _, _ := newInvoiceUseCase(t)

	got, err := uc.Create(dto.CreateInvoiceRequest{Client: "KRBL Limited", Amount: decimal.NewFromInt(10000), Date: "2025-09-10"})
	require.NoError(t, err)

	assert.True(t, got.Tax.Equal(decimal.NewFromInt(1800)), "tax=%s", got.Tax)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(11800)), "total=%s", got.Total)
	assert.Equal(t, entity.InvoiceStatusPending, got.Status)
	assert.Equal(t, 1, got.Items)
	assert.Equal(t, "INV-2025-006", got.ID)
	assert.Equal(t, got.ID, store.All()[0].ID, "las facturas nuevas van al inicio")
}

func TestInvoice_Create_ImpuestoRedondeado(t *testing.T) {
	uc, _, _, _ := newInvoiceUseCase(t)
	for _, base := range []string{"1", "333", "1234.56", "99999", "8200"} {
		a := decimal.RequireFromString(base)
		got, err := uc.Create(dto.CreateInvoiceRequest{Client: "X", Amount: a})
		require.NoError(t, err)
		want := a.Mul(decimal.RequireFromString("0.18")).Round(0)
		assert.True(t, got.Tax.Equal(want), "base %s: tax %s", base, got.Tax)
		assert.True(t, got.Total.Equal(a.Add(want)), "base %s", base)
	}
}

func TestInvoice_Create_Validaciones(t *testing.T) {
	uc, store, _, _ := newInvoiceUseCase(t)

	_, err := uc.Create(dto.CreateInvoiceRequest{Client: "  ", Amount: decimal.NewFromInt(5)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(dto.CreateInvoiceRequest{Client: "A", Amount: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(dto.CreateInvoiceRequest{Client: "A", Amount: decimal.NewFromInt(5), Date: "10/09/2025"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Equal(t, 5, store.Len(), "nada se agrega si falla la validación")
}

func TestInvoice_MarkPaid_DesdeOverdue(t *testing.T) {
	uc, _, _, _ := newInvoiceUseCase(t)

	got, err := uc.MarkPaid("INV-2025-003")
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, got.Status)

	_, err = uc.MarkPaid("INV-1999-001")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoice_ListYStats(t *testing.T) {
	uc, _, _, _ := newInvoiceUseCase(t)

	got := uc.List(dto.InvoiceFilter{Status: "Pending"})
	require.Len(t, got.Items, 2)
	assert.Equal(t, "INV-2025-002", got.Items[0].ID)
	assert.Equal(t, "INV-2025-004", got.Items[1].ID)

	got = uc.List(dto.InvoiceFilter{Search: "rice", Status: "All"})
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Fortune Rice Ltd", got.Items[0].Client)

	s := uc.Stats()
	assert.True(t, s.TotalRevenue.Equal(decimal.NewFromInt(122838)), "revenue=%s", s.TotalRevenue)
	assert.True(t, s.PendingAmount.Equal(decimal.NewFromInt(14750+9676+38940)), "pending=%s", s.PendingAmount)
	assert.Equal(t, 2, s.PaidCount)
	assert.Equal(t, 1, s.ByStatus.Of(entity.InvoiceStatusOverdue))
}

// ──────────────────────────────────────────────────────────────────────────────
// Documento
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoice_Document_Idempotente(t *testing.T) {
	uc, _, _, _ := newInvoiceUseCase(t)

	first, err := uc.Document("INV-2025-001")
	require.NoError(t, err)
	second, err := uc.Document("INV-2025-001")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Contains(t, first, "<title>Invoice #INV-2025-001</title>")
	assert.Contains(t, first, "Date: 2025-09-01")
	assert.Contains(t, first, `status-badge status-Paid`)
	assert.Contains(t, first, "₹15000.00", "precio unitario = amount/items")
	assert.Contains(t, first, "<span>₹45,000</span>")
	assert.Contains(t, first, "IGST (18%):")
	assert.Contains(t, first, "<span>₹8,100</span>")
	assert.Contains(t, first, "<span>₹53,100</span>")
	assert.Contains(t, first, "window.print()")
	assert.Contains(t, first, "GSTIN: 24AAACC1234J1Z2")
}

func TestRenderDocument_EscapaYDireccionPorDefecto(t *testing.T) {
	inv := entity.Invoice{
		ID: "INV-2025-009", Date: testNow, Client: "<b>Acme & Co</b>",
		Amount: decimal.NewFromInt(100), Tax: decimal.NewFromInt(18), Items: 1, Status: "Pending",
	}
	html, err := billing.RenderDocument(inv, testCompany)
	require.NoError(t, err)
	assert.Contains(t, html, "&lt;b&gt;Acme &amp; Co&lt;/b&gt;")
	assert.Contains(t, html, "Address on file")
}

func TestInvoice_PDF(t *testing.T) {
	uc, _, pdf, _ := newInvoiceUseCase(t)

	b, name, err := uc.PDF(context.Background(), "INV-2025-002")
	require.NoError(t, err)
	assert.Equal(t, "Invoice_INV-2025-002.pdf", name)
	assert.Equal(t, []byte("%PDF INV-2025-002"), b)
	assert.Equal(t, 1, pdf.calls)

	_, _, err = uc.PDF(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Exportación
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoice_ExportCSV(t *testing.T) {
	uc, _, _, _ := newInvoiceUseCase(t)
	_, err := uc.Create(dto.CreateInvoiceRequest{Client: "Rice, Grain & Co", Address: "Delhi", Amount: decimal.NewFromInt(10000), Date: "2025-09-10"})
	require.NoError(t, err)

	f, err := uc.Export(dto.InvoiceFilter{}, billing.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "Invoices_Export_2025-09-10.csv", f.Name)

	lines := strings.Split(strings.TrimSpace(string(f.Body)), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "Invoice ID,Client,Date,Base Amount,Tax (18%),Total,Status", lines[0])
	assert.Equal(t, `INV-2025-006,"Rice, Grain & Co",2025-09-10,10000,1800,11800,Pending`, lines[1])
	assert.Equal(t, "INV-2025-001,KRBL Limited,2025-09-01,45000,8100,53100,Paid", lines[2])

	records, err := csv.NewReader(bytes.NewReader(f.Body)).ReadAll()
	require.NoError(t, err)
	for _, r := range records {
		assert.Len(t, r, 7, "toda fila tiene 7 campos aunque el cliente tenga comas")
	}
}

func TestInvoice_ExportRespetaFiltroYXLSX(t *testing.T) {
	uc, _, _, sheet := newInvoiceUseCase(t)

	f, err := uc.Export(dto.InvoiceFilter{Status: "Paid"}, billing.FormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, "Invoices_Export_2025-09-10.xlsx", f.Name)
	assert.Len(t, sheet.rows, 2)
	assert.Equal(t, "Tax (18%)", sheet.header[4])

	_, err = uc.Export(dto.InvoiceFilter{}, "pdf")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "45,000", billing.FormatAmount(decimal.NewFromInt(45000)))
	assert.Equal(t, "1,234.50", billing.FormatAmount(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "972", billing.FormatAmount(decimal.NewFromInt(972)))
}
