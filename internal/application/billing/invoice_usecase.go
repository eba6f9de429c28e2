package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fumimanager/internal/application/dto"
	"github.com/jhoicas/fumimanager/internal/domain"
	"github.com/jhoicas/fumimanager/internal/domain/entity"
	"github.com/jhoicas/fumimanager/internal/domain/record"
	"github.com/jhoicas/fumimanager/internal/domain/repository"
)

// Formatos de exportación.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Options parámetros de facturación.
type Options struct {
	TaxRate decimal.Decimal
	Company Company
	Now     func() time.Time
}

// InvoiceUseCase alta, cobro, listado, documento y exportación de facturas.
type InvoiceUseCase struct {
	store    repository.RecordStore[entity.Invoice]
	pdf      InvoicePDFGenerator
	sheets   SpreadsheetWriter
	activity repository.ActivitySink
	opts     Options
	log      zerolog.Logger
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(store repository.RecordStore[entity.Invoice], pdf InvoicePDFGenerator, sheets SpreadsheetWriter,
	activity repository.ActivitySink, opts Options, log zerolog.Logger) *InvoiceUseCase {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Company.TaxLabel == "" {
		opts.Company.TaxLabel = "IGST (" + TaxPercent(opts.TaxRate) + ")"
	}
	if activity == nil {
		activity = repository.NopActivity{}
	}
	return &InvoiceUseCase{store: store, pdf: pdf, sheets: sheets, activity: activity, opts: opts, log: log}
}

// TaxPercent tasa como porcentaje: 0.18 -> "18%".
func TaxPercent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).String() + "%"
}

// Create deriva impuesto y total de la base, asigna el siguiente número y la agrega al inicio
// con estado Pending y una sola línea.
func (uc *InvoiceUseCase) Create(in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	in.Client = strings.TrimSpace(in.Client)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	date := uc.opts.Now()
	if in.Date != "" {
		d, err := time.Parse(dto.DateLayout, in.Date)
		if err != nil {
			ve := domain.NewValidationError()
			ve.Add("date", "must be a date (YYYY-MM-DD)")
			return nil, ve
		}
		date = d
	}
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	inv := uc.store.Create(entity.Invoice{
		Date:    date,
		Client:  in.Client,
		Address: strings.TrimSpace(in.Address),
		Amount:  in.Amount,
		Tax:     TaxOf(in.Amount, uc.opts.TaxRate),
		Items:   1,
		Status:  entity.InvoiceStatusPending,
	})
	uc.log.Info().Str("id", inv.ID).Str("client", inv.Client).Str("total", inv.Total().String()).Msg("factura creada")
	uc.activity.Record("Invoice Generated", inv.Client, entity.ActivityInfo)
	return toInvoiceResponse(inv), nil
}

// GetByID obtiene una factura.
func (uc *InvoiceUseCase) GetByID(id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.store.Get(id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

// MarkPaid pasa la factura a Paid desde cualquier estado.
func (uc *InvoiceUseCase) MarkPaid(id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.store.Update(id, func(inv *entity.Invoice) error {
		inv.Status = entity.InvoiceStatusPaid
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

// Delete elimina la factura con confirmación.
func (uc *InvoiceUseCase) Delete(id string, confirm bool) error {
	return uc.store.Remove(id, confirm)
}

func (uc *InvoiceUseCase) filter(f dto.InvoiceFilter) []entity.Invoice {
	return uc.store.Filter(
		record.MatchText(f.Search,
			func(i entity.Invoice) string { return i.Client },
			func(i entity.Invoice) string { return i.ID }),
		record.MatchEnum(f.Status, func(i entity.Invoice) string { return i.Status }),
	)
}

// List busca por cliente o número y filtra por estado, en el orden de la colección.
func (uc *InvoiceUseCase) List(f dto.InvoiceFilter) *dto.InvoiceListResponse {
	f.DefaultPage()
	matches := uc.filter(f)
	page := record.Page(matches, f.Limit, f.Offset)
	items := make([]dto.InvoiceResponse, 0, len(page))
	for _, inv := range page {
		items = append(items, *toInvoiceResponse(inv))
	}
	return &dto.InvoiceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset, Total: len(matches)},
	}
}

// Stats ingresos totales, importe pendiente (todo lo no pagado), facturas pagadas y conteo por estado.
func (uc *InvoiceUseCase) Stats() dto.InvoiceStats {
	all := uc.store.All()
	revenue, pending := decimal.Zero, decimal.Zero
	for _, inv := range all {
		revenue = revenue.Add(inv.Total())
		if inv.Status != entity.InvoiceStatusPaid {
			pending = pending.Add(inv.Total())
		}
	}
	c := record.Tally(all, func(i entity.Invoice) string { return i.Status })
	return dto.InvoiceStats{
		TotalRevenue:  revenue,
		PendingAmount: pending,
		PaidCount:     c.Of(entity.InvoiceStatusPaid),
		ByStatus:      c,
	}
}

// Document documento HTML imprimible.
func (uc *InvoiceUseCase) Document(id string) (string, error) {
	inv, err := uc.store.Get(id)
	if err != nil {
		return "", err
	}
	return RenderDocument(inv, uc.opts.Company)
}

// PDF versión PDF del documento y su nombre de archivo.
func (uc *InvoiceUseCase) PDF(ctx context.Context, id string) ([]byte, string, error) {
	inv, err := uc.store.Get(id)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.pdf.GenerateInvoicePDF(ctx, inv, uc.opts.Company)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return b, fmt.Sprintf("Invoice_%s.pdf", inv.ID), nil
}

// Export exporta las facturas que cumplen el filtro (sin paginar) en CSV o XLSX.
func (uc *InvoiceUseCase) Export(f dto.InvoiceFilter, format string) (*dto.ExportFile, error) {
	header := ExportHeader(TaxPercent(uc.opts.TaxRate))
	rows := ExportRows(uc.filter(f))
	now := uc.opts.Now()

	switch format {
	case "", FormatCSV:
		b, err := EncodeCSV(header, rows)
		if err != nil {
			return nil, err
		}
		return &dto.ExportFile{Name: ExportFileName(now, FormatCSV), ContentType: "text/csv; charset=utf-8", Body: b}, nil
	case FormatXLSX:
		b, err := uc.sheets.Write("Invoices", header, rows)
		if err != nil {
			return nil, fmt.Errorf("xlsx: %w", err)
		}
		return &dto.ExportFile{
			Name:        ExportFileName(now, FormatXLSX),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Body:        b,
		}, nil
	default:
		ve := domain.NewValidationError()
		ve.Add("format", "must be one of: csv xlsx")
		return nil, ve
	}
}

// Outstanding facturas no pagadas, en el orden de la colección.
func (uc *InvoiceUseCase) Outstanding() []entity.Invoice {
	return uc.store.Filter(func(i entity.Invoice) bool { return i.Status != entity.InvoiceStatusPaid })
}

func toInvoiceResponse(inv entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:      inv.ID,
		Date:    inv.Date.Format(dto.DateLayout),
		Client:  inv.Client,
		Address: inv.Address,
		Amount:  inv.Amount,
		Tax:     inv.Tax,
		Total:   inv.Total(),
		Items:   inv.Items,
		Status:  inv.Status,
	}
}

// ToInvoiceResponse expone el mapeo para otros casos de uso (tableros).
func ToInvoiceResponse(inv entity.Invoice) dto.InvoiceResponse { return *toInvoiceResponse(inv) }
