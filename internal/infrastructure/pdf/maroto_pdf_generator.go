// Package pdf genera la versión PDF del documento de factura.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + GSTIN        │  INVOICE + N° + Fecha     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BILL TO: Cliente + Dirección                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Descripción | Qty | Unit Price | Total               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Impuesto / Total Due                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con N° y total + leyenda                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/fumimanager/internal/application/billing"
	"github.com/jhoicas/fumimanager/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 37, Green: 99, Blue: 235}
	colorGray    = &props.Color{Red: 100, Green: 116, Blue: 139}
	colorDark    = &props.Color{Red: 30, Green: 41, Blue: 59}
)

var statusColor = map[string]*props.Color{
	entity.InvoiceStatusPaid:    {Red: 4, Green: 120, Blue: 87},
	entity.InvoiceStatusPending: {Red: 180, Green: 83, Blue: 9},
	entity.InvoiceStatusOverdue: {Red: 185, Green: 28, Blue: 28},
}

// ── Generator ─────────────────────────────────────────────────────────────────

var _ billing.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(ctx context.Context, invoice entity.Invoice, company billing.Company) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Invoice #"+invoice.ID, true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)
	cur := currencySymbol(company.Currency)

	m.AddRows(headerRow(invoice, company))
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.5}))
	m.AddRows(billToRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(itemRow(invoice, company, cur))

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalsRow(invoice, company, cur))

	m.AddRows(line.NewRow(6))
	m.AddRows(footerRows(invoice, cur)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa + dirección + GSTIN (izq) y número, fecha y estado (der).
func headerRow(invoice entity.Invoice, company billing.Company) core.Row {
	left := []core.Component{
		text.New(company.Name, props.Text{Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 1}),
	}
	top := 9.0
	for _, l := range company.AddressLines {
		left = append(left, text.New(l, props.Text{Size: 9, Top: top, Color: colorGray}))
		top += 5
	}
	left = append(left, text.New("GSTIN: "+company.GSTIN, props.Text{Size: 9, Top: top, Color: colorGray}))

	status := statusColor[invoice.Status]
	if status == nil {
		status = colorGray
	}
	return row.New(top+8).Add(
		col.New(7).Add(left...),
		col.New(5).Add(
			text.New("INVOICE", props.Text{Style: fontstyle.Bold, Size: 20, Align: align.Right, Color: colorDark, Top: 1}),
			text.New("#"+invoice.ID, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 11}),
			text.New("Date: "+invoice.Date.Format("2006-01-02"), props.Text{Size: 9, Align: align.Right, Top: 16}),
			text.New(strings.ToUpper(invoice.Status), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 21, Color: status}),
		),
	)
}

// billToRow: cliente facturado.
func billToRow(invoice entity.Invoice) core.Row {
	address := invoice.Address
	if address == "" {
		address = "Address on file"
	}
	return row.New(20).Add(
		col.New(12).Add(
			text.New("BILL TO:", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorGray, Top: 2}),
			text.New(invoice.Client, props.Text{Style: fontstyle.Bold, Size: 12, Top: 8}),
			text.New(address, props.Text{Size: 9, Top: 14, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorGray, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("DESCRIPTION", 6, align.Left),
		h("QTY", 2, align.Center),
		h("UNIT PRICE", 2, align.Right),
		h("TOTAL", 2, align.Right),
	)
}

// itemRow: la única línea del servicio.
func itemRow(invoice entity.Invoice, company billing.Company, cur string) core.Row {
	return row.New(14).Add(
		col.New(6).Add(
			text.New(company.ServiceLabel, props.Text{Style: fontstyle.Bold, Size: 9, Top: 2, Left: 1}),
			text.New("Standard container treatment service", props.Text{Size: 8, Top: 7, Left: 1, Color: colorGray}),
		),
		col.New(2).Add(text.New(fmt.Sprintf("%d", invoice.Items), props.Text{Size: 9, Align: align.Center, Top: 2})),
		col.New(2).Add(text.New(cur+billing.FormatFixed(invoice.UnitPrice()), props.Text{Size: 9, Align: align.Right, Top: 2, Right: 1})),
		col.New(2).Add(text.New(cur+billing.FormatAmount(invoice.Amount), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Right: 1})),
	)
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(invoice entity.Invoice, company billing.Company, cur string) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grand := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Color: colorDark, Right: 1, Top: top})
	}

	return row.New(26).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:", 2),
			label(company.TaxLabel+":", 8),
			grand("Total Due:", 16),
		),
		col.New(3).Add(
			value(cur+billing.FormatAmount(invoice.Amount), 2),
			value(cur+billing.FormatAmount(invoice.Tax), 8),
			grand(cur+billing.FormatAmount(invoice.Total()), 16),
		),
	)
}

// footerRows: QR con número y total, más la leyenda.
func footerRows(invoice entity.Invoice, cur string) []core.Row {
	qr := fmt.Sprintf("INVOICE:%s|TOTAL:%s%s", invoice.ID, strings.TrimSpace(cur), invoice.Total().StringFixed(2))
	return []core.Row{
		row.New(30).Add(
			col.New(3).Add(code.NewQr(qr, props.Rect{Percent: 90, Center: true})),
			col.New(9).Add(
				text.New("This is a computer-generated invoice and does not require a signature.", props.Text{
					Size: 8, Top: 10, Left: 3, Color: colorGray,
				}),
				text.New("Thank you for your business!", props.Text{
					Style: fontstyle.Bold, Size: 9, Top: 16, Left: 3, Color: colorPrimary,
				}),
			),
		),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

// currencySymbol las fuentes base del PDF solo cubren Latin-1; ₹ se imprime como "Rs. ".
func currencySymbol(s string) string {
	for _, r := range s {
		if r > 0xFF {
			return "Rs. "
		}
	}
	return s
}
