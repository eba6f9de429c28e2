package billing

import (
	"context"

	"github.com/jhoicas/fumimanager/internal/domain/entity"
)

// Company datos del emisor impresos en el documento.
type Company struct {
	Name         string
	AddressLines []string
	GSTIN        string
	Currency     string // símbolo, p. ej. "₹"
	ServiceLabel string // descripción de la única línea de la factura
	TaxLabel     string // p. ej. "IGST (18%)"
}

// InvoicePDFGenerator genera la versión PDF del documento de factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice entity.Invoice, company Company) ([]byte, error)
}

// SpreadsheetWriter genera una hoja de cálculo con encabezado y filas.
type SpreadsheetWriter interface {
	Write(sheet string, header []string, rows [][]string) ([]byte, error)
}
