package billing

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/jhoicas/fumimanager/internal/domain/entity"
)

// ExportHeader encabezado de la exportación tabular.
func ExportHeader(taxPercent string) []string {
	return []string{"Invoice ID", "Client", "Date", "Base Amount", "Tax (" + taxPercent + ")", "Total", "Status"}
}

// ExportRows una fila por factura: id, cliente, fecha, base, impuesto, total, estado.
func ExportRows(invoices []entity.Invoice) [][]string {
	rows := make([][]string, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, []string{
			inv.ID,
			inv.Client,
			inv.Date.Format(dateLayout),
			inv.Amount.String(),
			inv.Tax.String(),
			inv.Total().String(),
			inv.Status,
		})
	}
	return rows
}

// EncodeCSV escribe encabezado y filas separados por coma. Los campos con coma,
// comillas o saltos de línea van entre comillas.
func EncodeCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportFileName Invoices_Export_<fecha ISO>.<ext>.
func ExportFileName(now time.Time, ext string) string {
	return fmt.Sprintf("Invoices_Export_%s.%s", now.Format(dateLayout), ext)
}
